package player

import (
	"fmt"

	vlc "github.com/adrg/libvlc-go/v3"
)

// VLCEngine drives playback through libVLC. Streams are opened with
// infinite repeat so a dropped connection is retried by VLC itself.
type VLCEngine struct{}

// NewVLCEngine initializes libVLC. Fails when the library is not
// installed, in which case the caller can fall back to the beep engine.
func NewVLCEngine() (*VLCEngine, error) {
	if err := vlc.Init("--input-repeat=-1", "--fullscreen"); err != nil {
		return nil, fmt.Errorf("init libvlc: %w", err)
	}
	return &VLCEngine{}, nil
}

func (e *VLCEngine) Name() string { return "vlc" }

// Start opens the stream URL on a fresh media player and begins playback.
func (e *VLCEngine) Start(streamURL string) (Handle, error) {
	p, err := vlc.NewPlayer()
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	media, err := p.LoadMediaFromURL(streamURL)
	if err != nil {
		p.Release()
		return nil, fmt.Errorf("load media: %w", err)
	}

	if err := p.Play(); err != nil {
		media.Release()
		p.Release()
		return nil, fmt.Errorf("play: %w", err)
	}

	return &vlcHandle{player: p, media: media}, nil
}

func (e *VLCEngine) Release() error {
	return vlc.Release()
}

type vlcHandle struct {
	player *vlc.Player
	media  *vlc.Media
}

func (h *vlcHandle) Stop() error {
	err := h.player.Stop()
	h.media.Release()
	h.player.Release()
	return err
}

func (h *vlcHandle) Pause() error {
	return h.player.TogglePause()
}

func (h *vlcHandle) SetVolume(volume int) error {
	return h.player.SetVolume(volume)
}

func (h *vlcHandle) Volume() (int, error) {
	return h.player.Volume()
}
