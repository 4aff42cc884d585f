package player

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// BeepEngine streams MP3 audio straight from the station URL and plays it
// through the speaker mixer. It needs no external software, which makes it
// the fallback when libVLC is not installed.
type BeepEngine struct {
	client *http.Client

	once       sync.Once
	mixerRate  beep.SampleRate
	speakerErr error
}

func NewBeepEngine() *BeepEngine {
	return &BeepEngine{
		// Timeout covers the connect only; the body is an endless stream.
		client: &http.Client{Timeout: 0},
	}
}

func (e *BeepEngine) Name() string { return "beep" }

// Start connects to the stream, decodes it as MP3, and hands it to the
// speaker. The speaker is initialized once, at the first stream's sample
// rate; later streams with a different rate are resampled.
func (e *BeepEngine) Start(streamURL string) (Handle, error) {
	resp, err := e.client.Get(streamURL)
	if err != nil {
		return nil, fmt.Errorf("connect stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("connect stream: status %d", resp.StatusCode)
	}

	decoded, format, err := mp3.Decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("decode stream: %w", err)
	}

	e.once.Do(func() {
		e.mixerRate = format.SampleRate
		e.speakerErr = speaker.Init(e.mixerRate, e.mixerRate.N(100*time.Millisecond))
	})
	if e.speakerErr != nil {
		decoded.Close()
		return nil, fmt.Errorf("init speaker: %w", e.speakerErr)
	}

	ctrl := &beep.Ctrl{Streamer: decoded}
	vol := &effects.Volume{Streamer: ctrl, Base: 2}

	var out beep.Streamer = vol
	if format.SampleRate != e.mixerRate {
		out = beep.Resample(4, format.SampleRate, e.mixerRate, vol)
	}

	speaker.Clear()
	speaker.Play(out)

	return &beepHandle{stream: decoded, ctrl: ctrl, vol: vol, percent: 100}, nil
}

func (e *BeepEngine) Release() error {
	speaker.Clear()
	return nil
}

type beepHandle struct {
	stream  beep.StreamSeekCloser
	ctrl    *beep.Ctrl
	vol     *effects.Volume
	percent int
}

func (h *beepHandle) Stop() error {
	speaker.Clear()
	return h.stream.Close()
}

func (h *beepHandle) Pause() error {
	speaker.Lock()
	h.ctrl.Paused = !h.ctrl.Paused
	speaker.Unlock()
	return nil
}

// SetVolume maps 0-100 onto the exponential gain of effects.Volume:
// 100 is unity gain, every 20 points halve the amplitude, 0 is silence.
func (h *beepHandle) SetVolume(volume int) error {
	speaker.Lock()
	h.percent = volume
	h.vol.Silent = volume <= 0
	h.vol.Volume = float64(volume-100) / 20.0
	speaker.Unlock()
	return nil
}

func (h *beepHandle) Volume() (int, error) {
	speaker.Lock()
	defer speaker.Unlock()
	return h.percent, nil
}
