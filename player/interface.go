package player

// Engine creates live playback handles for stream URLs.
type Engine interface {
	// Name identifies the engine in logs and status lines.
	Name() string

	// Start begins playback of the stream and returns a handle to it.
	Start(streamURL string) (Handle, error)

	// Release frees engine-wide resources. No handles may be used after.
	Release() error
}

// Handle is one in-progress stream on the engine. At most one handle is
// live at any time; the session stops the old one before starting a new one.
type Handle interface {
	Stop() error
	Pause() error // toggles pause/resume

	SetVolume(volume int) error
	Volume() (int, error)
}
