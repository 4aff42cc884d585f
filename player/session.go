package player

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"radiopotok-tui/model"
)

// ErrNoStationSelected is returned by Play before any station was selected.
// It is recoverable: session state is left untouched.
var ErrNoStationSelected = errors.New("no station selected")

// defaultVolume seeds volume adjustments made before the engine has
// reported its own default.
const defaultVolume = 50

// Session owns the current station selection and the live engine handle.
// At most one handle exists at a time; Play stops the previous stream
// before starting the next one.
//
// Play runs on a background command goroutine while the UI keeps reading
// keys, so all state is guarded by the mutex.
type Session struct {
	mu      sync.Mutex
	engine  Engine
	current *model.Station
	handle  Handle
	volume  int // 0-100, or -1 until a volume is known
}

// NewSession creates a session on the given engine. startVolume 0-100
// presets the volume applied at the first Play; -1 keeps the engine default.
func NewSession(engine Engine, startVolume int) *Session {
	s := &Session{engine: engine, volume: -1}
	if startVolume >= 0 {
		s.volume = clamp(startVolume)
	}
	return s
}

// Select records the station to play. Playback does not start here.
func (s *Session) Select(st model.Station) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &st
}

// Current returns the selected station, or nil.
func (s *Session) Current() *model.Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Play starts the selected station on the engine. A running stream is
// stopped first. Engine failures propagate to the caller and leave the
// session with no handle.
func (s *Session) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoStationSelected
	}

	if s.handle != nil {
		if err := s.handle.Stop(); err != nil {
			log.Warn().Err(err).Msg("stopping previous stream")
		}
		s.handle = nil
	}

	handle, err := s.engine.Start(s.current.StreamURL)
	if err != nil {
		return fmt.Errorf("start %q: %w", s.current.Title, err)
	}

	if s.volume >= 0 {
		if err := handle.SetVolume(s.volume); err != nil {
			log.Warn().Err(err).Msg("applying stored volume")
		}
	} else if v, err := handle.Volume(); err == nil {
		s.volume = clamp(v)
	}

	s.handle = handle
	log.Info().Str("station", s.current.Title).Str("engine", s.engine.Name()).Msg("now playing")
	return nil
}

// Stop releases the live handle if there is one. Calling it with nothing
// playing is a no-op, not an error.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Session) stopLocked() {
	if s.handle == nil {
		return
	}
	if err := s.handle.Stop(); err != nil {
		log.Warn().Err(err).Msg("stopping stream")
	}
	s.handle = nil
}

// Pause toggles pause on the live stream; no-op without a handle.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == nil {
		return
	}
	if err := s.handle.Pause(); err != nil {
		log.Warn().Err(err).Msg("toggling pause")
	}
}

// SetVolume stores the clamped volume and applies it to the live stream.
// Without a handle the value is still stored so it takes effect once
// playback starts.
func (s *Session) SetVolume(volume int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.volume = clamp(volume)
	if s.handle != nil {
		if err := s.handle.SetVolume(s.volume); err != nil {
			log.Warn().Err(err).Msg("setting volume")
		}
	}
}

// AdjustVolume shifts the volume by delta, staying inside [0,100].
func (s *Session) AdjustVolume(delta int) {
	s.mu.Lock()
	base := s.volume
	s.mu.Unlock()

	if base < 0 {
		base = defaultVolume
	}
	s.SetVolume(base + delta)
}

// Volume reports the stored volume. ok is false until a stream handle
// exists, which the volume page renders as "unavailable".
func (s *Session) Volume() (volume int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle == nil {
		return 0, false
	}
	return s.volume, true
}

// Playing reports whether a live handle exists.
func (s *Session) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle != nil
}

// Close stops any live stream and releases the engine.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	if err := s.engine.Release(); err != nil {
		log.Warn().Err(err).Msg("releasing engine")
	}
}

func clamp(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}
