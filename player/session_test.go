package player

import (
	"errors"
	"testing"

	"radiopotok-tui/model"
)

type fakeHandle struct {
	volume  int
	stopped bool
	pauses  int
}

func (h *fakeHandle) Stop() error           { h.stopped = true; return nil }
func (h *fakeHandle) Pause() error          { h.pauses++; return nil }
func (h *fakeHandle) SetVolume(v int) error { h.volume = v; return nil }
func (h *fakeHandle) Volume() (int, error)  { return h.volume, nil }

type fakeEngine struct {
	defaultVolume int
	startErr      error
	released      bool
	handles       []*fakeHandle
}

func (e *fakeEngine) Name() string { return "fake" }

func (e *fakeEngine) Start(streamURL string) (Handle, error) {
	if e.startErr != nil {
		return nil, e.startErr
	}
	h := &fakeHandle{volume: e.defaultVolume}
	e.handles = append(e.handles, h)
	return h, nil
}

func (e *fakeEngine) Release() error { e.released = true; return nil }

var (
	rockFM = model.Station{ID: 1, Title: "Rock FM", StreamURL: "http://a"}
	jazz   = model.Station{ID: 2, Title: "Jazz", StreamURL: "http://b"}
)

func TestPlayWithoutSelection(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	s := NewSession(engine, -1)

	if err := s.Play(); !errors.Is(err, ErrNoStationSelected) {
		t.Fatalf("Play err = %v, want ErrNoStationSelected", err)
	}
	if s.Playing() {
		t.Fatal("session has a handle after a failed Play")
	}
	if len(engine.handles) != 0 {
		t.Fatalf("engine started %d streams, want 0", len(engine.handles))
	}
}

func TestPlayStopsPreviousStream(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	s := NewSession(engine, -1)

	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("first Play: %v", err)
	}
	s.Select(jazz)
	if err := s.Play(); err != nil {
		t.Fatalf("second Play: %v", err)
	}

	if len(engine.handles) != 2 {
		t.Fatalf("engine started %d streams, want 2", len(engine.handles))
	}
	if !engine.handles[0].stopped {
		t.Fatal("first stream still running after replay")
	}
	if engine.handles[1].stopped {
		t.Fatal("second stream is stopped")
	}
	if got := s.Current(); got == nil || got.ID != jazz.ID {
		t.Fatalf("current station = %v, want ID %d", got, jazz.ID)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	s := NewSession(engine, -1)

	s.Stop() // nothing playing: no-op, not an error

	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	s.Stop()
	s.Stop()

	if s.Playing() {
		t.Fatal("session still has a handle after Stop")
	}
	if !engine.handles[0].stopped {
		t.Fatal("stream not stopped")
	}
}

func TestEngineFailureLeavesNoHandle(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{startErr: errors.New("stream unreachable")}
	s := NewSession(engine, -1)

	s.Select(rockFM)
	if err := s.Play(); err == nil {
		t.Fatal("Play succeeded against a failing engine")
	}
	if s.Playing() {
		t.Fatal("session has a handle after an engine failure")
	}

	// The session stays usable once the engine recovers.
	engine.startErr = nil
	if err := s.Play(); err != nil {
		t.Fatalf("Play after recovery: %v", err)
	}
	if !s.Playing() {
		t.Fatal("no handle after successful replay")
	}
}

func TestPauseWithoutHandleIsNoop(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	s := NewSession(engine, -1)
	s.Pause()

	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	s.Pause()
	if engine.handles[0].pauses != 1 {
		t.Fatalf("pause toggles = %d, want 1", engine.handles[0].pauses)
	}
}

func TestVolumeAlwaysClamped(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{defaultVolume: 50}
	s := NewSession(engine, -1)
	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}

	deltas := []int{+200, -1, -500, +3, +1000, -7, +1}
	for _, d := range deltas {
		s.AdjustVolume(d)
		if v, ok := s.Volume(); !ok || v < 0 || v > 100 {
			t.Fatalf("volume %d out of range after delta %d", v, d)
		}
	}

	s.SetVolume(100)
	for i := 0; i < 150; i++ {
		s.AdjustVolume(1)
	}
	if v, _ := s.Volume(); v != 100 {
		t.Fatalf("volume = %d, want capped at 100", v)
	}
	for i := 0; i < 300; i++ {
		s.AdjustVolume(-1)
	}
	if v, _ := s.Volume(); v != 0 {
		t.Fatalf("volume = %d, want floored at 0", v)
	}
}

func TestVolumeStoredBeforeFirstHandle(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{defaultVolume: 80}
	s := NewSession(engine, -1)

	// No handle yet: the setting is stored but reported unavailable.
	s.SetVolume(30)
	if _, ok := s.Volume(); ok {
		t.Fatal("volume reported available before any stream")
	}

	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if engine.handles[0].volume != 30 {
		t.Fatalf("stream volume = %d, want stored 30", engine.handles[0].volume)
	}
	if v, ok := s.Volume(); !ok || v != 30 {
		t.Fatalf("Volume() = %d,%v, want 30,true", v, ok)
	}
}

func TestVolumeAdoptsEngineDefault(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{defaultVolume: 72}
	s := NewSession(engine, -1)
	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}

	if v, ok := s.Volume(); !ok || v != 72 {
		t.Fatalf("Volume() = %d,%v, want engine default 72,true", v, ok)
	}
	// The engine default must not be overwritten on the handle.
	if engine.handles[0].volume != 72 {
		t.Fatalf("stream volume = %d, want untouched 72", engine.handles[0].volume)
	}
}

func TestStartVolumeFromConfig(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{defaultVolume: 50}
	s := NewSession(engine, 250) // out of range, clamps to 100

	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if engine.handles[0].volume != 100 {
		t.Fatalf("stream volume = %d, want clamped preset 100", engine.handles[0].volume)
	}
}

func TestCloseStopsAndReleases(t *testing.T) {
	t.Parallel()

	engine := &fakeEngine{}
	s := NewSession(engine, -1)
	s.Select(rockFM)
	if err := s.Play(); err != nil {
		t.Fatalf("Play: %v", err)
	}

	s.Close()
	if !engine.handles[0].stopped {
		t.Fatal("stream still running after Close")
	}
	if !engine.released {
		t.Fatal("engine not released")
	}
}
