package tui

import "radiopotok-tui/model"

// Action is the outcome of a page handling one key event. Pages only
// decide; executing the action against the navigation stack and the
// playback session is the dispatcher's job. A nil Action means no-op.
type Action interface {
	isAction()
}

// Navigate pushes the named page and makes it active.
type Navigate struct {
	Name string
}

// Back pops the current page and re-activates the previous one.
type Back struct{}

// Exit ends the program from the main loop, after clean teardown.
type Exit struct{}

// PlayStation selects the station and starts playback.
type PlayStation struct {
	Station model.Station
}

// AdjustVolume shifts the session volume by Delta, clamped to [0,100].
type AdjustVolume struct {
	Delta int
}

func (Navigate) isAction()     {}
func (Back) isAction()         {}
func (Exit) isAction()         {}
func (PlayStation) isAction()  {}
func (AdjustVolume) isAction() {}
