package tui

import (
	"errors"
	"fmt"
)

// ErrUnknownPage is returned when a navigation target was never
// registered. This is a programmer error and terminates the program.
var ErrUnknownPage = errors.New("unknown page")

// Registry holds every instantiated page and the single active one.
type Registry struct {
	pages  map[string]Page
	active Page
}

// NewRegistry builds a registry from the given pages. No page is active
// until the stack's first Forward.
func NewRegistry(pages ...Page) *Registry {
	m := make(map[string]Page, len(pages))
	for _, p := range pages {
		m[p.Name()] = p
	}
	return &Registry{pages: m}
}

// Lookup finds a page by name.
func (r *Registry) Lookup(name string) (Page, bool) {
	p, ok := r.pages[name]
	return p, ok
}

// Active returns the currently active page.
func (r *Registry) Active() Page {
	return r.active
}

func (r *Registry) activate(p Page) {
	r.active = p
	p.Enter()
}

// Stack keeps the ordered history of visited page names. The history is
// never empty once the root page has been pushed; Back from the root
// re-activates the root instead of popping past it.
type Stack struct {
	reg     *Registry
	history []string
}

func NewStack(reg *Registry) *Stack {
	return &Stack{reg: reg}
}

// Forward appends the page to the history and activates it. Pages may
// legally navigate to themselves.
func (s *Stack) Forward(name string) error {
	p, ok := s.reg.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, name)
	}
	s.history = append(s.history, name)
	s.reg.activate(p)
	return nil
}

// Back pops the current entry and re-activates the new top through
// Forward, so the history shrinks by one per call until only the root
// remains. At the root it is a no-op that re-activates the root.
func (s *Stack) Back() error {
	if len(s.history) > 1 {
		s.history = s.history[:len(s.history)-1]
	}
	top := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	return s.Forward(top)
}

// Depth reports the current history length.
func (s *Stack) Depth() int {
	return len(s.history)
}
