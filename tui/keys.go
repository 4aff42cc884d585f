package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings shared by the pages.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is the default set of bindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "volume up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "volume down"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "accept"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
