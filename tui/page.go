package tui

import tea "github.com/charmbracelet/bubbletea"

// Stable page names, used as navigation targets.
const (
	PageMenu    = "menu"
	PageStation = "station"
	PageVolume  = "volume_settings"
)

// Page is one screen of the menu. Rendering and input collection are
// mechanical; all domain decisions are made in Update's returned Action.
type Page interface {
	Name() string

	// Enter is called every time navigation lands on the page, including
	// re-activation after Back. Pages reset transient input state here.
	Enter()

	// Update interprets one key event and returns the resulting Action
	// (nil for no-op) plus any command for the page's own widgets.
	Update(msg tea.KeyMsg) (Action, tea.Cmd)

	View(width int) string
}
