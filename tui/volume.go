package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"radiopotok-tui/player"
)

// volumeCells is the width of the textual volume bar; each cell covers
// five volume points.
const volumeCells = 20

// VolumePage adjusts the session volume one point per arrow key and shows
// it as a proportional bar. Enter returns to the previous page; every
// other key is ignored and the bar simply re-renders.
type VolumePage struct {
	keys    KeyMap
	session *player.Session
}

func NewVolumePage(keys KeyMap, session *player.Session) *VolumePage {
	return &VolumePage{keys: keys, session: session}
}

func (p *VolumePage) Name() string { return PageVolume }

func (p *VolumePage) Enter() {}

func (p *VolumePage) Update(msg tea.KeyMsg) (Action, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Up):
		return AdjustVolume{Delta: 1}, nil
	case key.Matches(msg, p.keys.Down):
		return AdjustVolume{Delta: -1}, nil
	case key.Matches(msg, p.keys.Accept):
		return Back{}, nil
	}
	return nil, nil
}

func (p *VolumePage) View(width int) string {
	var b strings.Builder
	b.WriteString(itemStyle.Render("Use ↑ and ↓ to adjust the volume.") + "\n")
	b.WriteString(itemStyle.Render("Press enter to go back.") + "\n\n")
	b.WriteString("Volume " + p.scale())
	return b.String()
}

// scale renders the proportional bar, or a hint while no stream exists.
func (p *VolumePage) scale() string {
	volume, ok := p.session.Volume()
	if !ok {
		return statusStyle.Render("pick a station first.")
	}

	filled := int(math.Round(float64(volume) / 5.0))
	if filled > volumeCells {
		filled = volumeCells
	}
	bar := fmt.Sprintf("| %-*s | %3d%%", volumeCells, strings.Repeat("█", filled), volume)
	return volumeStyle.Render(bar)
}
