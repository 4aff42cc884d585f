package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"radiopotok-tui/model"
)

// StationPage lists the catalog as a numbered two-column sheet and reads
// a 1-based station number.
type StationPage struct {
	keys     KeyMap
	stations []model.Station
	input    textinput.Model
	message  string
}

func NewStationPage(keys KeyMap, stations []model.Station) *StationPage {
	ti := textinput.New()
	ti.Prompt = "Station number: "
	ti.CharLimit = 4
	ti.Focus()
	return &StationPage{keys: keys, stations: stations, input: ti}
}

func (p *StationPage) Name() string { return PageStation }

func (p *StationPage) Enter() {
	p.message = ""
	p.input.Reset()
	p.input.Focus()
}

func (p *StationPage) Update(msg tea.KeyMsg) (Action, tea.Cmd) {
	if key.Matches(msg, p.keys.Accept) {
		raw := strings.TrimSpace(p.input.Value())
		p.input.Reset()

		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > len(p.stations) {
			p.message = fmt.Sprintf("Invalid selection %q, pick 1-%d.", raw, len(p.stations))
			return nil, nil
		}
		return PlayStation{Station: p.stations[n-1]}, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return nil, cmd
}

// View renders the stations pairwise per row, numbering down the columns
// left to right; a trailing odd entry is rendered alone.
func (p *StationPage) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select station:") + "\n")

	for i := 0; i < len(p.stations); i += 2 {
		left := fmt.Sprintf("%-4s %s", fmt.Sprintf("%d.", i+1), p.stations[i].Title)
		if i+1 < len(p.stations) {
			right := fmt.Sprintf("%-4s %s", fmt.Sprintf("%d.", i+2), p.stations[i+1].Title)
			b.WriteString(itemStyle.Render(fmt.Sprintf("%-40s%s", left, right)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(left) + "\n")
		}
	}
	b.WriteString("\n")

	if p.message != "" {
		b.WriteString(errorStyle.Render(p.message) + "\n")
	}
	b.WriteString(p.input.View())
	return b.String()
}
