package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MenuPage is the root page: a fixed three-line choice entered by number.
type MenuPage struct {
	keys    KeyMap
	input   textinput.Model
	message string
}

func NewMenuPage(keys KeyMap) *MenuPage {
	ti := textinput.New()
	ti.Prompt = "Line number: "
	ti.CharLimit = 3
	ti.Focus()
	return &MenuPage{keys: keys, input: ti}
}

func (p *MenuPage) Name() string { return PageMenu }

func (p *MenuPage) Enter() {
	p.message = ""
	p.input.Reset()
	p.input.Focus()
}

// Update collects one typed line. 1 and 2 navigate, 0 exits; anything
// else re-prompts with a message and never fails.
func (p *MenuPage) Update(msg tea.KeyMsg) (Action, tea.Cmd) {
	if key.Matches(msg, p.keys.Accept) {
		raw := strings.TrimSpace(p.input.Value())
		p.input.Reset()

		choice, err := strconv.Atoi(raw)
		if err != nil {
			p.message = "Type a digit, then press enter."
			return nil, nil
		}
		switch choice {
		case 0:
			return Exit{}, nil
		case 1:
			return Navigate{Name: PageStation}, nil
		case 2:
			return Navigate{Name: PageVolume}, nil
		}
		p.message = fmt.Sprintf("There is no line %d on this menu.", choice)
		return nil, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return nil, cmd
}

func (p *MenuPage) View(width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MENU") + "\n")
	b.WriteString(itemStyle.Render("1. Pick a station") + "\n")
	b.WriteString(itemStyle.Render("2. Volume settings") + "\n")
	b.WriteString(itemStyle.Render("0. Quit") + "\n\n")
	if p.message != "" {
		b.WriteString(errorStyle.Render(p.message) + "\n")
	}
	b.WriteString(p.input.View())
	return b.String()
}
