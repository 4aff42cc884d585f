package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"radiopotok-tui/model"
	"radiopotok-tui/player"
)

// App is the top-level Bubble Tea model: it routes key events to the
// active page and executes the Actions pages return against the
// navigation stack and the playback session. Exactly one page is active
// at any instant and page switches are synchronous.
type App struct {
	reg     *Registry
	stack   *Stack
	session *player.Session
	keys    KeyMap

	width   int
	status  string
	errText string

	// fatal holds a programmer error (broken navigation target); it ends
	// the program and is reported by Run.
	fatal error
}

// NewApp instantiates the pages and activates the root menu.
func NewApp(stations []model.Station, session *player.Session) (*App, error) {
	keys := DefaultKeyMap
	reg := NewRegistry(
		NewMenuPage(keys),
		NewStationPage(keys, stations),
		NewVolumePage(keys, session),
	)
	stack := NewStack(reg)
	if err := stack.Forward(PageMenu); err != nil {
		return nil, err
	}

	return &App{
		reg:     reg,
		stack:   stack,
		session: session,
		keys:    keys,
	}, nil
}

// playResultMsg reports the outcome of the asynchronous play command.
type playResultMsg struct {
	station model.Station
	err     error
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		return a, nil

	case playResultMsg:
		if msg.err != nil {
			// Engine failures are reported but non-fatal; the session is
			// already back to "nothing playing".
			log.Error().Err(msg.err).Str("station", msg.station.Title).Msg("playback failed")
			a.errText = fmt.Sprintf("Playback failed: %v", msg.err)
			a.status = ""
			return a, nil
		}
		a.status = fmt.Sprintf("Now playing %q", msg.station.Title)
		// The picker hands control back to the menu once playback starts.
		if err := a.stack.Back(); err != nil {
			return a.abort(err)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.errText = ""
		action, cmd := a.reg.Active().Update(msg)
		next, execCmd := a.execute(action)
		return next, tea.Batch(cmd, execCmd)
	}

	return a, nil
}

// execute performs a page's Action. Domain work happens here and nowhere
// else in the TUI.
func (a *App) execute(action Action) (tea.Model, tea.Cmd) {
	switch act := action.(type) {
	case Navigate:
		if err := a.stack.Forward(act.Name); err != nil {
			return a.abort(err)
		}
	case Back:
		if err := a.stack.Back(); err != nil {
			return a.abort(err)
		}
	case Exit:
		return a, tea.Quit
	case PlayStation:
		a.status = fmt.Sprintf("Connecting to %q...", act.Station.Title)
		return a, a.play(act.Station)
	case AdjustVolume:
		a.session.AdjustVolume(act.Delta)
	}
	return a, nil
}

// play selects and starts the station off the update loop, the result
// coming back as a playResultMsg.
func (a *App) play(st model.Station) tea.Cmd {
	session := a.session
	return func() tea.Msg {
		session.Select(st)
		return playResultMsg{station: st, err: session.Play()}
	}
}

func (a *App) abort(err error) (tea.Model, tea.Cmd) {
	a.fatal = err
	return a, tea.Quit
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.reg.Active().View(a.width))
	b.WriteString("\n")
	if a.errText != "" {
		b.WriteString("\n" + errorStyle.Render("✗ "+a.errText))
	} else if a.status != "" {
		b.WriteString("\n" + statusStyle.Render("▶ "+a.status))
	}
	return b.String()
}

// Run drives the interface until the user exits, then tears down the
// playback session.
func Run(stations []model.Station, session *player.Session) error {
	app, err := NewApp(stations, session)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app)
	final, err := p.Run()
	session.Close()
	if err != nil {
		return err
	}

	if a, ok := final.(*App); ok && a.fatal != nil {
		return a.fatal
	}
	return nil
}
