package tui

import (
	"log"
	"time"

	"monthcal/internal/calendar"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clockRefreshInterval is how often "today" is re-read so a calendar left
// open past midnight moves its highlight.
const clockRefreshInterval = time.Minute

type clockTickMsg struct{}

// model adapts a calendar.Controller to bubbletea. All controller commands
// run inside Update, so each completes before the next View.
type model struct {
	ctl  *calendar.Controller
	keys keyMap
	help help.Model

	width  int
	height int

	slide    slideState
	showHelp bool
	debug    bool
}

func newModel(ctl *calendar.Controller) model {
	return model{
		ctl:  ctl,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

func (m model) Init() tea.Cmd { return tickClock() }

func tickClock() tea.Cmd {
	return tea.Tick(clockRefreshInterval, func(time.Time) tea.Msg { return clockTickMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clockTickMsg:
		changed, err := m.ctl.Refresh()
		switch {
		case err != nil:
			m.debugLogf("clock: %v", err)
		case changed:
			m.debugLogf("today changed to %s", m.ctl.Today())
		}
		return m, tickClock()

	case slideFrameMsg:
		var cmd tea.Cmd
		m.slide, cmd = m.slide.advance(msg)
		return m, cmd

	case tea.KeyMsg:
		m.debugLogf("key %q month=%s", msg.String(), m.ctl.Current())
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.String() == "esc", msg.String() == "q":
			m.showHelp = false
			return m, nil
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	var err error
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Next):
		err = m.ctl.GoToNextMonth()
	case key.Matches(msg, m.keys.Prev):
		err = m.ctl.GoToPreviousMonth()
	case key.Matches(msg, m.keys.Today):
		if !m.ctl.ShowJumpToToday() {
			return m, nil
		}
		err = m.ctl.JumpToToday()
	default:
		return m, nil
	}
	if err != nil {
		// Out of range: the month stays put and nothing animates.
		m.debugLogf("navigate: %v", err)
		return m, nil
	}

	var cmd tea.Cmd
	m.slide, cmd = m.slide.start(m.ctl.Direction())
	m.debugLogf("month=%s direction=%s", m.ctl.Current(), m.ctl.Direction())
	return m, cmd
}

func (m model) debugLogf(format string, args ...any) {
	if !m.debug {
		return
	}
	log.Printf(format, args...)
}
