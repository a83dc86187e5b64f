package tui

import (
	"io"
	"log"
	"os"
	"strings"

	"monthcal/internal/calendar"

	tea "github.com/charmbracelet/bubbletea"
)

// Options carries the presentation preferences the CLI resolved from config.
// Environment variables still win over these.
type Options struct {
	Theme  string
	Glyphs string
}

// Run starts the interactive calendar on ctl and blocks until the user quits.
func Run(ctl *calendar.Controller, opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference()
	applyGlyphPreference(opts.Glyphs)

	closeLog, debug, err := setupDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	m := newModel(ctl)
	m.debug = debug
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// setupDebugLog routes the standard logger to MONTHCAL_TUI_DEBUG_LOG when set
// and discards it otherwise (stdout belongs to the TUI).
func setupDebugLog() (closeFn func(), enabled bool, err error) {
	path := strings.TrimSpace(os.Getenv("MONTHCAL_TUI_DEBUG_LOG"))
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, false, nil
	}
	f, err := tea.LogToFile(path, "monthcal")
	if err != nil {
		return nil, false, err
	}
	return func() { _ = f.Close() }, true, nil
}
