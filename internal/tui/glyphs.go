package tui

import (
	"os"
	"strings"
	"sync"
)

// Terminals can't change the user's font, so we pick between Unicode and
// ASCII glyphs for the few affordances the calendar draws.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference honors MONTHCAL_TUI_GLYPHS, then the configured value.
func applyGlyphPreference(configured string) {
	v := strings.TrimSpace(os.Getenv("MONTHCAL_TUI_GLYPHS"))
	if v == "" {
		v = configured
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	default:
		// Unknown value: ignore.
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPrev() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "‹"
}

func glyphNext() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

// glyphToday marks today's cell so it stays visible without color.
func glyphToday() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}
