package tui

import (
	"strings"
	"time"

	"monthcal/internal/calendar"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	slideFrames   = 6
	slideInterval = 16 * time.Millisecond
)

type slideFrameMsg struct{ seq int }

// slideState animates the grid sideways after a month change. Forward
// months enter from the right, backward months from the left. Only the
// direction sign comes from the controller; timing lives here.
type slideState struct {
	dir    calendar.Direction
	frames int
	seq    int
}

func (s slideState) active() bool { return s.frames > 0 && s.dir != calendar.None }

// start begins a new slide. A new seq invalidates ticks from an older slide.
func (s slideState) start(dir calendar.Direction) (slideState, tea.Cmd) {
	s.seq++
	if dir == calendar.None {
		s.dir, s.frames = calendar.None, 0
		return s, nil
	}
	s.dir, s.frames = dir, slideFrames
	return s, s.tick()
}

func (s slideState) advance(msg slideFrameMsg) (slideState, tea.Cmd) {
	if msg.seq != s.seq || s.frames <= 0 {
		return s, nil
	}
	s.frames--
	if s.frames == 0 {
		return s, nil
	}
	return s, s.tick()
}

func (s slideState) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(slideInterval, func(time.Time) tea.Msg { return slideFrameMsg{seq: seq} })
}

// offset is the horizontal shift in cells for a block of the given width.
func (s slideState) offset(width int) int {
	if !s.active() || width <= 0 {
		return 0
	}
	return int(s.dir) * width * s.frames / (slideFrames + 1)
}

// shiftLines moves every line by offset cells, clipped to width. Positive
// offsets push content right, negative ones pull it left.
func shiftLines(lines []string, offset, width int) []string {
	if offset == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if offset > 0 {
			out[i] = xansi.Cut(strings.Repeat(" ", offset)+line, 0, width)
			continue
		}
		out[i] = xansi.Cut(line, -offset, width)
	}
	return out
}
