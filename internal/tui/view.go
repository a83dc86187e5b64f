package tui

import (
	"fmt"
	"strings"

	"monthcal/internal/calendar"
	"monthcal/internal/docs"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// cellWidth is the width of one day column: a right-aligned day number plus
// a one-cell marker slot.
const cellWidth = 4

const gridWidth = 7 * cellWidth

func (m model) View() string {
	var body string
	if m.showHelp {
		body = m.helpView()
	} else {
		body = renderMonth(m.ctl.ViewState(), m.slide)
	}
	body = styleFrame().Render(body) + "\n" + m.help.View(m.keys)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m model) helpView() string {
	md, _ := docs.Get("keys")
	return renderMarkdown(md, max(gridWidth, min(m.width-4, 60)))
}

// renderMonth draws the header, weekday row and the day grid.
func renderMonth(vs calendar.ViewState, slide slideState) string {
	lines := []string{renderHeader(vs), renderWeekdays(vs.Weekdays)}

	grid := make([]string, 0, 6)
	for _, week := range vs.Weeks() {
		grid = append(grid, renderWeek(week))
	}
	grid = shiftLines(grid, slide.offset(gridWidth), gridWidth)

	lines = append(lines, grid...)
	return lipgloss.NewStyle().Width(gridWidth).Render(strings.Join(lines, "\n"))
}

func renderHeader(vs calendar.ViewState) string {
	label := styleLabel().Render(vs.Label)
	controls := styleMuted().Render(glyphPrev() + " " + glyphNext())
	if vs.ShowJumpToToday {
		controls = styleTodayButton().Render("Today") + " " + controls
	}
	gap := gridWidth - xansi.StringWidth(label) - xansi.StringWidth(controls)
	if gap < 1 {
		return xansi.Truncate(label, gridWidth, "…")
	}
	return label + strings.Repeat(" ", gap) + controls
}

func renderWeekdays(names []string) string {
	var b strings.Builder
	for _, name := range names {
		name = xansi.Truncate(name, cellWidth-1, "")
		b.WriteString(styleWeekday().Render(fmt.Sprintf("%*s ", cellWidth-1, name)))
	}
	return b.String()
}

func renderWeek(week []calendar.DayCell) string {
	var b strings.Builder
	for _, c := range week {
		b.WriteString(renderCell(c))
	}
	return b.String()
}

func renderCell(c calendar.DayCell) string {
	num := fmt.Sprintf("%*d", cellWidth-1, c.Date.Day)
	switch {
	case c.IsToday:
		return styleToday().Render(num) + glyphToday()
	case !c.InCurrentMonth:
		return styleMuted().Render(num) + " "
	default:
		return styleDay().Render(num) + " "
	}
}
