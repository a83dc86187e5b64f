package calendar

import "time"

// DayCell is one day in a month grid.
type DayCell struct {
	Date           Date         `json:"date"`
	InCurrentMonth bool         `json:"inCurrentMonth"`
	IsToday        bool         `json:"isToday"`
	Weekday        time.Weekday `json:"weekday"`
	// Column is the 0-based position within the row; equal to Weekday when
	// weeks start on Sunday.
	Column int `json:"column"`
}

// ComputeGrid returns the Sunday-start grid for month: every day from the
// Sunday on or before the 1st through the Saturday on or after the last day.
func ComputeGrid(month MonthKey, today Date) ([]DayCell, error) {
	return ComputeGridFrom(month, today, time.Sunday)
}

// ComputeGridFrom is ComputeGrid with a configurable first day of the week.
// The result always covers whole weeks, so its length is a multiple of 7
// (28, 35 or 42).
func ComputeGridFrom(month MonthKey, today Date, weekStart time.Weekday) ([]DayCell, error) {
	if err := month.Validate(); err != nil {
		return nil, err
	}
	if err := validWeekStart(weekStart); err != nil {
		return nil, err
	}
	return grid(month, today, weekStart), nil
}

// grid assumes month and weekStart are valid.
func grid(month MonthKey, today Date, weekStart time.Weekday) []DayCell {
	first := month.First()
	last := month.Last()

	lead := column(first.Weekday(), weekStart)
	trail := 6 - column(last.Weekday(), weekStart)
	start := first.AddDays(-lead)
	n := lead + month.Days() + trail

	cells := make([]DayCell, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDays(i)
		wd := d.Weekday()
		cells = append(cells, DayCell{
			Date:           d,
			InCurrentMonth: month.Contains(d),
			IsToday:        d == today,
			Weekday:        wd,
			Column:         column(wd, weekStart),
		})
	}
	return cells
}

// Weeks splits cells into rows of 7. A trailing partial row is kept as is.
func Weeks(cells []DayCell) [][]DayCell {
	rows := make([][]DayCell, 0, (len(cells)+6)/7)
	for len(cells) > 0 {
		n := min(7, len(cells))
		rows = append(rows, cells[:n:n])
		cells = cells[n:]
	}
	return rows
}

// WeekdayOrder lists the seven weekdays in column order.
func WeekdayOrder(weekStart time.Weekday) [7]time.Weekday {
	var out [7]time.Weekday
	for i := range out {
		out[i] = time.Weekday((int(weekStart) + i) % 7)
	}
	return out
}

func column(wd, weekStart time.Weekday) int {
	return (int(wd) - int(weekStart) + 7) % 7
}

func validWeekStart(w time.Weekday) error {
	if w < time.Sunday || w > time.Saturday {
		return errWeekStart(int(w))
	}
	return nil
}
