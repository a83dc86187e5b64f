package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Supported years for months. Dates may sit one year outside so that the
// leading and trailing days of a grid for MinYear or MaxYear stay valid.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Date is a calendar day with no time-of-day or zone. The zero value is not a
// valid date; build one with NewDate, DateOf or ParseDate.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate validates its fields and returns the date.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate checks the year range, the month and the day against the month's
// length.
func (d Date) Validate() error {
	if d.Year < MinYear-1 || d.Year > MaxYear+1 {
		return errYear(d.Year, MinYear-1, MaxYear+1)
	}
	if d.Month < time.January || d.Month > time.December {
		return errMonth(int(d.Month))
	}
	max := daysIn(d.Year, d.Month)
	if d.Day < 1 || d.Day > max {
		return errDay(d.Day, max)
	}
	return nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses YYYY-MM-DD. The year may carry a leading '-' and a
// fifth digit, matching what String writes.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	y, rest, ok := cutYear(s)
	if !ok {
		return Date{}, fmt.Errorf("%w: date %q (expected YYYY-MM-DD)", ErrInvalidInput, s)
	}
	ms, ds, ok := strings.Cut(rest, "-")
	if !ok || len(ms) != 2 || len(ds) != 2 {
		return Date{}, fmt.Errorf("%w: date %q (expected YYYY-MM-DD)", ErrInvalidInput, s)
	}
	m, err1 := strconv.Atoi(ms)
	day, err2 := strconv.Atoi(ds)
	if err1 != nil || err2 != nil || !digits(ms) || !digits(ds) {
		return Date{}, fmt.Errorf("%w: date %q (expected YYYY-MM-DD)", ErrInvalidInput, s)
	}
	return NewDate(y, time.Month(m), day)
}

// cutYear splits "[-]YYYY[Y]-rest" into the year and rest.
func cutYear(s string) (year int, rest string, ok bool) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	ys, rest, ok := strings.Cut(s, "-")
	if !ok || len(ys) < 4 || len(ys) > 5 || !digits(ys) {
		return 0, "", false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, "", false
	}
	if neg {
		y = -y
	}
	return y, rest, true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// formatYear writes at least four digits, with a leading '-' before year 0.
func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

// Time returns midnight UTC on d. UTC keeps day arithmetic free of DST gaps.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MonthKey returns the month d belongs to.
func (d Date) MonthKey() MonthKey {
	return MonthKey{Year: d.Year, Month: d.Month}
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year), int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func daysIn(year int, month time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
