package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthKey identifies a year+month pair. Keys order chronologically, year
// first. A key is only usable once Validate passes; NewMonthKey and
// ParseMonthKey never return an invalid one.
type MonthKey struct {
	Year  int
	Month time.Month
}

func NewMonthKey(year int, month time.Month) (MonthKey, error) {
	k := MonthKey{Year: year, Month: month}
	if err := k.Validate(); err != nil {
		return MonthKey{}, err
	}
	return k, nil
}

// ParseMonthKey parses YYYY-MM (a leading '-' marks years before 0). The
// month must be 1..12; no wrapping.
func ParseMonthKey(s string) (MonthKey, error) {
	s = strings.TrimSpace(s)
	y, ms, ok := cutYear(s)
	if !ok || len(ms) == 0 || len(ms) > 2 || !digits(ms) {
		return MonthKey{}, fmt.Errorf("%w: month %q (expected YYYY-MM)", ErrInvalidInput, s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil {
		return MonthKey{}, fmt.Errorf("%w: month %q", ErrInvalidInput, ms)
	}
	return NewMonthKey(y, time.Month(m))
}

// Validate checks the month (1..12) and the year (MinYear..MaxYear).
func (k MonthKey) Validate() error {
	if k.Month < time.January || k.Month > time.December {
		return errMonth(int(k.Month))
	}
	if k.Year < MinYear || k.Year > MaxYear {
		return errYear(k.Year, MinYear, MaxYear)
	}
	return nil
}

// Next returns the following month; December rolls into January.
func (k MonthKey) Next() MonthKey {
	if k.Month == time.December {
		return MonthKey{Year: k.Year + 1, Month: time.January}
	}
	return MonthKey{Year: k.Year, Month: k.Month + 1}
}

// Prev returns the preceding month; January rolls back into December.
func (k MonthKey) Prev() MonthKey {
	if k.Month == time.January {
		return MonthKey{Year: k.Year - 1, Month: time.December}
	}
	return MonthKey{Year: k.Year, Month: k.Month - 1}
}

// AddMonths moves n months forward (or back, for negative n). The result is
// not validated; callers that accept it check it with Validate.
func (k MonthKey) AddMonths(n int) MonthKey {
	m := int(k.Month) - 1 + n%12
	carry := floorDiv(m, 12)
	return MonthKey{Year: k.Year + n/12 + carry, Month: time.Month(m-carry*12) + 1}
}

func (k MonthKey) Compare(other MonthKey) int {
	if k.Year != other.Year {
		return cmpInt(k.Year, other.Year)
	}
	return cmpInt(int(k.Month), int(other.Month))
}

func (k MonthKey) Before(other MonthKey) bool { return k.Compare(other) < 0 }
func (k MonthKey) After(other MonthKey) bool  { return k.Compare(other) > 0 }

// First is day 1 of the month.
func (k MonthKey) First() Date {
	return Date{Year: k.Year, Month: k.Month, Day: 1}
}

// Last is the final day of the month, leap Februaries included.
func (k MonthKey) Last() Date {
	return Date{Year: k.Year, Month: k.Month, Day: k.Days()}
}

// Days is the length of the month.
func (k MonthKey) Days() int {
	return daysIn(k.Year, k.Month)
}

func (k MonthKey) Contains(d Date) bool {
	return d.Year == k.Year && d.Month == k.Month
}

func (k MonthKey) String() string {
	return fmt.Sprintf("%s-%02d", formatYear(k.Year), int(k.Month))
}

func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MonthKey) UnmarshalText(b []byte) error {
	v, err := ParseMonthKey(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
