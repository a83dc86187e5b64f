package calendar

import "time"

// Clock supplies "today". Controllers read it once at construction and again
// only on Refresh.
type Clock interface {
	Today() Date
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() Date

func (f ClockFunc) Today() Date { return f() }

// SystemClock reads the local wall clock.
func SystemClock() Clock {
	return ClockFunc(func() Date { return DateOf(time.Now()) })
}

// FixedClock always reports d.
func FixedClock(d Date) Clock {
	return ClockFunc(func() Date { return d })
}
