package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched (via errors.Is) by every error this package
// returns for malformed months, dates or week starts.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a single rejected value.
type InputError struct {
	Field string
	Value int
	Want  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %d (expected %s)", e.Field, e.Value, e.Want)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func errMonth(m int) error {
	return &InputError{Field: "month", Value: m, Want: "1..12"}
}

func errYear(y, lo, hi int) error {
	return &InputError{Field: "year", Value: y, Want: fmt.Sprintf("%d..%d", lo, hi)}
}

func errDay(d, max int) error {
	return &InputError{Field: "day", Value: d, Want: fmt.Sprintf("1..%d", max)}
}

func errWeekStart(w int) error {
	return &InputError{Field: "week start", Value: w, Want: "0..6 (Sunday..Saturday)"}
}
