package cli

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"monthcal/internal/calendar"
)

var reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseToday parses the --today override:
// - YYYY-MM-DD (calendar date)
// - RFC3339 / RFC3339Nano (the date in the timestamp's own offset)
func parseToday(s string) (calendar.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return calendar.Date{}, flagError{flag: "today", err: fmt.Errorf("empty date")}
	}

	if reDateOnly.MatchString(s) {
		d, err := calendar.ParseDate(s)
		if err != nil {
			return calendar.Date{}, flagError{flag: "today", err: err}
		}
		return d, nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, s); err == nil {
			return calendar.DateOf(ts), nil
		}
	}

	return calendar.Date{}, flagError{flag: "today", err: fmt.Errorf("invalid date %q (expected YYYY-MM-DD or RFC3339)", s)}
}
