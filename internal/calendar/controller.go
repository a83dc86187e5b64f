package calendar

import "time"

// Direction is the sign of a month transition, used only to cue animation.
type Direction int

const (
	Backward Direction = -1
	None     Direction = 0
	Forward  Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}

// DirectionBetween compares two months; magnitude is ignored.
func DirectionBetween(from, to MonthKey) Direction {
	return Direction(to.Compare(from))
}

// ViewState is everything a presentation layer needs to draw one month.
type ViewState struct {
	Month           MonthKey  `json:"month"`
	Label           string    `json:"label"`
	Weekdays        []string  `json:"weekdays"`
	Cells           []DayCell `json:"cells"`
	ShowJumpToToday bool      `json:"showJumpToToday"`
	Direction       Direction `json:"direction"`
	Today           Date      `json:"today"`
}

// Weeks returns the cells grouped into rows.
func (v ViewState) Weeks() [][]DayCell { return Weeks(v.Cells) }

// Controller owns the displayed month and answers navigation commands.
//
// It is not safe for concurrent use: one writer issues commands and reads
// ViewState between them.
type Controller struct {
	current  MonthKey
	previous MonthKey
	today    Date

	clock     Clock
	weekStart time.Weekday
	labels    Formatter

	initial *MonthKey
}

type Option func(*Controller)

func WithClock(c Clock) Option {
	return func(ctl *Controller) {
		if c != nil {
			ctl.clock = c
		}
	}
}

func WithWeekStart(w time.Weekday) Option {
	return func(ctl *Controller) { ctl.weekStart = w }
}

func WithFormatter(f Formatter) Option {
	return func(ctl *Controller) {
		if f != nil {
			ctl.labels = f
		}
	}
}

// WithInitialMonth opens the controller on k instead of today's month.
func WithInitialMonth(k MonthKey) Option {
	return func(ctl *Controller) { ctl.initial = &k }
}

// NewController captures today from the clock and starts on today's month
// with no transition pending.
func NewController(opts ...Option) (*Controller, error) {
	ctl := &Controller{
		clock:     SystemClock(),
		weekStart: time.Sunday,
		labels:    English,
	}
	for _, opt := range opts {
		opt(ctl)
	}
	if err := validWeekStart(ctl.weekStart); err != nil {
		return nil, err
	}
	today, err := readToday(ctl.clock)
	if err != nil {
		return nil, err
	}
	ctl.today = today
	ctl.current = today.MonthKey()
	if ctl.initial != nil {
		if err := ctl.initial.Validate(); err != nil {
			return nil, err
		}
		ctl.current = *ctl.initial
		ctl.initial = nil
	}
	ctl.previous = ctl.current
	return ctl, nil
}

func (c *Controller) Current() MonthKey       { return c.current }
func (c *Controller) Previous() MonthKey      { return c.previous }
func (c *Controller) Today() Date             { return c.today }
func (c *Controller) WeekStart() time.Weekday { return c.weekStart }
func (c *Controller) Formatter() Formatter    { return c.labels }

// Direction compares the current month against the one displayed before the
// last command.
func (c *Controller) Direction() Direction {
	return DirectionBetween(c.previous, c.current)
}

// ShowJumpToToday reports whether today's month is off-screen.
func (c *Controller) ShowJumpToToday() bool {
	return c.today.MonthKey() != c.current
}

// GoToNextMonth advances one month; December rolls into January. Stepping
// past MaxYear fails and leaves the state untouched.
func (c *Controller) GoToNextMonth() error { return c.GoToMonth(c.current.Next()) }

// GoToPreviousMonth steps back one month; January rolls into December.
// Stepping before MinYear fails and leaves the state untouched.
func (c *Controller) GoToPreviousMonth() error { return c.GoToMonth(c.current.Prev()) }

// JumpToToday shows today's month. When it is already shown the direction
// becomes None.
func (c *Controller) JumpToToday() error { return c.GoToMonth(c.today.MonthKey()) }

func (c *Controller) set(next MonthKey) {
	c.previous, c.current = c.current, next
}

// GoToMonth jumps straight to target. An invalid target is rejected and the
// state is left untouched.
func (c *Controller) GoToMonth(target MonthKey) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.set(target)
	return nil
}

// Refresh re-reads today from the clock and reports whether it changed. The
// displayed month is not moved. An invalid date from the clock is rejected and
// the previous today is kept.
func (c *Controller) Refresh() (bool, error) {
	t, err := readToday(c.clock)
	if err != nil {
		return false, err
	}
	if t == c.today {
		return false, nil
	}
	c.today = t
	return true, nil
}

// readToday asks clock for today and rejects dates whose month could not be
// displayed.
func readToday(clock Clock) (Date, error) {
	t := clock.Today()
	if err := t.Validate(); err != nil {
		return Date{}, err
	}
	if err := t.MonthKey().Validate(); err != nil {
		return Date{}, err
	}
	return t, nil
}

// ViewState derives the current view. It has no side effects.
func (c *Controller) ViewState() ViewState {
	order := WeekdayOrder(c.weekStart)
	weekdays := make([]string, len(order))
	for i, wd := range order {
		weekdays[i] = c.labels.WeekdayLabel(wd)
	}
	return ViewState{
		Month:           c.current,
		Label:           c.labels.MonthLabel(c.current),
		Weekdays:        weekdays,
		Cells:           grid(c.current, c.today, c.weekStart),
		ShowJumpToToday: c.ShowJumpToToday(),
		Direction:       c.Direction(),
		Today:           c.today,
	}
}
