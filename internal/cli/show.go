package cli

import (
	"fmt"
	"strings"

	"monthcal/internal/calendar"
	"monthcal/internal/config"

	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var offset int

	cmd := &cobra.Command{
		Use:   "show [YYYY-MM]",
		Short: "Print a month's view state (label, weekday header, grid cells)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return writeErr(cmd, err)
			}

			var opts []calendar.Option
			if len(args) == 1 {
				month, err := calendar.ParseMonthKey(args[0])
				if err != nil {
					return writeErr(cmd, monthArgError{arg: args[0], err: err})
				}
				opts = append(opts, calendar.WithInitialMonth(month))
			}

			ctl, err := newController(app, cfg, opts...)
			if err != nil {
				return writeErr(cmd, err)
			}
			if offset != 0 {
				if err := ctl.GoToMonth(ctl.Current().AddMonths(offset)); err != nil {
					return writeErr(cmd, err)
				}
			}

			return writeOut(cmd, app, viewOutput{Data: ctl.ViewState()})
		},
	}

	cmd.Flags().IntVar(&offset, "offset", 0, "Move this many months from the shown month (negative goes back)")

	return cmd
}

type viewOutput struct {
	Data calendar.ViewState `json:"data"`
}

// Text renders the month as a plain grid. Today is marked with '*' and
// days outside the month with '.'.
func (o viewOutput) Text() string {
	vs := o.Data
	var b strings.Builder
	b.WriteString(vs.Label)
	b.WriteByte('\n')

	var row strings.Builder
	for _, name := range vs.Weekdays {
		fmt.Fprintf(&row, "%3s ", name)
	}
	b.WriteString(strings.TrimRight(row.String(), " "))
	b.WriteByte('\n')

	for _, week := range vs.Weeks() {
		row.Reset()
		for _, c := range week {
			mark := " "
			switch {
			case c.IsToday:
				mark = "*"
			case !c.InCurrentMonth:
				mark = "."
			}
			fmt.Fprintf(&row, "%3d%s", c.Date.Day, mark)
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}

	if vs.ShowJumpToToday {
		fmt.Fprintf(&b, "today: %s\n", vs.Today)
	}
	return b.String()
}
