package cli

import (
	"fmt"
	"os"
	"strings"

	"monthcal/internal/calendar"
	"monthcal/internal/config"
	"monthcal/internal/format"
	"monthcal/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Today      string
	WeekStart  string
	Locale     string
	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "monthcal",
		Short:        "Month calendar TUI + scriptable month grids",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive calendar
  monthcal

  # Print this month's grid
  monthcal show

  # Direct month lookup (shortcut for: monthcal show 2024-02)
  monthcal 2024-02

  # Plain-text grid, weeks starting on Monday
  monthcal show 2024-02 --format text --week-start monday
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("MONTHCAL_TODAY", ""), "Pin today's date (YYYY-MM-DD or RFC3339; default: system clock)")
	cmd.PersistentFlags().StringVar(&app.WeekStart, "week-start", envOr("MONTHCAL_WEEK_START", ""), "First weekday column (sunday..saturday; default from config, else sunday)")
	cmd.PersistentFlags().StringVar(&app.Locale, "locale", envOr("MONTHCAL_LOCALE", ""), "Locale for month and weekday labels (e.g. de-AT; default from config, else English)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MONTHCAL_FORMAT", "json"), "Output format (json|edn|text)")

	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctl, err := newController(app, cfg)
	if err != nil {
		return err
	}
	opts := tui.Options{}
	if cfg.TUI != nil {
		opts.Theme = cfg.TUI.Theme
		opts.Glyphs = cfg.TUI.Glyphs
	}
	return tui.Run(ctl, opts)
}

// newController builds a controller from flags/env first, then the config
// file, then built-in defaults.
func newController(app *App, cfg *config.Config, extra ...calendar.Option) (*calendar.Controller, error) {
	var opts []calendar.Option

	if strings.TrimSpace(app.Today) != "" {
		today, err := parseToday(app.Today)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calendar.WithClock(calendar.FixedClock(today)))
	}

	weekStart := firstNonEmpty(app.WeekStart, cfg.WeekStart)
	if weekStart != "" {
		wd, err := config.ParseWeekday(weekStart)
		if err != nil {
			return nil, flagError{flag: "week-start", err: err}
		}
		opts = append(opts, calendar.WithWeekStart(wd))
	}

	if locale := firstNonEmpty(app.Locale, cfg.Locale); locale != "" {
		opts = append(opts, calendar.WithFormatter(calendar.LocaleFormatter(locale)))
	}

	return calendar.NewController(append(opts, extra...)...)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
