package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"monthcal/internal/calendar"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// isolate points config at a temp dir and clears env defaults.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MONTHCAL_CONFIG_DIR", dir)
	for _, k := range []string{"MONTHCAL_TODAY", "MONTHCAL_WEEK_START", "MONTHCAL_LOCALE", "MONTHCAL_FORMAT"} {
		t.Setenv(k, "")
	}
	return dir
}

type showEnvelope struct {
	Data struct {
		Month           string   `json:"month"`
		Label           string   `json:"label"`
		Weekdays        []string `json:"weekdays"`
		ShowJumpToToday bool     `json:"showJumpToToday"`
		Direction       int      `json:"direction"`
		Today           string   `json:"today"`
		Cells           []struct {
			Date           string `json:"date"`
			InCurrentMonth bool   `json:"inCurrentMonth"`
			IsToday        bool   `json:"isToday"`
			Column         int    `json:"column"`
		} `json:"cells"`
	} `json:"data"`
}

func decodeShow(t *testing.T, out []byte) showEnvelope {
	t.Helper()
	var env showEnvelope
	if err := json.Unmarshal(out, &env); err != nil {
		t.Fatalf("json: %v\n%s", err, string(out))
	}
	return env
}

func TestShow_LeapFebruary(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"show", "2024-02", "--today", "2024-02-15"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	env := decodeShow(t, out)

	if env.Data.Month != "2024-02" || env.Data.Label != "February 2024" {
		t.Fatalf("unexpected month/label: %q %q", env.Data.Month, env.Data.Label)
	}
	if got := len(env.Data.Cells); got != 35 {
		t.Fatalf("expected 35 cells, got %d", got)
	}
	if env.Data.Cells[0].Date != "2024-01-28" || env.Data.Cells[34].Date != "2024-03-02" {
		t.Fatalf("unexpected grid bounds %s..%s", env.Data.Cells[0].Date, env.Data.Cells[34].Date)
	}
	todays := 0
	for _, c := range env.Data.Cells {
		if c.IsToday {
			todays++
			if c.Date != "2024-02-15" {
				t.Fatalf("unexpected today cell %s", c.Date)
			}
		}
	}
	if todays != 1 {
		t.Fatalf("expected exactly one today cell, got %d", todays)
	}
	if env.Data.ShowJumpToToday {
		t.Fatalf("did not expect jump-to-today on today's month")
	}
	if strings.Join(env.Data.Weekdays, ",") != "Sun,Mon,Tue,Wed,Thu,Fri,Sat" {
		t.Fatalf("unexpected weekdays %v", env.Data.Weekdays)
	}
}

func TestShow_DefaultsToTodaysMonth(t *testing.T) {
	isolate(t)
	t.Setenv("MONTHCAL_TODAY", "2025-05-20")

	out, _, err := runCLI(t, []string{"show"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	env := decodeShow(t, out)
	if env.Data.Month != "2025-05" || env.Data.Today != "2025-05-20" {
		t.Fatalf("expected May 2025, got %s (today %s)", env.Data.Month, env.Data.Today)
	}
	if env.Data.Direction != 0 {
		t.Fatalf("expected no direction on first render, got %d", env.Data.Direction)
	}
}

func TestShow_OffsetWrapsYear(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"show", "2024-11", "--offset", "3", "--today", "2024-11-02"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	env := decodeShow(t, out)
	if env.Data.Month != "2025-02" || env.Data.Direction != int(calendar.Forward) || !env.Data.ShowJumpToToday {
		t.Fatalf("unexpected state: month=%s dir=%d jump=%v", env.Data.Month, env.Data.Direction, env.Data.ShowJumpToToday)
	}

	out, _, err = runCLI(t, []string{"show", "2024-01", "--offset=-1", "--today", "2024-01-10"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	env = decodeShow(t, out)
	if env.Data.Month != "2023-12" || env.Data.Direction != int(calendar.Backward) {
		t.Fatalf("unexpected state: month=%s dir=%d", env.Data.Month, env.Data.Direction)
	}
}

func TestShow_WeekStartAndLocale(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"show", "2024-09", "--today", "2024-09-01", "--week-start", "monday", "--locale", "de-DE"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	env := decodeShow(t, out)
	if env.Data.Label != "September 2024" {
		t.Fatalf("unexpected label %q", env.Data.Label)
	}
	if env.Data.Weekdays[0] != "Mo" || env.Data.Weekdays[6] != "So" {
		t.Fatalf("unexpected weekdays %v", env.Data.Weekdays)
	}
	// 2024-09-01 is a Sunday: six leading August days.
	if env.Data.Cells[0].Date != "2024-08-26" || env.Data.Cells[6].Date != "2024-09-01" {
		t.Fatalf("unexpected first week %s..%s", env.Data.Cells[0].Date, env.Data.Cells[6].Date)
	}
}

func TestShow_ConfigDefaults(t *testing.T) {
	isolate(t)

	if _, _, err := runCLI(t, []string{"config", "set", "week-start", "mon"}); err != nil {
		t.Fatalf("config set: %v", err)
	}
	out, _, err := runCLI(t, []string{"show", "2024-09", "--today", "2024-09-01"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if env := decodeShow(t, out); env.Data.Weekdays[0] != "Mon" {
		t.Fatalf("expected config week start, got %v", env.Data.Weekdays)
	}

	// Flag beats config.
	out, _, err = runCLI(t, []string{"show", "2024-09", "--today", "2024-09-01", "--week-start", "sunday"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if env := decodeShow(t, out); env.Data.Weekdays[0] != "Sun" {
		t.Fatalf("expected flag week start, got %v", env.Data.Weekdays)
	}
}

func TestShow_TextFormat(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"show", "2024-02", "--today", "2024-02-15", "--format", "text"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "February 2024" || lines[1] != "Sun Mon Tue Wed Thu Fri Sat" {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if !strings.HasPrefix(lines[2], " 28.") || !strings.Contains(lines[4], " 15*") {
		t.Fatalf("unexpected grid:\n%s", out)
	}
}

func TestShow_EDNFormat(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"show", "2024-02", "--today", "2024-02-15", "--format", "edn"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	s := string(out)
	for _, want := range []string{`:month "2024-02"`, `:show-jump-to-today false`, `:in-current-month true`, `:is-today true`} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in edn output:\n%s", want, s)
		}
	}
}

func TestShow_InvalidInput(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"month out of range", []string{"show", "2024-13"}, "invalid month"},
		{"garbage month", []string{"show", "feb"}, "invalid month"},
		{"bad today", []string{"show", "--today", "yesterday"}, "--today"},
		{"bad week start", []string{"show", "--week-start", "someday"}, "--week-start"},
		{"offset past last year", []string{"show", "9999-12", "--offset", "1", "--today", "2024-01-01"}, "invalid year"},
		{"year too wide", []string{"show", "10000-01"}, "invalid month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, tt.args)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(string(stderr), tt.want) {
				t.Fatalf("expected %q in stderr, got %q", tt.want, string(stderr))
			}
		})
	}

	_, _, err := runCLI(t, []string{"show", "2024-00"})
	if !errors.Is(err, calendar.ErrInvalidInput) {
		t.Fatalf("expected calendar.ErrInvalidInput, got %v", err)
	}
}

func TestParseToday(t *testing.T) {
	isolate(t)

	d, err := parseToday("2024-03-10T23:30:00-05:00")
	if err != nil {
		t.Fatalf("parseToday: %v", err)
	}
	if d != (calendar.Date{Year: 2024, Month: 3, Day: 10}) {
		t.Fatalf("expected the timestamp's own date, got %s", d)
	}
	if _, err := parseToday("2024-02-30"); err == nil {
		t.Fatalf("expected error for 2024-02-30")
	}
}

func TestConfigSetShow(t *testing.T) {
	dir := isolate(t)

	out, _, err := runCLI(t, []string{"config", "set", "locale", "fr_CA"})
	if err != nil {
		t.Fatalf("config set: %v", err)
	}
	var set struct {
		Data struct {
			Key   string `json:"key"`
			Value string `json:"value"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &set); err != nil {
		t.Fatalf("json: %v", err)
	}
	if set.Data.Value != "fr-CA" {
		t.Fatalf("expected normalized locale fr-CA, got %q", set.Data.Value)
	}

	out, _, err = runCLI(t, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	var show struct {
		Data struct {
			Path   string            `json:"path"`
			Values map[string]string `json:"values"`
		} `json:"data"`
	}
	if err := json.Unmarshal(out, &show); err != nil {
		t.Fatalf("json: %v", err)
	}
	if show.Data.Path != filepath.Join(dir, "config.json") || show.Data.Values["locale"] != "fr-CA" {
		t.Fatalf("unexpected config show: %+v", show.Data)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.json")); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, _, err := runCLI(t, []string{"config", "set", "theme", "purple"}); err == nil {
		t.Fatalf("expected invalid theme error")
	}
	if _, _, err := runCLI(t, []string{"config", "get", "nope"}); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestDocs(t *testing.T) {
	isolate(t)

	out, _, err := runCLI(t, []string{"docs"})
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(string(out), `"keys"`) {
		t.Fatalf("expected keys topic, got %s", out)
	}

	out, _, err = runCLI(t, []string{"docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs keys: %v", err)
	}
	if !strings.HasPrefix(string(out), "# Keys") {
		t.Fatalf("expected raw markdown, got %q", out)
	}

	_, stderr, err := runCLI(t, []string{"docs", "nope"})
	if err == nil || !strings.Contains(string(stderr), "unknown docs topic") {
		t.Fatalf("expected unknown topic error, got %v / %q", err, stderr)
	}
}
