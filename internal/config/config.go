package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Config is the global user configuration stored at ~/.monthcal/config.json.
// Every field is optional; zero values mean "use the built-in default".
type Config struct {
	// WeekStart is a weekday name ("sunday", "monday", ...).
	WeekStart string `json:"weekStart,omitempty"`

	// Locale is a BCP 47 tag used to pick month/weekday labels (e.g. "de-AT").
	Locale string `json:"locale,omitempty"`

	// TUI holds optional preferences for the interactive calendar.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// Theme is one of: light|dark|auto.
	Theme string `json:"theme,omitempty"`
	// Glyphs selects the glyph set ("unicode", "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{"week-start", "locale", "theme", "glyphs"}
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.monthcal).
	if v := strings.TrimSpace(os.Getenv("MONTHCAL_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".monthcal"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file. A missing file yields an empty config.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes cfg atomically, keeping the previous file as config.json.bak.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Best-effort; a failed backup must not block the save.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// Get returns the stored value for key ("" when unset).
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "week-start":
		return c.WeekStart, nil
	case "locale":
		return c.Locale, nil
	case "theme":
		if c.TUI == nil {
			return "", nil
		}
		return c.TUI.Theme, nil
	case "glyphs":
		if c.TUI == nil {
			return "", nil
		}
		return c.TUI.Glyphs, nil
	default:
		return "", unknownKeyError(key)
	}
}

// Set validates and stores value under key. An empty value clears the key.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch normalizeKey(key) {
	case "week-start":
		if value != "" {
			wd, err := ParseWeekday(value)
			if err != nil {
				return err
			}
			value = strings.ToLower(wd.String())
		}
		c.WeekStart = value
	case "locale":
		if value != "" {
			tag, err := language.Parse(value)
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", value, err)
			}
			value = tag.String()
		}
		c.Locale = value
	case "theme":
		value = strings.ToLower(value)
		switch value {
		case "", "light", "dark", "auto":
		default:
			return fmt.Errorf("invalid theme %q (expected light|dark|auto)", value)
		}
		c.tui().Theme = value
	case "glyphs":
		value = strings.ToLower(value)
		switch value {
		case "", "unicode", "ascii":
		default:
			return fmt.Errorf("invalid glyphs %q (expected unicode|ascii)", value)
		}
		c.tui().Glyphs = value
	default:
		return unknownKeyError(key)
	}
	return nil
}

// Values returns every known key with its stored value.
func (c *Config) Values() map[string]string {
	out := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		v, _ := c.Get(k)
		out[k] = v
	}
	return out
}

func (c *Config) tui() *TUIConfig {
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	return c.TUI
}

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday, "su": time.Sunday, "0": time.Sunday,
	"monday": time.Monday, "mon": time.Monday, "mo": time.Monday, "1": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tu": time.Tuesday, "2": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday, "we": time.Wednesday, "3": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "th": time.Thursday, "4": time.Thursday,
	"friday": time.Friday, "fri": time.Friday, "fr": time.Friday, "5": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday, "sa": time.Saturday, "6": time.Saturday,
}

// ParseWeekday accepts full or abbreviated English weekday names and 0..6.
func ParseWeekday(s string) (time.Weekday, error) {
	if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return wd, nil
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q (expected sunday..saturday)", s)
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	return strings.ReplaceAll(k, "_", "-")
}

type unknownKeyError string

func (e unknownKeyError) Error() string {
	keys := Keys()
	sort.Strings(keys)
	return fmt.Sprintf("unknown config key %q (known: %s)", string(e), strings.Join(keys, ", "))
}
