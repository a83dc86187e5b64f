package calendar

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// Formatter produces the human-readable parts of a view: the month heading
// and the weekday column labels.
type Formatter interface {
	MonthLabel(MonthKey) string
	WeekdayLabel(time.Weekday) string
}

// FormatterFuncs builds a Formatter from plain functions. A nil field falls
// back to English.
type FormatterFuncs struct {
	Month   func(MonthKey) string
	Weekday func(time.Weekday) string
}

func (f FormatterFuncs) MonthLabel(k MonthKey) string {
	if f.Month == nil {
		return English.MonthLabel(k)
	}
	return f.Month(k)
}

func (f FormatterFuncs) WeekdayLabel(w time.Weekday) string {
	if f.Weekday == nil {
		return English.WeekdayLabel(w)
	}
	return f.Weekday(w)
}

type labelTable struct {
	months   [12]string
	weekdays [7]string
}

// MonthLabel renders "<Month name> <year>".
func (t labelTable) MonthLabel(k MonthKey) string {
	if k.Validate() != nil {
		return k.String()
	}
	return t.months[k.Month-1] + " " + strconv.Itoa(k.Year)
}

func (t labelTable) WeekdayLabel(w time.Weekday) string {
	if validWeekStart(w) != nil {
		return ""
	}
	return t.weekdays[w]
}

// English is the default formatter.
var English Formatter = labelTable{
	months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var (
	localeTags = []language.Tag{
		language.English, // first entry is the fallback
		language.German,
		language.French,
		language.Spanish,
		language.Dutch,
	}
	localeTables = []Formatter{
		English,
		labelTable{
			months: [12]string{
				"Januar", "Februar", "März", "April", "Mai", "Juni",
				"Juli", "August", "September", "Oktober", "November", "Dezember",
			},
			weekdays: [7]string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
		},
		labelTable{
			months: [12]string{
				"janvier", "février", "mars", "avril", "mai", "juin",
				"juillet", "août", "septembre", "octobre", "novembre", "décembre",
			},
			weekdays: [7]string{"dim", "lun", "mar", "mer", "jeu", "ven", "sam"},
		},
		labelTable{
			months: [12]string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		},
		labelTable{
			months: [12]string{
				"januari", "februari", "maart", "april", "mei", "juni",
				"juli", "augustus", "september", "oktober", "november", "december",
			},
			weekdays: [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
		},
	}
	localeMatcher = language.NewMatcher(localeTags)
)

// LocaleFormatter returns the built-in label table closest to the given BCP 47
// tags (e.g. "de-AT", or an Accept-Language style list). Unknown or empty
// input yields English.
func LocaleFormatter(tags ...string) Formatter {
	_, idx := language.MatchStrings(localeMatcher, tags...)
	if idx < 0 || idx >= len(localeTables) {
		return English
	}
	return localeTables[idx]
}
