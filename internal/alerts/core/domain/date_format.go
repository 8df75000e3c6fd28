package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// maxEpochMillis is the largest distance from the epoch a date may have.
const maxEpochMillis = 8.64e15

var (
	supportedLocales = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Japanese,
		language.Swedish,
	}
	localeDayLayouts = []string{
		"1/2/2006",
		"02/01/2006",
		"2.1.2006",
		"02/01/2006",
		"2006/1/2",
		"2006-01-02",
	}
	localeMatcher = language.NewMatcher(supportedLocales)
)

// layouts that carry their own zone offset
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	"Mon Jan 2 2006 15:04:05 GMT-0700",
}

// date-only forms are read as UTC midnight
var utcLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// date-times without an offset are read in the formatter's location
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.ANSIC,
}

// DateFormatter renders instants as calendar-day labels for one locale and
// time zone.
type DateFormatter struct {
	locale language.Tag
	layout string
	loc    *time.Location
}

// NewDateFormatter builds a formatter from a BCP 47 tag and an IANA zone name.
// An empty zone means UTC; "Local" is the process zone.
func NewDateFormatter(locale, zone string) (*DateFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	_, idx, _ := localeMatcher.Match(tag)

	loc := time.UTC
	if zone != "" {
		loc, err = time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", zone, err)
		}
	}

	return &DateFormatter{
		locale: supportedLocales[idx],
		layout: localeDayLayouts[idx],
		loc:    loc,
	}, nil
}

// DefaultDateFormatter formats en-US days in UTC.
func DefaultDateFormatter() *DateFormatter {
	return &DateFormatter{
		locale: language.AmericanEnglish,
		layout: localeDayLayouts[0],
		loc:    time.UTC,
	}
}

func (f *DateFormatter) Locale() string {
	return f.locale.String()
}

func (f *DateFormatter) Location() *time.Location {
	return f.loc
}

func (f *DateFormatter) Format(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// DayLabel is the calendar-day label of a timestamp field, or InvalidDateLabel.
func (f *DateFormatter) DayLabel(ts Field) string {
	t, ok := f.Time(ts)
	if !ok {
		return InvalidDateLabel
	}
	return f.Format(t)
}

// Time reads a timestamp field. Null is the epoch, numbers are milliseconds
// since the epoch and strings are parsed as dates.
func (f *DateFormatter) Time(ts Field) (time.Time, bool) {
	if !ts.IsSet() {
		return time.Time{}, false
	}
	v, ok := ts.decode()
	if !ok {
		return time.Time{}, false
	}

	switch t := v.(type) {
	case nil:
		return time.UnixMilli(0), true
	case bool:
		if t {
			return time.UnixMilli(1), true
		}
		return time.UnixMilli(0), true
	case json.Number:
		ms, err := t.Float64()
		if err != nil || math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(math.Trunc(ms))), true
	case string:
		return ParseTimestamp(t, f.loc)
	default:
		return time.Time{}, false
	}
}

// ParseTimestamp parses the date formats alert feeds commonly emit.
func ParseTimestamp(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range utcLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
