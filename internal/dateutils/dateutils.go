// Package dateutils provides the date parsing and formatting helpers shared
// by the statement parser and the report renderers.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date format constants used throughout the application.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutBrazilian = "02/01/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// CommonFormats lists the layouts tried, in order, when parsing a date.
// Day-first layouts come before any ambiguous alternative because the
// statement exports this tool ingests are Brazilian.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutBrazilian,
	"02-01-2006",
	"02.01.2006",
	DateLayoutFull,
	"2006/01/02",
	DateLayoutWithMonth,
	"Jan 2, 2006",
}

// ParseDate attempts to parse a date string using the common formats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDate formats a time value with the given layout, defaulting to ISO.
func FormatDate(date time.Time, layout string) string {
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// CleanDateString strips surrounding whitespace and quoting artifacts that
// show up in hand-edited CSV exports.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	dateStr = strings.Trim(dateStr, `"'`)
	return dateStr
}

// TruncateToDay drops the time-of-day portion, keeping the calendar date in
// the value's location. Daily aggregation buckets on the result.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
