// Package dateutils provides the calendar-date handling used by the ledger and
// its presentation layers. Dates carry no time component: they are always
// midnight UTC.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutBrazilian = "02/01/2006"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	isoShape   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseISODate parses a strict YYYY-MM-DD calendar date.
// Impossible dates such as 2024-02-30 are rejected.
func ParseISODate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if !isoShape.MatchString(cleaned) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD form", dateStr)
	}
	t, err := time.ParseInLocation(DateLayoutISO, cleaned, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a calendar date: %w", dateStr, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(DateLayoutISO)
}

// FormatDisplay formats a date with layout, falling back to ISO when layout is empty.
func FormatDisplay(date time.Time, layout string) string {
	if date.IsZero() {
		return ""
	}
	if layout == "" {
		layout = DateLayoutISO
	}
	return date.Format(layout)
}

// Today returns the current local calendar date as midnight UTC.
func Today() time.Time {
	return TruncateToDate(time.Now())
}

// TruncateToDate drops the time of day, keeping the calendar date of t in its
// own location.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}
