// Package utils provides small shared helpers for date handling and
// formatting used across the EdgarAI services.
package utils

import (
	"fmt"
	"time"
)

// dateLayouts are the calendar-date formats accepted on input, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// NormalizeDate parses a caller-supplied date string and returns it in ISO
// form (YYYY-MM-DD). It rejects anything it cannot parse.
func NormalizeDate(s string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("invalid date format: %q (use YYYY-MM-DD)", s)
}

// ParseSECDate parses a date string in any of the formats SEC endpoints
// return. A zero time is returned when no layout matches.
func ParseSECDate(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02",
		"2006-01-02T15:04:05.000Z",
		"01/02/2006",
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatTimestamp renders a time for display in result payloads.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
