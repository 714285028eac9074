// Package calendar holds the date helpers used by invoice numbering and the
// document renderers: ISO-8601 week numbers, ISO date parsing and due-date
// arithmetic.
package calendar

import (
	"fmt"
	"time"
)

// ISODateLayout is the wire format for dates throughout the API.
const ISODateLayout = "2006-01-02"

// ISOWeek returns the ISO-8601 week number of t. Weeks run Monday to Sunday
// and week 1 is the week containing the year's first Thursday, so December 31
// can fall in week 1 of the next year and January 1 in week 52/53 of the
// previous one. Implemented by shifting the date to the Thursday of its own
// week and counting weeks from that year's start.
func ISOWeek(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the ISO week
	}
	thursday := d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return int(thursday.Sub(yearStart).Hours()/(24*7)) + 1
}

// ParseISODate parses a YYYY-MM-DD string.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse ISO date %q: %w", s, err)
	}
	return t, nil
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// AddDays returns date + days, both as YYYY-MM-DD strings. Used for due dates
// (issue date + payment term).
func AddDays(date string, days int) (string, error) {
	t, err := ParseISODate(date)
	if err != nil {
		return "", err
	}
	return FormatISODate(t.AddDate(0, 0, days)), nil
}

// NumberBreakdown decomposes an issue date into the parts shown next to the
// invoice number: calendar year, month and ISO week.
type NumberBreakdown struct {
	Year  int
	Month time.Month
	Week  int
}

// BreakdownFor returns the display breakdown for an issue date.
func BreakdownFor(issueDate time.Time) NumberBreakdown {
	return NumberBreakdown{
		Year:  issueDate.Year(),
		Month: issueDate.Month(),
		Week:  ISOWeek(issueDate),
	}
}
