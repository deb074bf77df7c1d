// Package dateutil normalizes timestamps and date strings onto UTC calendar
// days. The same half-open window is used everywhere a day matters: upsert
// matching, day queries and summary aggregation.
package dateutil

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date string cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// time.Parse accepts optional fractional seconds, so RFC3339 also covers the
// millisecond timestamps the mobile clients send.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// DayWindow returns the half-open UTC day interval [start, end) containing t.
// Half-open bounds avoid the millisecond edge cases an inclusive
// 23:59:59.999 end would reintroduce.
func DayWindow(t time.Time) (start, end time.Time) {
	u := t.UTC()
	start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// ParseDay parses a date string (plain date or RFC 3339 timestamp) and
// returns the UTC day window containing it.
func ParseDay(s string) (start, end time.Time, err error) {
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			start, end = DayWindow(t)
			return start, end, nil
		}
	}
	return time.Time{}, time.Time{}, ErrInvalidDate
}

// SameDay reports whether two instants fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	start, end := DayWindow(a)
	ub := b.UTC()
	return !ub.Before(start) && ub.Before(end)
}
