package models

import (
	"errors"
	"time"
)

// ErrUnparsableDate is returned when a date string matches neither RFC 3339
// nor the YYYY-MM-DD form produced by date inputs.
var ErrUnparsableDate = errors.New("unparsable date")

// ParseDate accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrUnparsableDate
}

// FormatDate renders a stored date string as "January 2, 2006".
// Unparsable input is returned unchanged.
func FormatDate(s string) string {
	t, err := ParseDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}

// Age returns full years elapsed since the given birthday, or -1 if the
// date cannot be parsed.
func Age(birthday string, now time.Time) int {
	t, err := ParseDate(birthday)
	if err != nil {
		return -1
	}
	years := now.Year() - t.Year()
	anniversary := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if now.Before(anniversary) {
		years--
	}
	return years
}
