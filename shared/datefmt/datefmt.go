// Package datefmt holds the plain-text date and clock layouts the store uses.
// Records persist dates as strings, so these helpers only parse and validate;
// no timezone conversion ever happens.
package datefmt

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the departure/arrival date format (yyyy-MM-dd).
	DateLayout = "2006-01-02"
	// ClockLayout is the departure/arrival time format (HH:mm).
	ClockLayout = "15:04"
	// ClockLayoutSeconds is accepted alongside ClockLayout (HH:mm:ss).
	ClockLayoutSeconds = "15:04:05"
)

// ParseDate parses a yyyy-MM-dd string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}

	return t, nil
}

// ValidDate reports whether value is a well-formed yyyy-MM-dd string.
func ValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)

	return err == nil
}

// ValidClock reports whether value is a well-formed HH:mm or HH:mm:ss string.
func ValidClock(value string) bool {
	if _, err := time.Parse(ClockLayout, value); err == nil {
		return true
	}

	_, err := time.Parse(ClockLayoutSeconds, value)

	return err == nil
}

// Today returns the current date formatted with DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}
