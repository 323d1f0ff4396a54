// Package dates normalizes the calendar dates used throughout the API.
// Every dated endpoint shares one rule: an empty date means "tomorrow",
// an explicit date must parse, and the canonical form is YYYY-MM-DD.
package dates

import (
	"fmt"
	"time"
)

// ISOLayout is the canonical date format used in selections and queries.
const ISOLayout = "2006-01-02"

// ToISO normalizes an explicit date string to YYYY-MM-DD. Plain dates and
// RFC3339 timestamps are accepted; anything else is an error.
func ToISO(s string) (string, error) {
	if t, err := time.Parse(ISOLayout, s); err == nil {
		return t.Format(ISOLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(ISOLayout), nil
	}
	return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

// Tomorrow returns the day after now, in ISO form.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(ISOLayout)
}

// DefaultOrParse applies the shared rule: empty input defaults to
// tomorrow relative to now, explicit input must normalize.
func DefaultOrParse(s string, now time.Time) (string, error) {
	if s == "" {
		return Tomorrow(now), nil
	}
	return ToISO(s)
}
