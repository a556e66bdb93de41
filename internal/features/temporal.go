package features

import (
	"math"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a publish/trending timestamp as a UTC-normalized
// time. Accepts RFC3339 timestamps (catalog API) and bare dates (UI).
func ParseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DayOfWeek returns the weekday under the 0=Monday..6=Sunday convention.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return DayOfWeek(t) >= 5
}

// ISOWeek returns the ISO-8601 week-of-year number.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// WholeDays returns the whole-day difference to − from, floored. Identical
// instants yield 0; a trend date before the publish date yields a negative
// age.
func WholeDays(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}
