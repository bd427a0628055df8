package dates

import (
	"fmt"
	"strings"
	"time"
)

// sourceLayouts are the date formats observed in upstream exports. The
// day/month/year ordering varies across upstream versions, so the loader
// tries each layout in order until one parses.
var sourceLayouts = []string{
	"2006-01-02",
	"20060102",
	"02-Jan-2006",
	"2-Jan-2006",
	"02/01/2006",
	"2/1/2006",
}

// ParseSourceDate normalizes a date string from the upstream accounting
// package into a canonical UTC calendar date (midnight).
func ParseSourceDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}
	for _, layout := range sourceLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format %q", s)
}

// Midnight truncates a time to its UTC calendar date.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day count from one calendar date to another.
// Negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)).Hours() / 24)
}
