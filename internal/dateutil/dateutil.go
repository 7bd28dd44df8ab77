package dateutil

import (
	"fmt"
	"time"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// FormatRelativeDate maps a timestamp to a human-relative label:
// "Today", "Yesterday", "N days ago", then weeks, months, years.
// Buckets divide the absolute whole-day difference by 7, 30, and 365
// with floor semantics, so a boundary value lands in the larger unit
// (exactly 7 days is "1 weeks ago", not "7 days ago"). The unit is not
// singularized for N=1.
func FormatRelativeDate(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	days := daysBetween(t, timeNow())

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// daysBetween returns the absolute difference in whole days between two
// timestamps, ignoring the time-of-day component so any two moments on
// the same calendar day compare as zero days apart.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

// FormatDate formats a date in long form, e.g. "January 15, 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatShortDate formats a date as "2024-01-15".
func FormatShortDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
