package turso

import (
	"time"
)

// dateLayout is the storage format for DATE columns.
const dateLayout = "2006-01-02"

// FormatDateForDB formats a time.Time as a date-only string for storage.
// Entries carry no time-of-day component.
func FormatDateForDB(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateFromDB parses a date-only string from the database.
// Older rows written by other clients may carry a full timestamp, so a
// failed date-only parse falls back to RFC3339 and truncates.
func ParseDateFromDB(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// nullableString converts a *string to a driver-friendly value,
// returning nil for NULL columns.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
