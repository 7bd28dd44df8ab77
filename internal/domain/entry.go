package domain

import (
	"time"
)

// Entry represents one recorded occurrence of an action.
// CreatedAt carries date granularity only; entries on the same calendar
// date are ordered by insertion (id).
type Entry struct {
	ID          int64
	ActionID    int64
	Notes       string
	FieldValues FieldValues
	CreatedAt   time.Time
}

// NewEntry creates a new Entry for the given action.
func NewEntry(actionID int64, notes string, values FieldValues) Entry {
	return Entry{
		ActionID:    actionID,
		Notes:       notes,
		FieldValues: values,
	}
}

// IsValid checks if the entry has valid data.
func (e Entry) IsValid() bool {
	return e.ActionID > 0
}

// EntryDetail is an entry enriched with denormalized action and category
// attributes, as returned by the history queries.
type EntryDetail struct {
	Entry
	ActionName    string
	CategoryName  string
	CategoryIcon  *string
	CategoryColor *string
}
