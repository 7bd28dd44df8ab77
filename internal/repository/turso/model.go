package turso

import "time"

// Category represents a row of the categories table.
// Icon and Color are pointers to allow NULL values.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Icon      *string
	Color     *string
	CreatedAt time.Time
}

// Action represents a row of the actions table.
// Ownership is resolved through category_id; there is no denormalized
// user_id on the action itself.
type Action struct {
	ID             int64
	CategoryID     int64
	Name           string
	IsConfigurable bool
	CreatedAt      time.Time
}

// ActionField represents a row of the action_fields table.
type ActionField struct {
	ID           int64
	ActionID     int64
	FieldName    string
	FieldType    string
	DisplayOrder int
}

// Entry represents a row of the entries table.
// FieldValues holds the raw serialized blob; decoding happens in the
// domain layer. CreatedAt carries date granularity only.
type Entry struct {
	ID          int64
	ActionID    int64
	Notes       string
	FieldValues *string
	CreatedAt   time.Time
}

// EntryDetail is an entry joined with its action and category attributes.
type EntryDetail struct {
	Entry
	ActionName    string
	CategoryName  string
	CategoryIcon  *string
	CategoryColor *string
}
