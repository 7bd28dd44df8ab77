package domain

import (
	"time"
)

// FieldType is the type of an action field value.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
)

// IsValid reports whether the field type is one of the known types.
func (ft FieldType) IsValid() bool {
	return ft == FieldTypeText || ft == FieldTypeNumber
}

// Action represents a trackable recurring task within a category.
// Ownership is transitive: the action belongs to its category's user.
type Action struct {
	ID             int64
	CategoryID     int64
	Name           string
	IsConfigurable bool
	CreatedAt      time.Time
}

// NewAction creates a new Action in the given category.
func NewAction(categoryID int64, name string, isConfigurable bool) Action {
	return Action{
		CategoryID:     categoryID,
		Name:           name,
		IsConfigurable: isConfigurable,
	}
}

// IsValid checks if the action has valid data.
func (a Action) IsValid() bool {
	return a.CategoryID > 0 && a.Name != ""
}

// String returns the action name for display purposes.
func (a Action) String() string {
	return a.Name
}

// ActionField defines one named, typed input slot of a configurable action.
// DisplayOrder is an advisory sort key only; it is not guaranteed unique
// or gap-free, ties are broken by id.
type ActionField struct {
	ID           int64
	ActionID     int64
	FieldName    string
	FieldType    FieldType
	DisplayOrder int
}

// IsValid checks if the action field has valid data.
func (f ActionField) IsValid() bool {
	return f.ActionID > 0 && f.FieldName != "" && f.FieldType.IsValid()
}
