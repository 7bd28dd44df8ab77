package domain

import (
	"time"
)

// Category represents a top-level grouping of actions in the domain model.
// This is a pure domain model without database-specific concerns.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Icon      *string
	Color     *string
	CreatedAt time.Time
}

// NewCategory creates a new Category owned by the given user.
func NewCategory(userID int64, name string, icon, color *string) Category {
	return Category{
		UserID: userID,
		Name:   name,
		Icon:   icon,
		Color:  color,
	}
}

// IsValid checks if the category has valid data.
func (c Category) IsValid() bool {
	return c.UserID > 0 && c.Name != ""
}

// String returns the category name for display purposes.
func (c Category) String() string {
	return c.Name
}
