package domain

import (
	"action-tracker/internal/repository/turso"
)

// CategoryMapper handles conversion between domain and database Category models.
type CategoryMapper struct{}

// ToDatabase converts a domain Category to a database Category.
func (m *CategoryMapper) ToDatabase(category Category) turso.Category {
	return turso.Category{
		ID:        category.ID,
		UserID:    category.UserID,
		Name:      category.Name,
		Icon:      category.Icon,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}

// FromDatabase converts a database Category to a domain Category.
func (m *CategoryMapper) FromDatabase(dbCategory turso.Category) Category {
	return Category{
		ID:        dbCategory.ID,
		UserID:    dbCategory.UserID,
		Name:      dbCategory.Name,
		Icon:      dbCategory.Icon,
		Color:     dbCategory.Color,
		CreatedAt: dbCategory.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Categories to domain Categories.
func (m *CategoryMapper) FromDatabaseSlice(dbCategories []*turso.Category) []*Category {
	categories := make([]*Category, len(dbCategories))
	for i, dbCategory := range dbCategories {
		category := m.FromDatabase(*dbCategory)
		categories[i] = &category
	}
	return categories
}

// ActionMapper handles conversion between domain and database Action models.
type ActionMapper struct{}

// ToDatabase converts a domain Action to a database Action.
func (m *ActionMapper) ToDatabase(action Action) turso.Action {
	return turso.Action{
		ID:             action.ID,
		CategoryID:     action.CategoryID,
		Name:           action.Name,
		IsConfigurable: action.IsConfigurable,
		CreatedAt:      action.CreatedAt,
	}
}

// FromDatabase converts a database Action to a domain Action.
func (m *ActionMapper) FromDatabase(dbAction turso.Action) Action {
	return Action{
		ID:             dbAction.ID,
		CategoryID:     dbAction.CategoryID,
		Name:           dbAction.Name,
		IsConfigurable: dbAction.IsConfigurable,
		CreatedAt:      dbAction.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Actions to domain Actions.
func (m *ActionMapper) FromDatabaseSlice(dbActions []*turso.Action) []*Action {
	actions := make([]*Action, len(dbActions))
	for i, dbAction := range dbActions {
		action := m.FromDatabase(*dbAction)
		actions[i] = &action
	}
	return actions
}

// ActionFieldMapper handles conversion between domain and database ActionField models.
type ActionFieldMapper struct{}

// ToDatabase converts a domain ActionField to a database ActionField.
func (m *ActionFieldMapper) ToDatabase(field ActionField) turso.ActionField {
	return turso.ActionField{
		ID:           field.ID,
		ActionID:     field.ActionID,
		FieldName:    field.FieldName,
		FieldType:    string(field.FieldType),
		DisplayOrder: field.DisplayOrder,
	}
}

// FromDatabase converts a database ActionField to a domain ActionField.
func (m *ActionFieldMapper) FromDatabase(dbField turso.ActionField) ActionField {
	return ActionField{
		ID:           dbField.ID,
		ActionID:     dbField.ActionID,
		FieldName:    dbField.FieldName,
		FieldType:    FieldType(dbField.FieldType),
		DisplayOrder: dbField.DisplayOrder,
	}
}

// FromDatabaseSlice converts a slice of database ActionFields to domain ActionFields.
func (m *ActionFieldMapper) FromDatabaseSlice(dbFields []*turso.ActionField) []*ActionField {
	fields := make([]*ActionField, len(dbFields))
	for i, dbField := range dbFields {
		field := m.FromDatabase(*dbField)
		fields[i] = &field
	}
	return fields
}

// EntryMapper handles conversion between domain and database Entry models.
// Stored field_values blobs are decoded best-effort on the way out.
type EntryMapper struct{}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry turso.Entry) Entry {
	return Entry{
		ID:          dbEntry.ID,
		ActionID:    dbEntry.ActionID,
		Notes:       dbEntry.Notes,
		FieldValues: ParseFieldValues(dbEntry.FieldValues),
		CreatedAt:   dbEntry.CreatedAt,
	}
}

// DetailFromDatabase converts a database EntryDetail to a domain EntryDetail.
func (m *EntryMapper) DetailFromDatabase(dbDetail turso.EntryDetail) EntryDetail {
	return EntryDetail{
		Entry:         m.FromDatabase(dbDetail.Entry),
		ActionName:    dbDetail.ActionName,
		CategoryName:  dbDetail.CategoryName,
		CategoryIcon:  dbDetail.CategoryIcon,
		CategoryColor: dbDetail.CategoryColor,
	}
}

// DetailsFromDatabase converts a slice of database EntryDetails to domain EntryDetails.
func (m *EntryMapper) DetailsFromDatabase(dbDetails []*turso.EntryDetail) []*EntryDetail {
	details := make([]*EntryDetail, len(dbDetails))
	for i, dbDetail := range dbDetails {
		detail := m.DetailFromDatabase(*dbDetail)
		details[i] = &detail
	}
	return details
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Category    *CategoryMapper
	Action      *ActionMapper
	ActionField *ActionFieldMapper
	Entry       *EntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Category:    &CategoryMapper{},
		Action:      &ActionMapper{},
		ActionField: &ActionFieldMapper{},
		Entry:       &EntryMapper{},
	}
}
