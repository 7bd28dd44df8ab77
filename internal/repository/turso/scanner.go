package turso

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanCategory scans a single category from a database row
func ScanCategory(scanner Scanner) (*Category, error) {
	category := &Category{}
	var icon, color sql.NullString
	var created string

	err := scanner.Scan(
		&category.ID,
		&category.UserID,
		&category.Name,
		&icon,
		&color,
		&created,
	)
	if err != nil {
		return nil, err
	}

	if icon.Valid {
		category.Icon = &icon.String
	}
	if color.Valid {
		category.Color = &color.String
	}
	category.CreatedAt, err = ParseDateFromDB(created)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// ScanCategories scans multiple categories from database rows
func ScanCategories(rows Rows) ([]*Category, error) {
	var categories []*Category
	for rows.Next() {
		category, err := ScanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// ScanAction scans a single action from a database row
func ScanAction(scanner Scanner) (*Action, error) {
	action := &Action{}
	var configurable int
	var created string

	err := scanner.Scan(
		&action.ID,
		&action.CategoryID,
		&action.Name,
		&configurable,
		&created,
	)
	if err != nil {
		return nil, err
	}

	action.IsConfigurable = configurable != 0
	action.CreatedAt, err = ParseDateFromDB(created)
	if err != nil {
		return nil, err
	}

	return action, nil
}

// ScanActions scans multiple actions from database rows
func ScanActions(rows Rows) ([]*Action, error) {
	var actions []*Action
	for rows.Next() {
		action, err := ScanAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

// ScanActionField scans a single action field from a database row
func ScanActionField(scanner Scanner) (*ActionField, error) {
	field := &ActionField{}
	err := scanner.Scan(
		&field.ID,
		&field.ActionID,
		&field.FieldName,
		&field.FieldType,
		&field.DisplayOrder,
	)
	if err != nil {
		return nil, err
	}
	return field, nil
}

// ScanActionFields scans multiple action fields from database rows
func ScanActionFields(rows Rows) ([]*ActionField, error) {
	var fields []*ActionField
	for rows.Next() {
		field, err := ScanActionField(rows)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fields, nil
}

// ScanEntry scans a single entry from a database row
func ScanEntry(scanner Scanner) (*Entry, error) {
	entry := &Entry{}
	var notes, fieldValues sql.NullString
	var created string

	err := scanner.Scan(
		&entry.ID,
		&entry.ActionID,
		&notes,
		&fieldValues,
		&created,
	)
	if err != nil {
		return nil, err
	}

	entry.Notes = notes.String
	if fieldValues.Valid {
		entry.FieldValues = &fieldValues.String
	}
	entry.CreatedAt, err = ParseDateFromDB(created)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// ScanEntryDetail scans an entry joined with action and category attributes
func ScanEntryDetail(scanner Scanner) (*EntryDetail, error) {
	detail := &EntryDetail{}
	var notes, fieldValues, icon, color sql.NullString
	var created string

	err := scanner.Scan(
		&detail.ID,
		&detail.ActionID,
		&notes,
		&fieldValues,
		&created,
		&detail.ActionName,
		&detail.CategoryName,
		&icon,
		&color,
	)
	if err != nil {
		return nil, err
	}

	detail.Notes = notes.String
	if fieldValues.Valid {
		detail.FieldValues = &fieldValues.String
	}
	if icon.Valid {
		detail.CategoryIcon = &icon.String
	}
	if color.Valid {
		detail.CategoryColor = &color.String
	}
	detail.CreatedAt, err = ParseDateFromDB(created)
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// ScanEntryDetails scans multiple entry details from database rows
func ScanEntryDetails(rows Rows) ([]*EntryDetail, error) {
	var details []*EntryDetail
	for rows.Next() {
		detail, err := ScanEntryDetail(rows)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
