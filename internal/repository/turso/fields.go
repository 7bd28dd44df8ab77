package turso

import (
	"context"

	"action-tracker/internal/errors"
)

// ListFieldsByAction retrieves the fields of an action ordered by
// display_order, id as tiebreak. Scoped through the action → category →
// user chain like every other entity.
func (r *TursoRepository) ListFieldsByAction(ctx context.Context, userID, actionID int64) ([]*ActionField, error) {
	query := `
	SELECT action_fields.id, action_fields.action_id, action_fields.field_name,
	       action_fields.field_type, action_fields.display_order
	FROM action_fields
	WHERE action_fields.action_id = ? AND ` + fieldOwnedScope + `
	ORDER BY action_fields.display_order ASC, action_fields.id ASC`

	return QueryMultiple(ctx, r.db, query, ScanActionFields, "action fields", actionID, userID)
}

// CreateField inserts a field after verifying action ownership
func (r *TursoRepository) CreateField(ctx context.Context, userID int64, field *ActionField) error {
	owned, err := actionBelongsToUser(ctx, r.db, field.ActionID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return errors.NewPermissionError("create field", "action").
			WithContext("action_id", field.ActionID)
	}

	query := `
	INSERT INTO action_fields (action_id, field_name, field_type, display_order)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		field.ActionID, field.FieldName, field.FieldType, field.DisplayOrder)
	if err != nil {
		return err
	}

	field.ID = id
	return nil
}

// UpdateField renames or retypes a field, owner-scoped
func (r *TursoRepository) UpdateField(ctx context.Context, userID, id int64, fieldName, fieldType string) error {
	query := `
	UPDATE action_fields
	SET field_name = ?, field_type = ?
	WHERE id = ? AND ` + fieldOwnedScope

	return Execute(ctx, r.db, query, fieldName, fieldType, id, userID)
}

// DeleteField removes a single field. Field values already stored on
// existing entries are left untouched; entries are historical snapshots.
func (r *TursoRepository) DeleteField(ctx context.Context, userID, id int64) error {
	query := `
	DELETE FROM action_fields
	WHERE id = ? AND ` + fieldOwnedScope

	return Execute(ctx, r.db, query, id, userID)
}

// DeleteFieldsByAction removes every field of an action, owner-scoped
func (r *TursoRepository) DeleteFieldsByAction(ctx context.Context, userID, actionID int64) error {
	query := `
	DELETE FROM action_fields
	WHERE action_id = ? AND ` + fieldOwnedScope

	return Execute(ctx, r.db, query, actionID, userID)
}
