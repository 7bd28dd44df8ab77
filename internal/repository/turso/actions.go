package turso

import (
	"context"
	"fmt"

	"action-tracker/internal/errors"
)

// ListActionsByCategory retrieves the actions of a category, ordered by
// name. The category must belong to the user; a foreign category id
// yields an empty result, never another user's rows.
func (r *TursoRepository) ListActionsByCategory(ctx context.Context, userID, categoryID int64) ([]*Action, error) {
	query := `
	SELECT actions.id, actions.category_id, actions.name, actions.is_configurable, actions.created_at
	FROM actions
	WHERE actions.category_id = ? AND ` + actionOwnedScope + `
	ORDER BY actions.name ASC`

	return QueryMultiple(ctx, r.db, query, ScanActions, "actions", categoryID, userID)
}

// GetAction retrieves a single action by ID, scoped to the owner
func (r *TursoRepository) GetAction(ctx context.Context, userID, id int64) (*Action, error) {
	query := `
	SELECT actions.id, actions.category_id, actions.name, actions.is_configurable, actions.created_at
	FROM actions
	WHERE actions.id = ? AND ` + actionOwnedScope

	return QuerySingle(ctx, r.db, query, ScanAction, "action", fmt.Sprintf("%d", id), id, userID)
}

// CreateAction inserts an action after verifying that the target category
// belongs to the user. A foreign category fails with a permission error
// before anything is written.
func (r *TursoRepository) CreateAction(ctx context.Context, userID int64, action *Action) error {
	owned, err := categoryBelongsToUser(ctx, r.db, action.CategoryID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return errors.NewPermissionError("create action", "category").
			WithContext("category_id", action.CategoryID)
	}

	configurable := 0
	if action.IsConfigurable {
		configurable = 1
	}

	query := `
	INSERT INTO actions (category_id, name, is_configurable)
	VALUES (?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, action.CategoryID, action.Name, configurable)
	if err != nil {
		return err
	}

	action.ID = id
	return nil
}

// UpdateAction renames an action, scoped through the category → user join
func (r *TursoRepository) UpdateAction(ctx context.Context, userID, id int64, name string) error {
	query := `
	UPDATE actions
	SET name = ?
	WHERE id = ? AND ` + actionOwnedScope

	return Execute(ctx, r.db, query, name, id, userID)
}

// DeleteAction removes an action together with its fields and entries in
// one transaction, all statements owner-scoped.
func (r *TursoRepository) DeleteAction(ctx context.Context, userID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin action delete", err)
	}

	ownedAction := `
	SELECT a.id FROM actions a
	JOIN categories c ON a.category_id = c.id
	WHERE a.id = ? AND c.user_id = ?`

	statements := []struct {
		query string
		args  []interface{}
	}{
		{`DELETE FROM entries WHERE action_id IN (` + ownedAction + `)`, []interface{}{id, userID}},
		{`DELETE FROM action_fields WHERE action_id IN (` + ownedAction + `)`, []interface{}{id, userID}},
		{`DELETE FROM actions WHERE id = ? AND ` + actionOwnedScope, []interface{}{id, userID}},
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			tx.Rollback()
			return HandleDatabaseError("delete action", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit action delete", err)
	}
	return nil
}
