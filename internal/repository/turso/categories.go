package turso

import (
	"context"
)

// ListCategories retrieves all categories owned by the user, ordered by name
func (r *TursoRepository) ListCategories(ctx context.Context, userID int64) ([]*Category, error) {
	query := `
	SELECT id, user_id, name, icon, color, created_at
	FROM categories
	WHERE ` + categoryOwnedScope + `
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanCategories, "categories", userID)
}

// CreateCategory inserts a category owned by category.UserID
func (r *TursoRepository) CreateCategory(ctx context.Context, category *Category) error {
	query := `
	INSERT INTO categories (user_id, name, icon, color)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		category.UserID, category.Name, nullableString(category.Icon), nullableString(category.Color))
	if err != nil {
		return err
	}

	category.ID = id
	return nil
}

// UpdateCategory renames and re-icons a category. The statement matches on
// both id and owner, so a foreign id affects zero rows and returns nil.
func (r *TursoRepository) UpdateCategory(ctx context.Context, userID, id int64, name string, icon *string) error {
	query := `
	UPDATE categories
	SET name = ?, icon = ?
	WHERE id = ? AND ` + categoryOwnedScope

	return Execute(ctx, r.db, query, name, nullableString(icon), id, userID)
}

// DeleteCategory removes a category and, in the same transaction, every
// action, action field, and entry beneath it. The schema declares plain
// foreign keys without ON DELETE CASCADE, so cleanup is orchestrated here.
func (r *TursoRepository) DeleteCategory(ctx context.Context, userID, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin category delete", err)
	}

	actionsInCategory := `
	SELECT a.id FROM actions a
	JOIN categories c ON a.category_id = c.id
	WHERE c.id = ? AND c.user_id = ?`

	statements := []struct {
		query string
		args  []interface{}
	}{
		{`DELETE FROM entries WHERE action_id IN (` + actionsInCategory + `)`, []interface{}{id, userID}},
		{`DELETE FROM action_fields WHERE action_id IN (` + actionsInCategory + `)`, []interface{}{id, userID}},
		{`DELETE FROM actions WHERE category_id = ? AND ` + actionOwnedScope, []interface{}{id, userID}},
		{`DELETE FROM categories WHERE id = ? AND ` + categoryOwnedScope, []interface{}{id, userID}},
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			tx.Rollback()
			return HandleDatabaseError("delete category", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit category delete", err)
	}
	return nil
}
