package turso

import (
	"context"
	"database/sql"
)

// Ownership predicates shared by every repository method. All data access
// is scoped through the chain entry → action → category → user; no query
// may run without an owner id bound into one of these clauses.
const (
	// categoryOwnedScope restricts categories rows to the given owner.
	categoryOwnedScope = `categories.user_id = ?`

	// actionOwnedScope restricts actions rows to those whose category
	// belongs to the given owner.
	actionOwnedScope = `actions.category_id IN (
		SELECT c.id FROM categories c WHERE c.user_id = ?)`

	// fieldOwnedScope restricts action_fields rows through the
	// action → category → user chain.
	fieldOwnedScope = `action_fields.action_id IN (
		SELECT a.id FROM actions a
		JOIN categories c ON a.category_id = c.id
		WHERE c.user_id = ?)`

	// entryOwnedScope restricts entries rows through the
	// action → category → user chain.
	entryOwnedScope = `entries.action_id IN (
		SELECT a.id FROM actions a
		JOIN categories c ON a.category_id = c.id
		WHERE c.user_id = ?)`
)

// categoryBelongsToUser reports whether a category is owned by the user.
func categoryBelongsToUser(ctx context.Context, db *sql.DB, categoryID, userID int64) (bool, error) {
	query := `SELECT 1 FROM categories WHERE id = ? AND user_id = ?`
	return QueryExists(ctx, db, query, categoryID, userID)
}

// actionBelongsToUser reports whether an action is transitively owned by
// the user via its category.
func actionBelongsToUser(ctx context.Context, db *sql.DB, actionID, userID int64) (bool, error) {
	query := `
	SELECT 1 FROM actions a
	JOIN categories c ON a.category_id = c.id
	WHERE a.id = ? AND c.user_id = ?`
	return QueryExists(ctx, db, query, actionID, userID)
}
