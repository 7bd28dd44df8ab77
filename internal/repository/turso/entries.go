package turso

import (
	"context"
	"fmt"
	"time"

	"action-tracker/internal/errors"
)

// CreateEntry records one occurrence of an action. The action must belong
// (transitively) to the user; created_at takes the server-assigned date
// default unless the entry carries an explicit date.
func (r *TursoRepository) CreateEntry(ctx context.Context, userID int64, entry *Entry) error {
	owned, err := actionBelongsToUser(ctx, r.db, entry.ActionID, userID)
	if err != nil {
		return err
	}
	if !owned {
		return errors.NewPermissionError("create entry", "action").
			WithContext("action_id", entry.ActionID)
	}

	var id int64
	if entry.CreatedAt.IsZero() {
		query := `
		INSERT INTO entries (action_id, notes, field_values)
		VALUES (?, ?, ?)`
		id, err = ExecuteWithLastInsertID(ctx, r.db, query,
			entry.ActionID, entry.Notes, nullableString(entry.FieldValues))
	} else {
		query := `
		INSERT INTO entries (action_id, notes, field_values, created_at)
		VALUES (?, ?, ?, ?)`
		id, err = ExecuteWithLastInsertID(ctx, r.db, query,
			entry.ActionID, entry.Notes, nullableString(entry.FieldValues), FormatDateForDB(entry.CreatedAt))
	}
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetEntry retrieves a single entry by ID, scoped to the owner
func (r *TursoRepository) GetEntry(ctx context.Context, userID, id int64) (*Entry, error) {
	query := `
	SELECT entries.id, entries.action_id, entries.notes, entries.field_values, entries.created_at
	FROM entries
	WHERE entries.id = ? AND ` + entryOwnedScope

	return QuerySingle(ctx, r.db, query, ScanEntry, "entry", fmt.Sprintf("%d", id), id, userID)
}

// ListEntriesByAction retrieves the history of an action enriched with
// action and category attributes, most recent first (id breaks date ties).
func (r *TursoRepository) ListEntriesByAction(ctx context.Context, userID, actionID int64) ([]*EntryDetail, error) {
	query := `
	SELECT
		entries.id,
		entries.action_id,
		entries.notes,
		entries.field_values,
		entries.created_at,
		a.name AS action_name,
		c.name AS category_name,
		c.icon AS category_icon,
		c.color AS category_color
	FROM entries
	JOIN actions a ON entries.action_id = a.id
	JOIN categories c ON a.category_id = c.id
	WHERE entries.action_id = ? AND c.user_id = ?
	ORDER BY entries.created_at DESC, entries.id DESC`

	return QueryMultiple(ctx, r.db, query, ScanEntryDetails, "entries", actionID, userID)
}

// ListRecentEntries retrieves the cross-category feed for the user,
// most recent first, bounded by limit.
func (r *TursoRepository) ListRecentEntries(ctx context.Context, userID int64, limit int) ([]*EntryDetail, error) {
	query := `
	SELECT
		entries.id,
		entries.action_id,
		entries.notes,
		entries.field_values,
		entries.created_at,
		a.name AS action_name,
		c.name AS category_name,
		c.icon AS category_icon,
		c.color AS category_color
	FROM entries
	JOIN actions a ON entries.action_id = a.id
	JOIN categories c ON a.category_id = c.id
	WHERE c.user_id = ?
	ORDER BY entries.created_at DESC, entries.id DESC
	LIMIT ?`

	return QueryMultiple(ctx, r.db, query, ScanEntryDetails, "entries", userID, limit)
}

// GetLastEntry retrieves the most recent entry of an action, or nil if
// the action has never been performed.
func (r *TursoRepository) GetLastEntry(ctx context.Context, userID, actionID int64) (*Entry, error) {
	query := `
	SELECT entries.id, entries.action_id, entries.notes, entries.field_values, entries.created_at
	FROM entries
	JOIN actions a ON entries.action_id = a.id
	JOIN categories c ON a.category_id = c.id
	WHERE entries.action_id = ? AND c.user_id = ?
	ORDER BY entries.created_at DESC, entries.id DESC
	LIMIT 1`

	return QuerySingleOrNil(ctx, r.db, query, ScanEntry, "entry", actionID, userID)
}

// UpdateEntryDate moves an entry to another calendar date. The input is
// truncated to date granularity before storage.
func (r *TursoRepository) UpdateEntryDate(ctx context.Context, userID, id int64, date time.Time) error {
	query := `
	UPDATE entries
	SET created_at = ?
	WHERE id = ? AND ` + entryOwnedScope

	return Execute(ctx, r.db, query, FormatDateForDB(date), id, userID)
}

// UpdateEntryFieldValues overwrites the stored field_values blob
func (r *TursoRepository) UpdateEntryFieldValues(ctx context.Context, userID, id int64, fieldValues *string) error {
	query := `
	UPDATE entries
	SET field_values = ?
	WHERE id = ? AND ` + entryOwnedScope

	return Execute(ctx, r.db, query, nullableString(fieldValues), id, userID)
}

// DeleteEntry removes a single entry, owner-scoped
func (r *TursoRepository) DeleteEntry(ctx context.Context, userID, id int64) error {
	query := `
	DELETE FROM entries
	WHERE id = ? AND ` + entryOwnedScope

	return Execute(ctx, r.db, query, id, userID)
}
