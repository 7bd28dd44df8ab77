package turso

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso/migrations"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations. Every method
// that touches user-owned rows takes the owner id explicitly; there is no
// ambient current-user state at this layer.
type Repository interface {
	// Category operations
	ListCategories(ctx context.Context, userID int64) ([]*Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	UpdateCategory(ctx context.Context, userID, id int64, name string, icon *string) error
	DeleteCategory(ctx context.Context, userID, id int64) error

	// Action operations
	ListActionsByCategory(ctx context.Context, userID, categoryID int64) ([]*Action, error)
	GetAction(ctx context.Context, userID, id int64) (*Action, error)
	CreateAction(ctx context.Context, userID int64, action *Action) error
	UpdateAction(ctx context.Context, userID, id int64, name string) error
	DeleteAction(ctx context.Context, userID, id int64) error

	// Action field operations
	ListFieldsByAction(ctx context.Context, userID, actionID int64) ([]*ActionField, error)
	CreateField(ctx context.Context, userID int64, field *ActionField) error
	UpdateField(ctx context.Context, userID, id int64, fieldName, fieldType string) error
	DeleteField(ctx context.Context, userID, id int64) error
	DeleteFieldsByAction(ctx context.Context, userID, actionID int64) error

	// Entry operations
	CreateEntry(ctx context.Context, userID int64, entry *Entry) error
	GetEntry(ctx context.Context, userID, id int64) (*Entry, error)
	ListEntriesByAction(ctx context.Context, userID, actionID int64) ([]*EntryDetail, error)
	ListRecentEntries(ctx context.Context, userID int64, limit int) ([]*EntryDetail, error)
	GetLastEntry(ctx context.Context, userID, actionID int64) (*Entry, error)
	UpdateEntryDate(ctx context.Context, userID, id int64, date time.Time) error
	UpdateEntryFieldValues(ctx context.Context, userID, id int64, fieldValues *string) error
	DeleteEntry(ctx context.Context, userID, id int64) error

	// Utility
	WipeAll(ctx context.Context) error
	Close() error
}

// TursoRepository implements the Repository interface over a shared
// *sql.DB handle: remote libsql for Turso URLs, local sqlite otherwise.
type TursoRepository struct {
	db *sql.DB
}

// New opens the database, runs migrations, and returns a repository.
// The handle is constructed once at process start and injected into the
// service layer; there is no lazy initialization.
func New(url, authToken string) (*TursoRepository, error) {
	db, err := open(url, authToken)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &TursoRepository{db: db}, nil
}

func open(url, authToken string) (*sql.DB, error) {
	if isRemoteURL(url) {
		dsn := url
		if authToken != "" {
			sep := "?"
			if strings.Contains(url, "?") {
				sep = "&"
			}
			dsn = url + sep + "authToken=" + authToken
		}
		return sql.Open("libsql", dsn)
	}
	return sql.Open("sqlite", url)
}

func isRemoteURL(url string) bool {
	return strings.HasPrefix(url, "libsql://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "wss://")
}

// Close closes the database connection
func (r *TursoRepository) Close() error {
	return r.db.Close()
}

// WipeAll deletes every row from every table, both profiles included.
// Child tables go first so the statements also hold under enforced
// foreign keys.
func (r *TursoRepository) WipeAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin wipe", err)
	}

	for _, stmt := range []string{
		`DELETE FROM entries`,
		`DELETE FROM action_fields`,
		`DELETE FROM actions`,
		`DELETE FROM categories`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return HandleDatabaseError("wipe data", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit wipe", err)
	}
	return nil
}
