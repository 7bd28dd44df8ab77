package session

import (
	"strconv"

	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
)

// userIDKey is the preference key holding the selected profile id.
const userIDKey = "user_id"

// Resolver reads and writes the locally persisted profile selection.
// It is the single source of the owner id the service layer passes into
// every repository call.
type Resolver struct {
	prefs *Preferences
}

// NewResolver creates a resolver over the given preference store.
func NewResolver(prefs *Preferences) *Resolver {
	return &Resolver{prefs: prefs}
}

// CurrentUserID returns the persisted profile id, or nil if no profile
// has been chosen yet. An unparsable stored value counts as no profile.
func (r *Resolver) CurrentUserID() *int64 {
	raw := r.prefs.Get(userIDKey)
	if raw == nil {
		return nil
	}
	id, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return nil
	}
	return &id
}

// SetCurrentUserID persists the chosen profile id. The id is not
// validated against the static profile table here; CurrentUser resolves
// unknown ids to nil.
func (r *Resolver) SetCurrentUserID(id int64) {
	r.prefs.Set(userIDKey, strconv.FormatInt(id, 10))
}

// CurrentUser resolves the persisted id against the static profile table.
func (r *Resolver) CurrentUser() *domain.User {
	id := r.CurrentUserID()
	if id == nil {
		return nil
	}
	return domain.UserByID(*id)
}

// ClearCurrentUser removes the persisted selection, returning the
// application to the profile-selection state.
func (r *Resolver) ClearCurrentUser() {
	r.prefs.Remove(userIDKey)
}

// RequireUserID returns the selected profile id or the no-user error.
// Every data operation calls this before touching the store: no query
// may execute without a resolved owner id.
func (r *Resolver) RequireUserID() (int64, error) {
	id := r.CurrentUserID()
	if id == nil {
		return 0, errors.NewNoUserError()
	}
	return *id, nil
}
