package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"action-tracker/internal/errors"
)

func prefsPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "prefs.json")
}

func TestPreferencesRoundTrip(t *testing.T) {
	path := prefsPath(t)

	prefs := OpenPreferences(path)
	assert.Nil(t, prefs.Get("user_id"))

	prefs.Set("user_id", "1")

	// Reopen from disk
	reopened := OpenPreferences(path)
	value := reopened.Get("user_id")
	require.NotNil(t, value)
	assert.Equal(t, "1", *value)

	reopened.Remove("user_id")
	assert.Nil(t, OpenPreferences(path).Get("user_id"))
}

func TestPreferencesMissingFileIsEmpty(t *testing.T) {
	prefs := OpenPreferences(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.Nil(t, prefs.Get("anything"))
}

func TestPreferencesMalformedFileIsEmpty(t *testing.T) {
	path := prefsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	prefs := OpenPreferences(path)
	assert.Nil(t, prefs.Get("user_id"))

	// Still writable after a bad read
	prefs.Set("user_id", "2")
	value := OpenPreferences(path).Get("user_id")
	require.NotNil(t, value)
	assert.Equal(t, "2", *value)
}

func TestResolverNoSelection(t *testing.T) {
	resolver := NewResolver(OpenPreferences(prefsPath(t)))

	assert.Nil(t, resolver.CurrentUserID())
	assert.Nil(t, resolver.CurrentUser())

	_, err := resolver.RequireUserID()
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))
}

func TestResolverSelectAndClear(t *testing.T) {
	resolver := NewResolver(OpenPreferences(prefsPath(t)))

	resolver.SetCurrentUserID(1)

	id, err := resolver.RequireUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	user := resolver.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Kevin", user.Name)

	resolver.ClearCurrentUser()
	assert.Nil(t, resolver.CurrentUserID())
}

func TestResolverSelectionPersistsAcrossOpens(t *testing.T) {
	path := prefsPath(t)

	NewResolver(OpenPreferences(path)).SetCurrentUserID(2)

	resolver := NewResolver(OpenPreferences(path))
	user := resolver.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "Fanny", user.Name)
}

func TestResolverUnparsableStoredValue(t *testing.T) {
	prefs := OpenPreferences(prefsPath(t))
	prefs.Set(userIDKey, "not-a-number")

	resolver := NewResolver(prefs)
	assert.Nil(t, resolver.CurrentUserID())

	_, err := resolver.RequireUserID()
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))
}

func TestResolverUnknownIDResolvesToNoUser(t *testing.T) {
	resolver := NewResolver(OpenPreferences(prefsPath(t)))
	resolver.SetCurrentUserID(99)

	// The id round-trips but matches no profile
	id := resolver.CurrentUserID()
	require.NotNil(t, id)
	assert.Equal(t, int64(99), *id)
	assert.Nil(t, resolver.CurrentUser())
}
