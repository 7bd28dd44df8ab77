package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"action-tracker/internal/errors"
)

func TestHandleWrapsAppErrors(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.Handle("list categories", errors.NewNoUserError())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list categories")
	assert.Contains(t, err.Error(), "No profile selected")
}

func TestHandleDatabaseErrorHidesInternals(t *testing.T) {
	eh := NewErrorHandler()

	cause := stderrors.New("connect: connection refused")
	err := eh.Handle("log entry", errors.NewDatabaseError("execute query", cause))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A database error occurred")
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestHandlePassesUnknownErrorsThrough(t *testing.T) {
	eh := NewErrorHandler()

	cause := stderrors.New("something odd")
	err := eh.Handle("seed demo data", cause)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed demo data")
	assert.ErrorIs(t, err, cause)
}

func TestHandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	err := eh.HandleSimple(errors.NewNotFoundError("action", "42"))
	assert.Equal(t, "action not found: 42", err.Error())

	plain := stderrors.New("plain")
	assert.Equal(t, plain, eh.HandleSimple(plain))
}

func TestErrorClassifiers(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsNoUserError(errors.NewNoUserError()))
	assert.False(t, eh.IsNoUserError(stderrors.New("nope")))

	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("entry", "1")))
	assert.True(t, eh.IsValidationError(errors.NewValidationError("bad", nil)))

	assert.Equal(t, "NO_USER_SELECTED", eh.GetErrorCode(errors.NewNoUserError()))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(stderrors.New("x")))
}
