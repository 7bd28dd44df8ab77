package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoUserError(t *testing.T) {
	err := NewNoUserError()

	assert.Equal(t, ErrorTypeNoUser, err.Type)
	assert.Equal(t, "NO_USER_SELECTED", err.Code)
	assert.True(t, IsErrorType(err, ErrorTypeNoUser))
	assert.Contains(t, GetUserMessage(err), "No profile selected")
	assert.False(t, ShouldLogError(err))
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("action", "42")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.Equal(t, "action not found: 42", err.Message)
	assert.Equal(t, "NOT_FOUND", GetErrorCode(err))
	assert.False(t, ShouldLogError(err))
}

func TestDatabaseErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := NewDatabaseError("execute query", cause)

	assert.True(t, IsErrorType(err, ErrorTypeDatabase))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "A database error occurred. Please try again.", GetUserMessage(err))
	assert.True(t, ShouldLogError(err))
}

func TestPermissionError(t *testing.T) {
	err := NewPermissionError("create action", "category").WithContext("category_id", int64(7))

	assert.True(t, IsErrorType(err, ErrorTypePermission))
	value, ok := err.GetContext("category_id")
	require.True(t, ok)
	assert.Equal(t, int64(7), value)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	inner := NewValidationError("invalid category", nil)
	wrapped := WrapError(inner, ErrorTypeDatabase, "outer")

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeDatabase, appErr.Type)

	// Plain errors are not app errors
	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeValidation))
}

func TestGetUserMessageFallsBackToErrorString(t *testing.T) {
	plain := stderrors.New("plain failure")
	assert.Equal(t, "plain failure", GetUserMessage(plain))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(plain))
	assert.True(t, ShouldLogError(plain))
}
