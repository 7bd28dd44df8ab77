package services

import (
	"context"
	"strings"

	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso"
)

// actionFieldServiceImpl implements the ActionFieldService interface.
// Field access runs through the same action → category → user scoping as
// every other entity.
type actionFieldServiceImpl struct {
	deps
}

// ListByAction returns the fields of an action ordered by display_order
func (s *actionFieldServiceImpl) ListByAction(ctx context.Context, actionID int64) ([]*domain.ActionField, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if actionID <= 0 {
		return nil, errors.NewInvalidInputError("action_id", actionID, "must be a positive integer")
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbFields, err := s.repo.ListFieldsByAction(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}
	return s.mapper.ActionField.FromDatabaseSlice(dbFields), nil
}

// Create adds a field to an action owned by the current user
func (s *actionFieldServiceImpl) Create(ctx context.Context, input CreateFieldInput) (*domain.ActionField, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	input.FieldName = strings.TrimSpace(input.FieldName)
	if err := s.validate.Validate(input); err != nil {
		return nil, errors.NewValidationError("invalid field", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	dbField := &turso.ActionField{
		ActionID:     input.ActionID,
		FieldName:    input.FieldName,
		FieldType:    input.FieldType,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.repo.CreateField(ctx, userID, dbField); err != nil {
		return nil, err
	}

	field := s.mapper.ActionField.FromDatabase(*dbField)
	return &field, nil
}

// Update renames or retypes a field of the current user
func (s *actionFieldServiceImpl) Update(ctx context.Context, input UpdateFieldInput) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	input.FieldName = strings.TrimSpace(input.FieldName)
	if err := s.validate.Validate(input); err != nil {
		return errors.NewValidationError("invalid field", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.UpdateField(ctx, userID, input.ID, input.FieldName, input.FieldType)
}

// Delete removes a single field. Values already recorded on existing
// entries keep their stored blobs untouched.
func (s *actionFieldServiceImpl) Delete(ctx context.Context, id int64) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("field_id", id, "must be a positive integer")
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.DeleteField(ctx, userID, id)
}

// DeleteByAction removes every field of an action
func (s *actionFieldServiceImpl) DeleteByAction(ctx context.Context, actionID int64) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if actionID <= 0 {
		return errors.NewInvalidInputError("action_id", actionID, "must be a positive integer")
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.DeleteFieldsByAction(ctx, userID, actionID)
}
