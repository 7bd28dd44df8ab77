package services

import (
	"context"
	"strings"

	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso"
)

// actionServiceImpl implements the ActionService interface
type actionServiceImpl struct {
	deps
}

// ListByCategory returns the actions of a category owned by the current
// user, ordered by name. A foreign category id yields an empty list.
func (s *actionServiceImpl) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Action, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if categoryID <= 0 {
		return nil, errors.NewInvalidInputError("category_id", categoryID, "must be a positive integer")
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbActions, err := s.repo.ListActionsByCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Action.FromDatabaseSlice(dbActions), nil
}

// Get retrieves a single action owned by the current user
func (s *actionServiceImpl) Get(ctx context.Context, id int64) (*domain.Action, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, errors.NewInvalidInputError("action_id", id, "must be a positive integer")
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbAction, err := s.repo.GetAction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	action := s.mapper.Action.FromDatabase(*dbAction)
	return &action, nil
}

// Create inserts an action after the repository verifies that the target
// category belongs to the current user.
func (s *actionServiceImpl) Create(ctx context.Context, input CreateActionInput) (*domain.Action, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Validate(input); err != nil {
		return nil, errors.NewValidationError("invalid action", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	dbAction := &turso.Action{
		CategoryID:     input.CategoryID,
		Name:           input.Name,
		IsConfigurable: input.IsConfigurable,
	}
	if err := s.repo.CreateAction(ctx, userID, dbAction); err != nil {
		return nil, err
	}

	action := s.mapper.Action.FromDatabase(*dbAction)
	return &action, nil
}

// Update renames an action of the current user
func (s *actionServiceImpl) Update(ctx context.Context, id int64, name string) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("action_id", id, "must be a positive integer")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("action name is required", nil)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.UpdateAction(ctx, userID, id, name)
}

// Delete removes an action of the current user together with its fields
// and entries.
func (s *actionServiceImpl) Delete(ctx context.Context, id int64) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("action_id", id, "must be a positive integer")
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.DeleteAction(ctx, userID, id)
}
