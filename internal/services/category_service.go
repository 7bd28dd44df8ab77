package services

import (
	"context"
	"strings"

	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso"
)

// categoryServiceImpl implements the CategoryService interface
type categoryServiceImpl struct {
	deps
}

// List returns all categories of the current user, ordered by name
func (s *categoryServiceImpl) List(ctx context.Context) ([]*domain.Category, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbCategories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Category.FromDatabaseSlice(dbCategories), nil
}

// Create inserts a category owned by the current user
func (s *categoryServiceImpl) Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Validate(input); err != nil {
		return nil, errors.NewValidationError("invalid category", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	dbCategory := &turso.Category{
		UserID: userID,
		Name:   input.Name,
		Icon:   input.Icon,
		Color:  input.Color,
	}
	if err := s.repo.CreateCategory(ctx, dbCategory); err != nil {
		return nil, err
	}

	category := s.mapper.Category.FromDatabase(*dbCategory)
	return &category, nil
}

// Update renames and re-icons a category of the current user. A foreign
// id matches zero rows and succeeds silently.
func (s *categoryServiceImpl) Update(ctx context.Context, input UpdateCategoryInput) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Validate(input); err != nil {
		return errors.NewValidationError("invalid category", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.UpdateCategory(ctx, userID, input.ID, input.Name, input.Icon)
}

// Delete removes a category of the current user together with its
// actions, fields, and entries.
func (s *categoryServiceImpl) Delete(ctx context.Context, id int64) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("category_id", id, "must be a positive integer")
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.DeleteCategory(ctx, userID, id)
}
