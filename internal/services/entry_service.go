package services

import (
	"context"
	"time"

	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso"
	"action-tracker/internal/validation"
)

// entryServiceImpl implements the EntryService interface
type entryServiceImpl struct {
	deps
}

// Create records one occurrence of an action. For configurable actions
// the supplied values are validated against the action's current fields
// before anything is written; bare actions must not carry values.
func (s *entryServiceImpl) Create(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if err := s.validate.Validate(input); err != nil {
		return nil, errors.NewValidationError("invalid entry", err)
	}

	queryCtx, cancel := s.queryContext(ctx)
	dbAction, err := s.repo.GetAction(queryCtx, userID, input.ActionID)
	cancel()
	if err != nil {
		return nil, err
	}

	if dbAction.IsConfigurable {
		fields, err := s.loadFields(ctx, userID, input.ActionID)
		if err != nil {
			return nil, err
		}
		if err := s.validateValues(fields, input.FieldValues); err != nil {
			return nil, err
		}
	} else if !input.FieldValues.IsEmpty() {
		return nil, errors.NewValidationError("this action does not take field values", nil)
	}

	raw, err := input.FieldValues.Encode()
	if err != nil {
		return nil, errors.NewValidationError("field values cannot be serialized", err)
	}

	writeCtx, cancel := s.writeContext(ctx)
	defer cancel()

	dbEntry := &turso.Entry{
		ActionID:    input.ActionID,
		Notes:       input.Notes,
		FieldValues: raw,
	}
	if err := s.repo.CreateEntry(writeCtx, userID, dbEntry); err != nil {
		return nil, err
	}

	entry := s.mapper.Entry.FromDatabase(*dbEntry)
	if entry.CreatedAt.IsZero() {
		// Server-assigned date default; mirror it for the caller.
		now := time.Now()
		entry.CreatedAt = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return &entry, nil
}

// ListByAction returns the history of an action, most recent first,
// enriched with action and category attributes.
func (s *entryServiceImpl) ListByAction(ctx context.Context, actionID int64) ([]*domain.EntryDetail, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if actionID <= 0 {
		return nil, errors.NewInvalidInputError("action_id", actionID, "must be a positive integer")
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbDetails, err := s.repo.ListEntriesByAction(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}
	return s.mapper.Entry.DetailsFromDatabase(dbDetails), nil
}

// ListRecent returns the cross-category feed of the current user,
// most recent first. A non-positive limit falls back to the configured
// default.
func (s *entryServiceImpl) ListRecent(ctx context.Context, limit int) ([]*domain.EntryDetail, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.Commands.HistoryDefaultLimit
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbDetails, err := s.repo.ListRecentEntries(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return s.mapper.Entry.DetailsFromDatabase(dbDetails), nil
}

// GetLastEntry returns the most recent entry of an action, or nil if the
// action has never been performed. Used to render "last performed" labels.
func (s *entryServiceImpl) GetLastEntry(ctx context.Context, actionID int64) (*domain.Entry, error) {
	userID, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	if actionID <= 0 {
		return nil, errors.NewInvalidInputError("action_id", actionID, "must be a positive integer")
	}

	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbEntry, err := s.repo.GetLastEntry(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}
	if dbEntry == nil {
		return nil, nil
	}
	entry := s.mapper.Entry.FromDatabase(*dbEntry)
	return &entry, nil
}

// UpdateDate moves an entry to another calendar date; any time-of-day
// component is dropped before storage.
func (s *entryServiceImpl) UpdateDate(ctx context.Context, id int64, date time.Time) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("entry_id", id, "must be a positive integer")
	}
	if date.IsZero() {
		return errors.NewValidationError("entry date is required", nil)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.UpdateEntryDate(ctx, userID, id, date)
}

// UpdateFieldValues overwrites the recorded values of an entry after
// validating them against the owning action's current fields.
func (s *entryServiceImpl) UpdateFieldValues(ctx context.Context, id int64, values domain.FieldValues) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("entry_id", id, "must be a positive integer")
	}

	queryCtx, cancel := s.queryContext(ctx)
	dbEntry, err := s.repo.GetEntry(queryCtx, userID, id)
	cancel()
	if err != nil {
		return err
	}

	fields, err := s.loadFields(ctx, userID, dbEntry.ActionID)
	if err != nil {
		return err
	}
	if err := s.validateValues(fields, values); err != nil {
		return err
	}

	raw, err := values.Encode()
	if err != nil {
		return errors.NewValidationError("field values cannot be serialized", err)
	}

	writeCtx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.UpdateEntryFieldValues(writeCtx, userID, id, raw)
}

// Delete removes a single entry of the current user
func (s *entryServiceImpl) Delete(ctx context.Context, id int64) error {
	userID, err := s.requireUser()
	if err != nil {
		return err
	}
	if id <= 0 {
		return errors.NewInvalidInputError("entry_id", id, "must be a positive integer")
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.DeleteEntry(ctx, userID, id)
}

func (s *entryServiceImpl) loadFields(ctx context.Context, userID, actionID int64) ([]*domain.ActionField, error) {
	ctx, cancel := s.queryContext(ctx)
	defer cancel()

	dbFields, err := s.repo.ListFieldsByAction(ctx, userID, actionID)
	if err != nil {
		return nil, err
	}
	return s.mapper.ActionField.FromDatabaseSlice(dbFields), nil
}

func (s *entryServiceImpl) validateValues(fields []*domain.ActionField, values domain.FieldValues) error {
	if err := validation.ValidateFieldValues(fields, values); err != nil {
		return errors.NewValidationError("invalid field values", err)
	}
	return nil
}
