package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"action-tracker/internal/config"
	"action-tracker/internal/domain"
	"action-tracker/internal/errors"
	"action-tracker/internal/repository/turso"
	"action-tracker/internal/session"
)

func setupServices(t *testing.T) (*Services, *session.Resolver) {
	dir := t.TempDir()

	repo, err := turso.New(filepath.Join(dir, "tracker.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	cfg := config.NewConfig()
	cfg.Preferences.Dir = dir

	resolver := session.NewResolver(session.OpenPreferences(cfg.GetPreferencesPath()))

	return NewServices(repo, resolver, cfg), resolver
}

// setupSelected returns services with profile 1 already selected.
func setupSelected(t *testing.T) (*Services, *session.Resolver) {
	svcs, resolver := setupServices(t)
	resolver.SetCurrentUserID(1)
	return svcs, resolver
}

func createFuelAction(t *testing.T, svcs *Services) *domain.Action {
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Car"})
	require.NoError(t, err)

	action, err := svcs.Action.Create(ctx, CreateActionInput{
		CategoryID:     category.ID,
		Name:           "Fuel",
		IsConfigurable: true,
	})
	require.NoError(t, err)

	_, err = svcs.Field.Create(ctx, CreateFieldInput{
		ActionID:     action.ID,
		FieldName:    "Liters",
		FieldType:    "number",
		DisplayOrder: 1,
	})
	require.NoError(t, err)

	_, err = svcs.Field.Create(ctx, CreateFieldInput{
		ActionID:     action.ID,
		FieldName:    "Price",
		FieldType:    "text",
		DisplayOrder: 2,
	})
	require.NoError(t, err)

	return action
}

func TestOperationsRequireSelectedProfile(t *testing.T) {
	svcs, resolver := setupServices(t)
	ctx := context.Background()

	_, err := svcs.Category.List(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))

	_, err = svcs.Category.Create(ctx, CreateCategoryInput{Name: "Car"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))

	_, err = svcs.Entry.Create(ctx, CreateEntryInput{ActionID: 1})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))

	err = svcs.Demo.Seed(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNoUser))

	// Nothing was written while unselected
	resolver.SetCurrentUserID(1)
	categories, err := svcs.Category.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryLifecycle(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	icon := "🚗"
	color := "#ef4444"
	category, err := svcs.Category.Create(ctx, CreateCategoryInput{
		Name:  "  Car  ",
		Icon:  &icon,
		Color: &color,
	})
	require.NoError(t, err)
	assert.Equal(t, "Car", category.Name)
	assert.Greater(t, category.ID, int64(0))

	require.NoError(t, svcs.Category.Update(ctx, UpdateCategoryInput{
		ID:   category.ID,
		Name: "Vehicle",
		Icon: &icon,
	}))

	categories, err := svcs.Category.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Vehicle", categories[0].Name)

	require.NoError(t, svcs.Category.Delete(ctx, category.ID))

	categories, err = svcs.Category.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryValidation(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	_, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "   "})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	badColor := "red"
	_, err = svcs.Category.Create(ctx, CreateCategoryInput{Name: "Car", Color: &badColor})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestProfileSwitchIsolation(t *testing.T) {
	svcs, resolver := setupSelected(t)
	ctx := context.Background()

	_, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Car"})
	require.NoError(t, err)

	resolver.SetCurrentUserID(2)
	categories, err := svcs.Category.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	resolver.SetCurrentUserID(1)
	categories, err = svcs.Category.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestActionLifecycle(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Car"})
	require.NoError(t, err)

	action, err := svcs.Action.Create(ctx, CreateActionInput{
		CategoryID: category.ID,
		Name:       "Oil change",
	})
	require.NoError(t, err)
	assert.False(t, action.IsConfigurable)

	require.NoError(t, svcs.Action.Update(ctx, action.ID, "Oil and filter change"))

	retrieved, err := svcs.Action.Get(ctx, action.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oil and filter change", retrieved.Name)

	require.NoError(t, svcs.Action.Delete(ctx, action.ID))

	_, err = svcs.Action.Get(ctx, action.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestBareActionRejectsFieldValues(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Me"})
	require.NoError(t, err)

	action, err := svcs.Action.Create(ctx, CreateActionInput{
		CategoryID: category.ID,
		Name:       "Haircut",
	})
	require.NoError(t, err)

	_, err = svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		FieldValues: domain.FieldValues{"Length": "short"},
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	// Without values the entry goes through
	entry, err := svcs.Entry.Create(ctx, CreateEntryInput{ActionID: action.ID})
	require.NoError(t, err)
	assert.Greater(t, entry.ID, int64(0))
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestConfigurableActionEntryFlow(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	action := createFuelAction(t, svcs)

	// Missing a declared field
	_, err := svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		FieldValues: domain.FieldValues{"Liters": "4.5"},
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	// Non-numeric value for a number field
	_, err = svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		FieldValues: domain.FieldValues{"Liters": "full tank", "Price": "52.80"},
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	// Unknown key
	_, err = svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		FieldValues: domain.FieldValues{"Liters": "4.5", "Price": "52.80", "Octane": "95"},
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	entry, err := svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		Notes:       "motorway trip",
		FieldValues: domain.FieldValues{"Liters": "4.5", "Price": "52.80"},
	})
	require.NoError(t, err)

	details, err := svcs.Entry.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Fuel", details[0].ActionName)
	assert.Equal(t, "Car", details[0].CategoryName)
	assert.Equal(t, "motorway trip", details[0].Notes)
	assert.Equal(t, domain.FieldValues{"Liters": "4.5", "Price": "52.80"}, details[0].FieldValues)

	// Overwrite the recorded values
	require.NoError(t, svcs.Entry.UpdateFieldValues(ctx, entry.ID,
		domain.FieldValues{"Liters": "6.0", "Price": "70.10"}))

	details, err = svcs.Entry.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "6.0", details[0].FieldValues["Liters"])

	// Invalid overwrite is rejected before anything is written
	err = svcs.Entry.UpdateFieldValues(ctx, entry.ID, domain.FieldValues{"Liters": "nope", "Price": "1"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}

func TestGetLastEntry(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Home"})
	require.NoError(t, err)
	action, err := svcs.Action.Create(ctx, CreateActionInput{CategoryID: category.ID, Name: "Gutters"})
	require.NoError(t, err)

	last, err := svcs.Entry.GetLastEntry(ctx, action.ID)
	require.NoError(t, err)
	assert.Nil(t, last)

	entry, err := svcs.Entry.Create(ctx, CreateEntryInput{ActionID: action.ID})
	require.NoError(t, err)

	last, err = svcs.Entry.GetLastEntry(ctx, action.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, entry.ID, last.ID)
}

func TestUpdateEntryDate(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Me"})
	require.NoError(t, err)
	action, err := svcs.Action.Create(ctx, CreateActionInput{CategoryID: category.ID, Name: "Dentist"})
	require.NoError(t, err)
	entry, err := svcs.Entry.Create(ctx, CreateEntryInput{ActionID: action.ID})
	require.NoError(t, err)

	err = svcs.Entry.UpdateDate(ctx, entry.ID, time.Time{})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	moved := time.Date(2026, 2, 14, 16, 45, 0, 0, time.UTC)
	require.NoError(t, svcs.Entry.UpdateDate(ctx, entry.ID, moved))

	details, err := svcs.Entry.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "2026-02-14", details[0].CreatedAt.Format("2006-01-02"))
}

func TestListRecentUsesConfiguredDefaultLimit(t *testing.T) {
	svcs, resolver := setupServices(t)
	resolver.SetCurrentUserID(1)
	ctx := context.Background()

	category, err := svcs.Category.Create(ctx, CreateCategoryInput{Name: "Home"})
	require.NoError(t, err)
	action, err := svcs.Action.Create(ctx, CreateActionInput{CategoryID: category.ID, Name: "Garden"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svcs.Entry.Create(ctx, CreateEntryInput{ActionID: action.ID})
		require.NoError(t, err)
	}

	details, err := svcs.Entry.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, details, 3)

	details, err = svcs.Entry.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, details, 2)
}

func TestFieldLifecycle(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	action := createFuelAction(t, svcs)

	fields, err := svcs.Field.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "Liters", fields[0].FieldName)
	assert.Equal(t, domain.FieldTypeNumber, fields[0].FieldType)

	_, err = svcs.Field.Create(ctx, CreateFieldInput{
		ActionID:  action.ID,
		FieldName: "When",
		FieldType: "date",
	})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	require.NoError(t, svcs.Field.Update(ctx, UpdateFieldInput{
		ID:        fields[0].ID,
		FieldName: "Litres",
		FieldType: "number",
	}))

	require.NoError(t, svcs.Field.Delete(ctx, fields[1].ID))

	fields, err = svcs.Field.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Litres", fields[0].FieldName)

	require.NoError(t, svcs.Field.DeleteByAction(ctx, action.ID))

	fields, err = svcs.Field.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestDeletedFieldKeepsHistoricalValues(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	action := createFuelAction(t, svcs)

	_, err := svcs.Entry.Create(ctx, CreateEntryInput{
		ActionID:    action.ID,
		FieldValues: domain.FieldValues{"Liters": "4.5", "Price": "52.80"},
	})
	require.NoError(t, err)

	require.NoError(t, svcs.Field.DeleteByAction(ctx, action.ID))

	details, err := svcs.Entry.ListByAction(ctx, action.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "4.5", details[0].FieldValues["Liters"])
}

func TestSeedCreatesDemoCatalog(t *testing.T) {
	svcs, _ := setupSelected(t)
	ctx := context.Background()

	require.NoError(t, svcs.Demo.Seed(ctx))

	categories, err := svcs.Category.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 4)

	// Ordered by name: Car, Health, Home, Me
	assert.Equal(t, "Car", categories[0].Name)
	require.NotNil(t, categories[0].Icon)
	assert.Equal(t, "🚗", *categories[0].Icon)
	require.NotNil(t, categories[0].Color)
	assert.Equal(t, "#ef4444", *categories[0].Color)

	actions, err := svcs.Action.ListByCategory(ctx, categories[0].ID)
	require.NoError(t, err)
	assert.Len(t, actions, 4)
}

func TestWipeClearsEverything(t *testing.T) {
	svcs, resolver := setupSelected(t)
	ctx := context.Background()

	require.NoError(t, svcs.Demo.Seed(ctx))

	resolver.SetCurrentUserID(2)
	require.NoError(t, svcs.Demo.Seed(ctx))

	require.NoError(t, svcs.Demo.Wipe(ctx))

	for _, userID := range []int64{1, 2} {
		resolver.SetCurrentUserID(userID)
		categories, err := svcs.Category.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)
	}
}
