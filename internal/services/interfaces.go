package services

import (
	"context"
	"time"

	"action-tracker/internal/config"
	"action-tracker/internal/domain"
	"action-tracker/internal/repository/turso"
	"action-tracker/internal/session"
	"action-tracker/internal/validation"
)

// CreateCategoryInput carries the caller-supplied attributes of a new category.
type CreateCategoryInput struct {
	Name  string  `validate:"required,min=1,max=255"`
	Icon  *string `validate:"omitempty,max=64"`
	Color *string `validate:"omitempty,hexcolor_optional"`
}

// UpdateCategoryInput carries a category rename/re-icon.
type UpdateCategoryInput struct {
	ID   int64   `validate:"required,gt=0"`
	Name string  `validate:"required,min=1,max=255"`
	Icon *string `validate:"omitempty,max=64"`
}

// CreateActionInput carries the caller-supplied attributes of a new action.
type CreateActionInput struct {
	CategoryID     int64  `validate:"required,gt=0"`
	Name           string `validate:"required,min=1,max=255"`
	IsConfigurable bool
}

// CreateFieldInput carries the caller-supplied attributes of a new action field.
type CreateFieldInput struct {
	ActionID     int64  `validate:"required,gt=0"`
	FieldName    string `validate:"required,min=1,max=255"`
	FieldType    string `validate:"required,fieldtype"`
	DisplayOrder int    `validate:"gte=0"`
}

// UpdateFieldInput carries a field rename/retype.
type UpdateFieldInput struct {
	ID        int64  `validate:"required,gt=0"`
	FieldName string `validate:"required,min=1,max=255"`
	FieldType string `validate:"required,fieldtype"`
}

// CreateEntryInput carries one recorded occurrence of an action.
type CreateEntryInput struct {
	ActionID    int64 `validate:"required,gt=0"`
	Notes       string
	FieldValues domain.FieldValues
}

// CategoryService handles category lifecycle operations
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, input CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, input UpdateCategoryInput) error
	Delete(ctx context.Context, id int64) error
}

// ActionService handles action lifecycle operations
type ActionService interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Action, error)
	Get(ctx context.Context, id int64) (*domain.Action, error)
	Create(ctx context.Context, input CreateActionInput) (*domain.Action, error)
	Update(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error
}

// ActionFieldService handles the field schema of configurable actions
type ActionFieldService interface {
	ListByAction(ctx context.Context, actionID int64) ([]*domain.ActionField, error)
	Create(ctx context.Context, input CreateFieldInput) (*domain.ActionField, error)
	Update(ctx context.Context, input UpdateFieldInput) error
	Delete(ctx context.Context, id int64) error
	DeleteByAction(ctx context.Context, actionID int64) error
}

// EntryService handles the occurrence history of actions
type EntryService interface {
	Create(ctx context.Context, input CreateEntryInput) (*domain.Entry, error)
	ListByAction(ctx context.Context, actionID int64) ([]*domain.EntryDetail, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.EntryDetail, error)
	GetLastEntry(ctx context.Context, actionID int64) (*domain.Entry, error)
	UpdateDate(ctx context.Context, id int64, date time.Time) error
	UpdateFieldValues(ctx context.Context, id int64, values domain.FieldValues) error
	Delete(ctx context.Context, id int64) error
}

// DemoService seeds demonstration data and wipes the store
type DemoService interface {
	Seed(ctx context.Context) error
	Wipe(ctx context.Context) error
}

// Services bundles all service implementations over one repository,
// session resolver, and configuration.
type Services struct {
	Category CategoryService
	Action   ActionService
	Field    ActionFieldService
	Entry    EntryService
	Demo     DemoService
}

// NewServices wires all services with shared dependencies.
func NewServices(repo turso.Repository, resolver *session.Resolver, cfg *config.Config) *Services {
	deps := deps{
		repo:     repo,
		session:  resolver,
		cfg:      cfg,
		mapper:   domain.NewMapper(),
		validate: validation.New(),
	}

	categories := &categoryServiceImpl{deps: deps}
	actions := &actionServiceImpl{deps: deps}
	fields := &actionFieldServiceImpl{deps: deps}
	entries := &entryServiceImpl{deps: deps}

	return &Services{
		Category: categories,
		Action:   actions,
		Field:    fields,
		Entry:    entries,
		Demo:     &demoServiceImpl{deps: deps, categories: categories, actions: actions},
	}
}

// deps carries the dependencies shared by every service implementation.
type deps struct {
	repo     turso.Repository
	session  *session.Resolver
	cfg      *config.Config
	mapper   *domain.Mapper
	validate *validation.Validator
}

// requireUser resolves the owner id before any repository call.
func (d deps) requireUser() (int64, error) {
	return d.session.RequireUserID()
}

// queryContext bounds a read with the configured query timeout.
func (d deps) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.cfg.GetQueryTimeout())
}

// writeContext bounds a mutation with the configured write timeout.
func (d deps) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.cfg.GetWriteTimeout())
}
