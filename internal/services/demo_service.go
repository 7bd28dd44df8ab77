package services

import (
	"context"
)

// demoServiceImpl implements the DemoService interface. Seeding goes
// through the category and action services so the demo rows obey the
// same validation and ownership rules as user-created ones.
type demoServiceImpl struct {
	deps
	categories CategoryService
	actions    ActionService
}

// demoCategory describes one seeded category with its actions.
type demoCategory struct {
	name    string
	icon    string
	color   string
	actions []string
}

var demoCatalog = []demoCategory{
	{"Car", "🚗", "#ef4444", []string{"Service", "Oil change", "Vehicle inspection", "Tires"}},
	{"Home", "🏠", "#10b981", []string{"Chimney sweep", "Boiler", "Gutters", "Garden"}},
	{"Me", "👤", "#3b82f6", []string{"Haircut", "Dentist", "Doctor", "Gym"}},
	{"Health", "🏥", "#f59e0b", []string{"Blood test", "Vaccine", "Check-up"}},
}

// Seed bulk-inserts the demonstration categories and actions for the
// current user. Intended for manual testing of a fresh profile.
func (s *demoServiceImpl) Seed(ctx context.Context) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}

	for _, demo := range demoCatalog {
		icon := demo.icon
		color := demo.color
		category, err := s.categories.Create(ctx, CreateCategoryInput{
			Name:  demo.name,
			Icon:  &icon,
			Color: &color,
		})
		if err != nil {
			return err
		}

		for _, actionName := range demo.actions {
			_, err := s.actions.Create(ctx, CreateActionInput{
				CategoryID: category.ID,
				Name:       actionName,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Wipe deletes every row from every table, both profiles included.
func (s *demoServiceImpl) Wipe(ctx context.Context) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	return s.repo.WipeAll(ctx)
}
