package cli

import (
	"context"
	"strings"

	"action-tracker/internal/services"
)

// CategoryCommand handles the category subcommands
type CategoryCommand struct {
	app *App
}

// NewCategoryCommand creates a new category command handler
func NewCategoryCommand(app *App) *CategoryCommand {
	return &CategoryCommand{app: app}
}

// List prints the current user's categories, ordered by name.
func (c *CategoryCommand) List(ctx context.Context) error {
	categories, err := c.app.services.Category.List(ctx)
	if err != nil {
		return c.app.errors.Handle("list categories", err)
	}
	if len(categories) == 0 {
		c.app.println("No categories found")
		return nil
	}

	for _, category := range categories {
		icon := ""
		if category.Icon != nil {
			icon = *category.Icon + " "
		}
		c.app.printf("%d. %s%s\n", category.ID, icon, category.Name)
	}
	return nil
}

// Add creates a category with optional icon and color.
func (c *CategoryCommand) Add(ctx context.Context, args []string, icon, color string) error {
	name := strings.Join(args, " ")

	category, err := c.app.services.Category.Create(ctx, services.CreateCategoryInput{
		Name:  name,
		Icon:  optional(icon),
		Color: optional(color),
	})
	if err != nil {
		return c.app.errors.Handle("add category", err)
	}

	c.app.printf("Added category %q (id %d)\n", category.Name, category.ID)
	return nil
}

// Rename updates a category's name and optionally its icon.
func (c *CategoryCommand) Rename(ctx context.Context, args []string, icon string) error {
	id, err := parseID(args[0], "category id")
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	err = c.app.services.Category.Update(ctx, services.UpdateCategoryInput{
		ID:   id,
		Name: name,
		Icon: optional(icon),
	})
	if err != nil {
		return c.app.errors.Handle("rename category", err)
	}

	c.app.printf("Renamed category %d to %q\n", id, name)
	return nil
}

// Delete removes a category together with its actions, fields, and entries.
func (c *CategoryCommand) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "category id")
	if err != nil {
		return err
	}

	if err := c.app.services.Category.Delete(ctx, id); err != nil {
		return c.app.errors.Handle("delete category", err)
	}

	c.app.printf("Deleted category %d and everything under it\n", id)
	return nil
}
