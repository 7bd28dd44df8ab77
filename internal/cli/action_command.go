package cli

import (
	"context"
	"strings"
	"time"

	"action-tracker/internal/dateutil"
	"action-tracker/internal/services"
)

// ActionCommand handles the action subcommands
type ActionCommand struct {
	app *App
}

// NewActionCommand creates a new action command handler
func NewActionCommand(app *App) *ActionCommand {
	return &ActionCommand{app: app}
}

// List prints a category's actions with their last-performed label.
func (c *ActionCommand) List(ctx context.Context, args []string) error {
	categoryID, err := parseID(args[0], "category id")
	if err != nil {
		return err
	}

	actions, err := c.app.services.Action.ListByCategory(ctx, categoryID)
	if err != nil {
		return c.app.errors.Handle("list actions", err)
	}
	if len(actions) == 0 {
		c.app.println("No actions found")
		return nil
	}

	for _, action := range actions {
		last, err := c.app.services.Entry.GetLastEntry(ctx, action.ID)
		if err != nil {
			return c.app.errors.Handle("load last entry", err)
		}
		var lastDate time.Time
		if last != nil {
			lastDate = last.CreatedAt
		}
		c.app.printf("%d. %s (last: %s)\n", action.ID, action.Name, dateutil.FormatRelativeDate(lastDate))
	}
	return nil
}

// Add creates an action in a category. Configurable actions accept
// per-entry field values once fields are defined for them.
func (c *ActionCommand) Add(ctx context.Context, args []string, configurable bool) error {
	categoryID, err := parseID(args[0], "category id")
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	action, err := c.app.services.Action.Create(ctx, services.CreateActionInput{
		CategoryID:     categoryID,
		Name:           name,
		IsConfigurable: configurable,
	})
	if err != nil {
		return c.app.errors.Handle("add action", err)
	}

	c.app.printf("Added action %q (id %d)\n", action.Name, action.ID)
	return nil
}

// Rename updates an action's name.
func (c *ActionCommand) Rename(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	if err := c.app.services.Action.Update(ctx, id, name); err != nil {
		return c.app.errors.Handle("rename action", err)
	}

	c.app.printf("Renamed action %d to %q\n", id, name)
	return nil
}

// Delete removes an action together with its fields and entries.
func (c *ActionCommand) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}

	if err := c.app.services.Action.Delete(ctx, id); err != nil {
		return c.app.errors.Handle("delete action", err)
	}

	c.app.printf("Deleted action %d and its history\n", id)
	return nil
}

// Last prints when an action was last performed.
func (c *ActionCommand) Last(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}

	action, err := c.app.services.Action.Get(ctx, id)
	if err != nil {
		return c.app.errors.Handle("load action", err)
	}

	last, err := c.app.services.Entry.GetLastEntry(ctx, id)
	if err != nil {
		return c.app.errors.Handle("load last entry", err)
	}

	if last == nil {
		c.app.printf("%s: Never\n", action.Name)
		return nil
	}
	c.app.printf("%s: %s (%s)\n", action.Name,
		dateutil.FormatRelativeDate(last.CreatedAt),
		dateutil.FormatShortDate(last.CreatedAt))
	return nil
}
