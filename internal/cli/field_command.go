package cli

import (
	"context"
	"strings"

	"action-tracker/internal/services"
)

// FieldCommand handles the action field subcommands
type FieldCommand struct {
	app *App
}

// NewFieldCommand creates a new field command handler
func NewFieldCommand(app *App) *FieldCommand {
	return &FieldCommand{app: app}
}

// List prints an action's fields in display order.
func (c *FieldCommand) List(ctx context.Context, args []string) error {
	actionID, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}

	fields, err := c.app.services.Field.ListByAction(ctx, actionID)
	if err != nil {
		return c.app.errors.Handle("list fields", err)
	}
	if len(fields) == 0 {
		c.app.println("No fields found")
		return nil
	}

	for _, field := range fields {
		c.app.printf("%d. %s (%s, order %d)\n", field.ID, field.FieldName, field.FieldType, field.DisplayOrder)
	}
	return nil
}

// Add defines a field on a configurable action.
func (c *FieldCommand) Add(ctx context.Context, args []string, fieldType string, order int) error {
	actionID, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	field, err := c.app.services.Field.Create(ctx, services.CreateFieldInput{
		ActionID:     actionID,
		FieldName:    name,
		FieldType:    fieldType,
		DisplayOrder: order,
	})
	if err != nil {
		return c.app.errors.Handle("add field", err)
	}

	c.app.printf("Added field %q (id %d)\n", field.FieldName, field.ID)
	return nil
}

// Update renames or retypes a field.
func (c *FieldCommand) Update(ctx context.Context, args []string, fieldType string) error {
	id, err := parseID(args[0], "field id")
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	err = c.app.services.Field.Update(ctx, services.UpdateFieldInput{
		ID:        id,
		FieldName: name,
		FieldType: fieldType,
	})
	if err != nil {
		return c.app.errors.Handle("update field", err)
	}

	c.app.printf("Updated field %d\n", id)
	return nil
}

// Delete removes one field. Values already recorded on entries are kept.
func (c *FieldCommand) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "field id")
	if err != nil {
		return err
	}

	if err := c.app.services.Field.Delete(ctx, id); err != nil {
		return c.app.errors.Handle("delete field", err)
	}

	c.app.printf("Deleted field %d\n", id)
	return nil
}

// Clear removes every field of an action.
func (c *FieldCommand) Clear(ctx context.Context, args []string) error {
	actionID, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}

	if err := c.app.services.Field.DeleteByAction(ctx, actionID); err != nil {
		return c.app.errors.Handle("clear fields", err)
	}

	c.app.printf("Cleared fields of action %d\n", actionID)
	return nil
}
