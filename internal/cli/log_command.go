package cli

import (
	"context"

	"action-tracker/internal/dateutil"
	"action-tracker/internal/services"
)

// LogCommand handles recording a new entry
type LogCommand struct {
	app *App
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app}
}

// Execute records one occurrence of an action. Remaining arguments are
// name=value pairs for configurable actions.
func (c *LogCommand) Execute(ctx context.Context, args []string, notes string) error {
	actionID, err := parseID(args[0], "action id")
	if err != nil {
		return err
	}

	values, err := parseFieldValueArgs(args[1:])
	if err != nil {
		return err
	}

	entry, err := c.app.services.Entry.Create(ctx, services.CreateEntryInput{
		ActionID:    actionID,
		Notes:       notes,
		FieldValues: values,
	})
	if err != nil {
		return c.app.errors.Handle("log entry", err)
	}

	c.app.printf("Logged entry %d on %s\n", entry.ID, dateutil.FormatShortDate(entry.CreatedAt))
	return nil
}
