package cli

import (
	"context"
	"fmt"
	"time"
)

// entryDateLayout is the only accepted input format for entry dates.
const entryDateLayout = "2006-01-02"

// EntryCommand handles edits to recorded entries
type EntryCommand struct {
	app *App
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(app *App) *EntryCommand {
	return &EntryCommand{app: app}
}

// Date moves an entry to another calendar date.
func (c *EntryCommand) Date(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "entry id")
	if err != nil {
		return err
	}

	date, err := time.Parse(entryDateLayout, args[1])
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", args[1])
	}

	if err := c.app.services.Entry.UpdateDate(ctx, id, date); err != nil {
		return c.app.errors.Handle("update entry date", err)
	}

	c.app.printf("Moved entry %d to %s\n", id, args[1])
	return nil
}

// Values overwrites an entry's recorded field values.
func (c *EntryCommand) Values(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "entry id")
	if err != nil {
		return err
	}

	values, err := parseFieldValueArgs(args[1:])
	if err != nil {
		return err
	}

	if err := c.app.services.Entry.UpdateFieldValues(ctx, id, values); err != nil {
		return c.app.errors.Handle("update entry values", err)
	}

	c.app.printf("Updated values of entry %d\n", id)
	return nil
}

// Delete removes a single entry.
func (c *EntryCommand) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args[0], "entry id")
	if err != nil {
		return err
	}

	if err := c.app.services.Entry.Delete(ctx, id); err != nil {
		return c.app.errors.Handle("delete entry", err)
	}

	c.app.printf("Deleted entry %d\n", id)
	return nil
}
