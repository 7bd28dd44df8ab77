package cli

import (
	"context"
	"sort"
	"strings"

	"action-tracker/internal/dateutil"
	"action-tracker/internal/domain"
)

// HistoryCommand handles the entry history views
type HistoryCommand struct {
	app *App
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(app *App) *HistoryCommand {
	return &HistoryCommand{app: app}
}

// Execute prints entry history, most recent first. With an action id it
// shows that action's full history; without one it shows the recent
// cross-category feed, capped at limit.
func (c *HistoryCommand) Execute(ctx context.Context, args []string, limit int) error {
	var details []*domain.EntryDetail
	var err error

	if len(args) > 0 {
		var actionID int64
		actionID, err = parseID(args[0], "action id")
		if err != nil {
			return err
		}
		details, err = c.app.services.Entry.ListByAction(ctx, actionID)
	} else {
		details, err = c.app.services.Entry.ListRecent(ctx, limit)
	}
	if err != nil {
		return c.app.errors.Handle("load history", err)
	}

	if len(details) == 0 {
		c.app.println("No entries found")
		return nil
	}

	for _, detail := range details {
		c.printDetail(detail)
	}
	return nil
}

// printDetail prints one line per entry in the format:
// id. date (relative): category / action [values] notes
func (c *HistoryCommand) printDetail(d *domain.EntryDetail) {
	icon := ""
	if d.CategoryIcon != nil {
		icon = *d.CategoryIcon + " "
	}

	line := d.CategoryName + " / " + d.ActionName
	if !d.FieldValues.IsEmpty() {
		line += " [" + formatValues(d.FieldValues) + "]"
	}

	c.app.printf("%d. %s (%s): %s%s\n",
		d.ID,
		dateutil.FormatShortDate(d.CreatedAt),
		dateutil.FormatRelativeDate(d.CreatedAt),
		icon,
		line)
	if d.Notes != "" {
		c.app.printf("   %s\n", d.Notes)
	}
}

// formatValues renders field values as "name=value" pairs in stable order.
func formatValues(values domain.FieldValues) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+values[name])
	}
	return strings.Join(pairs, ", ")
}
