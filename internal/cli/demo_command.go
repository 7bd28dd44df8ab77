package cli

import (
	"context"
	"fmt"
)

// DemoCommand handles the demo data utilities
type DemoCommand struct {
	app *App
}

// NewDemoCommand creates a new demo command handler
func NewDemoCommand(app *App) *DemoCommand {
	return &DemoCommand{app: app}
}

// Seed inserts the demonstration categories and actions for the current
// user.
func (c *DemoCommand) Seed(ctx context.Context) error {
	if err := c.app.services.Demo.Seed(ctx); err != nil {
		return c.app.errors.Handle("seed demo data", err)
	}
	c.app.println("Seeded demo categories and actions")
	return nil
}

// Wipe deletes every row from every table, both profiles included.
// Requires the force flag; there is no undo.
func (c *DemoCommand) Wipe(ctx context.Context, force bool) error {
	if !force {
		return fmt.Errorf("wipe deletes all data for both profiles; re-run with --force to confirm")
	}

	if err := c.app.services.Demo.Wipe(ctx); err != nil {
		return c.app.errors.Handle("wipe data", err)
	}
	c.app.println("Wiped all data")
	return nil
}
