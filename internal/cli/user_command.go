package cli

import (
	"fmt"
	"strconv"
	"strings"

	"action-tracker/internal/domain"
)

// UserCommand handles the profile selection commands
type UserCommand struct {
	app *App
}

// NewUserCommand creates a new user command handler
func NewUserCommand(app *App) *UserCommand {
	return &UserCommand{app: app}
}

// List prints the static profile table, marking the selected one.
func (c *UserCommand) List() error {
	current := c.app.session.CurrentUserID()
	for _, u := range domain.Users() {
		marker := " "
		if current != nil && *current == u.ID {
			marker = "*"
		}
		c.app.printf("%s %d. %s\n", marker, u.ID, u.Name)
	}
	return nil
}

// Select persists the chosen profile, matched by name or id.
func (c *UserCommand) Select(args []string) error {
	arg := strings.TrimSpace(args[0])
	for _, u := range domain.Users() {
		if strings.EqualFold(u.Name, arg) || strconv.FormatInt(u.ID, 10) == arg {
			c.app.session.SetCurrentUserID(u.ID)
			c.app.printf("Selected profile %s\n", u.Name)
			return nil
		}
	}

	names := make([]string, 0, len(domain.Users()))
	for _, u := range domain.Users() {
		names = append(names, u.Name)
	}
	return fmt.Errorf("unknown profile %q (choose one of: %s)", arg, strings.Join(names, ", "))
}

// Show prints the selected profile, if any.
func (c *UserCommand) Show() error {
	user := c.app.session.CurrentUser()
	if user == nil {
		c.app.println("No profile selected")
		return nil
	}
	c.app.printf("Current profile: %s (id %d)\n", user.Name, user.ID)
	return nil
}

// Clear removes the persisted selection.
func (c *UserCommand) Clear() error {
	c.app.session.ClearCurrentUser()
	c.app.println("Profile selection cleared")
	return nil
}
