package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"action-tracker/internal/config"
	"action-tracker/internal/domain"
	"action-tracker/internal/services"
	"action-tracker/internal/session"
)

// App bundles the dependencies shared by every command handler.
type App struct {
	services *services.Services
	session  *session.Resolver
	config   *config.Config
	out      io.Writer
	errors   *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(svcs *services.Services, resolver *session.Resolver, cfg *config.Config) *App {
	return &App{
		services: svcs,
		session:  resolver,
		config:   cfg,
		out:      os.Stdout,
		errors:   NewErrorHandler(),
	}
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// parseID parses a positional id argument into a positive integer.
func parseID(arg, label string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", label, arg)
	}
	return id, nil
}

// parseFieldValueArgs parses name=value pairs into field values.
// Returns nil for no arguments so bare actions log without a values blob.
func parseFieldValueArgs(args []string) (domain.FieldValues, error) {
	if len(args) == 0 {
		return nil, nil
	}
	values := make(domain.FieldValues, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field value %q: expected name=value", arg)
		}
		values[name] = value
	}
	return values, nil
}

// optional returns a pointer to s, or nil when s is empty, for the
// nullable icon and color attributes.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
