package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"action-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "at",
		Short: "A command-line tracker for recurring household actions",
		Long: `Action Tracker (at) records when recurring household actions were last
performed: oil changes, chimney sweeps, dentist visits, and the like.

Data is grouped as categories > actions > entries, scoped to one of two
fixed profiles. Configurable actions carry named field values per entry.

EXAMPLES:
  at user select Kevin                     # Choose the active profile
  at category add Car --icon 🚗            # Create a category
  at action add 1 "Oil change"             # Create an action in category 1
  at action list 1                         # Actions with last-performed labels
  at log 3                                 # Record action 3 as done today
  at log 3 Liters=4.5 --notes "5W-30"      # Record with field values and notes
  at history                               # Recent entries across categories
  at history 3                             # Full history of action 3
  at entry date 12 2026-08-01              # Move an entry to another date
  at seed                                  # Insert demo categories and actions

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    AT_DATABASE_URL                        Remote libsql URL or local file path (default: ~/.at/tracker.db)
    AT_DATABASE_AUTH_TOKEN                 Auth token, required for remote URLs
    AT_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    AT_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Preference Configuration:
    AT_PREFS_DIR                           Preference directory (default: ~/.at)
    AT_PREFS_FILENAME                      Preference filename (default: prefs.json)

  Application Configuration:
    AT_APP_TIMEOUT                         Application timeout (default: 60s)
    AT_APP_VERBOSE                         Enable verbose output (default: false)

  Command Configuration:
    AT_HISTORY_DEFAULT_LIMIT               Default recent-history limit (default: 50)

  A .env file in the working directory is merged into the environment;
  existing environment variables win over file values.

GETTING HELP:
  at [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides AT_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides AT_DB_WRITE_TIMEOUT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides AT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides AT_APP_VERBOSE)")
	flags.Int("history-limit", 0, "Default recent-history limit (overrides AT_HISTORY_DEFAULT_LIMIT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.userCommands(),
		r.categoryCommands(),
		r.actionCommands(),
		r.fieldCommands(),
		r.logCommand(),
		r.historyCommand(),
		r.entryCommands(),
		r.seedCommand(),
		r.wipeCommand(),
	)
}

func (r *RootCommand) userCommands() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the active profile",
		Long:  "Choose which of the two fixed profiles owns subsequent commands. The selection persists between runs.",
	}

	userCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the available profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return NewUserCommand(r.app).List()
			},
		},
		&cobra.Command{
			Use:   "select [name or id]",
			Short: "Select the active profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return NewUserCommand(r.app).Select(args)
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the active profile",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return NewUserCommand(r.app).Show()
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the profile selection",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return NewUserCommand(r.app).Clear()
			},
		},
	)

	return userCmd
}

func (r *RootCommand) categoryCommands() *cobra.Command {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}

	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			icon, _ := cmd.Flags().GetString("icon")
			color, _ := cmd.Flags().GetString("color")
			return NewCategoryCommand(r.app).Add(ctx, args, icon, color)
		},
	}
	addCmd.Flags().String("icon", "", "Emoji or short icon for the category")
	addCmd.Flags().String("color", "", "Hex color like #ef4444")

	renameCmd := &cobra.Command{
		Use:   "rename [id] [new name]",
		Short: "Rename a category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			icon, _ := cmd.Flags().GetString("icon")
			return NewCategoryCommand(r.app).Rename(ctx, args, icon)
		},
	}
	renameCmd.Flags().String("icon", "", "Replace the category icon")

	categoryCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the current profile's categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewCategoryCommand(r.app).List(ctx)
			},
		},
		addCmd,
		renameCmd,
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete a category and everything under it",
			Long:  "Delete a category together with its actions, their fields, and their entries. This operation cannot be undone.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewCategoryCommand(r.app).Delete(ctx, args)
			},
		},
	)

	return categoryCmd
}

func (r *RootCommand) actionCommands() *cobra.Command {
	actionCmd := &cobra.Command{
		Use:   "action",
		Short: "Manage actions",
	}

	addCmd := &cobra.Command{
		Use:   "add [category id] [name]",
		Short: "Add an action to a category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			configurable, _ := cmd.Flags().GetBool("configurable")
			return NewActionCommand(r.app).Add(ctx, args, configurable)
		},
	}
	addCmd.Flags().Bool("configurable", false, "Allow named field values on entries of this action")

	actionCmd.AddCommand(
		&cobra.Command{
			Use:   "list [category id]",
			Short: "List a category's actions with last-performed labels",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewActionCommand(r.app).List(ctx, args)
			},
		},
		addCmd,
		&cobra.Command{
			Use:   "rename [id] [new name]",
			Short: "Rename an action",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewActionCommand(r.app).Rename(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete an action and its history",
			Long:  "Delete an action together with its fields and entries. This operation cannot be undone.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewActionCommand(r.app).Delete(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "last [id]",
			Short: "Show when an action was last performed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewActionCommand(r.app).Last(ctx, args)
			},
		},
	)

	return actionCmd
}

func (r *RootCommand) fieldCommands() *cobra.Command {
	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "Manage the fields of configurable actions",
	}

	addCmd := &cobra.Command{
		Use:   "add [action id] [name]",
		Short: "Add a field to a configurable action",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			fieldType, _ := cmd.Flags().GetString("type")
			order, _ := cmd.Flags().GetInt("order")
			return NewFieldCommand(r.app).Add(ctx, args, fieldType, order)
		},
	}
	addCmd.Flags().String("type", "text", "Field type: text or number")
	addCmd.Flags().Int("order", 0, "Display order sort key")

	updateCmd := &cobra.Command{
		Use:   "update [id] [new name]",
		Short: "Rename or retype a field",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			fieldType, _ := cmd.Flags().GetString("type")
			return NewFieldCommand(r.app).Update(ctx, args, fieldType)
		},
	}
	updateCmd.Flags().String("type", "text", "Field type: text or number")

	fieldCmd.AddCommand(
		&cobra.Command{
			Use:   "list [action id]",
			Short: "List an action's fields",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewFieldCommand(r.app).List(ctx, args)
			},
		},
		addCmd,
		updateCmd,
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete one field",
			Long:  "Delete a field definition. Values already recorded on existing entries are kept.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewFieldCommand(r.app).Delete(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "clear [action id]",
			Short: "Delete every field of an action",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewFieldCommand(r.app).Clear(ctx, args)
			},
		},
	)

	return fieldCmd
}

func (r *RootCommand) logCommand() *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log [action id] [name=value...]",
		Short: "Record an action as performed today",
		Long: `Record one occurrence of an action, dated today.

Configurable actions take one name=value pair per defined field:

  at log 3 Liters=4.5 Price=52.80`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			notes, _ := cmd.Flags().GetString("notes")
			return NewLogCommand(r.app).Execute(ctx, args, notes)
		},
	}
	logCmd.Flags().String("notes", "", "Free-form note on the entry")

	return logCmd
}

func (r *RootCommand) historyCommand() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history [action id]",
		Short: "Show entry history, most recent first",
		Long: `Show entry history, most recent first.

With an action id the full history of that action is shown. Without one
a recent feed across all of the current profile's categories is shown,
capped at the configured limit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			limit, _ := cmd.Flags().GetInt("limit")
			return NewHistoryCommand(r.app).Execute(ctx, args, limit)
		},
	}
	historyCmd.Flags().Int("limit", 0, "Maximum entries in the recent feed (0 uses the configured default)")

	return historyCmd
}

func (r *RootCommand) entryCommands() *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Edit recorded entries",
	}

	entryCmd.AddCommand(
		&cobra.Command{
			Use:   "date [id] [YYYY-MM-DD]",
			Short: "Move an entry to another date",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewEntryCommand(r.app).Date(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "values [id] [name=value...]",
			Short: "Overwrite an entry's field values",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewEntryCommand(r.app).Values(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "delete [id]",
			Short: "Delete an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewEntryCommand(r.app).Delete(ctx, args)
			},
		},
	)

	return entryCmd
}

func (r *RootCommand) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo categories and actions for the current profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDemoCommand(r.app).Seed(ctx)
		},
	}
}

func (r *RootCommand) wipeCommand() *cobra.Command {
	wipeCmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all data for both profiles",
		Long:  "Delete every category, action, field, and entry for both profiles. This operation cannot be undone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			force, _ := cmd.Flags().GetBool("force")
			return NewDemoCommand(r.app).Wipe(ctx, force)
		},
	}
	wipeCmd.Flags().Bool("force", false, "Confirm the wipe")

	return wipeCmd
}

// commandContext bounds a command run with the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}
	if limit, _ := flags.GetInt("history-limit"); limit > 0 {
		r.config.Commands.HistoryDefaultLimit = limit
	}

	return nil
}
