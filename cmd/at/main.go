package main

import (
	"fmt"
	"os"

	"action-tracker/internal/cli"
	"action-tracker/internal/config"
	"action-tracker/internal/repository/turso"
	"action-tracker/internal/services"
	"action-tracker/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The connection is built once here and injected; nothing below this
	// opens its own handle.
	repo, err := turso.New(cfg.Database.URL, cfg.Database.AuthToken)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer repo.Close()

	prefs := session.OpenPreferences(cfg.GetPreferencesPath())
	resolver := session.NewResolver(prefs)

	svcs := services.NewServices(repo, resolver, cfg)
	app := cli.NewApp(svcs, resolver, cfg)

	return cli.NewRootCommand(app, cfg).Execute()
}
