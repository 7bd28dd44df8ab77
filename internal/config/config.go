package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the action tracker application
type Config struct {
	Database    DatabaseConfig
	Preferences PreferencesConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration.
// URL is either a remote libsql/Turso URL (libsql://, https://, wss://)
// or a path to a local sqlite file.
type DatabaseConfig struct {
	URL          string        `env:"AT_DATABASE_URL"`
	AuthToken    string        `env:"AT_DATABASE_AUTH_TOKEN"`
	QueryTimeout time.Duration `env:"AT_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"AT_DB_WRITE_TIMEOUT"`
}

// PreferencesConfig holds the location of the local preference store
type PreferencesConfig struct {
	Dir      string `env:"AT_PREFS_DIR"`
	Filename string `env:"AT_PREFS_FILENAME"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"AT_APP_TIMEOUT"`
	Verbose bool          `env:"AT_APP_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	HistoryDefaultLimit int `env:"AT_HISTORY_DEFAULT_LIMIT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".at")

	return &Config{
		Database: DatabaseConfig{
			URL:          filepath.Join(defaultDir, "tracker.db"),
			AuthToken:    "",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Preferences: PreferencesConfig{
			Dir:      defaultDir,
			Filename: "prefs.json",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Commands: CommandsConfig{
			HistoryDefaultLimit: 50,
		},
	}
}

// IsRemote reports whether the database URL points at a remote libsql server
func (c *Config) IsRemote() bool {
	url := c.Database.URL
	return strings.HasPrefix(url, "libsql://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "wss://")
}

// GetPreferencesPath returns the full path to the preference store file
func (c *Config) GetPreferencesPath() string {
	return filepath.Join(c.Preferences.Dir, c.Preferences.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if url := os.Getenv("AT_DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if token := os.Getenv("AT_DATABASE_AUTH_TOKEN"); token != "" {
		c.Database.AuthToken = token
	}
	if timeout := os.Getenv("AT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("AT_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Preferences configuration
	if dir := os.Getenv("AT_PREFS_DIR"); dir != "" {
		c.Preferences.Dir = dir
	}
	if filename := os.Getenv("AT_PREFS_FILENAME"); filename != "" {
		c.Preferences.Filename = filename
	}

	// Application configuration
	if timeout := os.Getenv("AT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("AT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Commands configuration
	if limit := os.Getenv("AT_HISTORY_DEFAULT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Commands.HistoryDefaultLimit = n
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return &ConfigError{Field: "database.url", Message: "database URL cannot be empty"}
	}
	if c.IsRemote() && c.Database.AuthToken == "" {
		return &ConfigError{Field: "database.auth_token", Message: "auth token is required for a remote database URL"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Preferences.Dir == "" {
		return &ConfigError{Field: "preferences.dir", Message: "preferences directory cannot be empty"}
	}
	if c.Preferences.Filename == "" {
		return &ConfigError{Field: "preferences.filename", Message: "preferences filename cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if c.Commands.HistoryDefaultLimit < 1 {
		return &ConfigError{Field: "commands.history_default_limit", Message: "history default limit must be at least 1"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
