package config

import (
	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Merge a .env file into the process environment if one exists
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	// A missing .env file is not an error; environment variables win
	// over file values because godotenv never overwrites existing keys.
	_ = godotenv.Load()

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}
