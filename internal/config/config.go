// Package config reads scoreboard settings from the environment.
//
// Command-line flags in internal/cli override every value loaded here.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Output formats accepted by SCOREBOARD_FORMAT and --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the process-wide settings.
type Config struct {
	// Database is the SQLite file backing the store. Empty selects the
	// in-memory store.
	Database string `env:"SCOREBOARD_DB"`

	LogLevel string `env:"SCOREBOARD_LOG_LEVEL" envDefault:"warn"`
	Format   string `env:"SCOREBOARD_FORMAT" envDefault:"text"`

	// AllowFinishedUpdates lets UpdateScore change a finished match.
	AllowFinishedUpdates bool `env:"SCOREBOARD_ALLOW_FINISHED_UPDATES" envDefault:"false"`
}

// Load reads the optional dotenv file and then the environment.
// Pass an empty dotenv path to skip the file.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := LoadDotEnv(dotenv); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("invalid SCOREBOARD_FORMAT %q: must be %s or %s", c.Format, FormatText, FormatJSON)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid SCOREBOARD_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
