package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LoggingConfig controls the logger built for conversions.
type LoggingConfig struct {
	// Enabled turns on logging when no logger is passed explicitly.
	Enabled bool `json:"enabled"`
	// Level is a zerolog level name such as "debug" or "warn".
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = zerolog.InfoLevel.String()
	}
}

// Validate checks the level name.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("unknown level %q", c.Level)
	}
	return nil
}

// ZerologLevel returns the parsed level, falling back to info.
func (c LoggingConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
