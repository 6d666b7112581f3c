// Package config loads shiftsheet settings from a YAML or JSON file with
// SHIFTSHEET_-prefixed environment overrides.
//
// Nested keys are separated by a double underscore in the environment, so
// SHIFTSHEET_SCHEDULE__SKIP_ROWS=0 sets schedule.skip_rows.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read by [Load].
const EnvPrefix = "SHIFTSHEET_"

// Config is the full set of shiftsheet settings.
type Config struct {
	Schedule ScheduleConfig `json:"schedule"`
	Tables   TablesConfig   `json:"tables"`
	Logging  LoggingConfig  `json:"logging"`
	Metrics  MetricsConfig  `json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{
		Schedule: ScheduleConfig{
			SkipRows:     1,
			LabelColumns: [2]int{2, 5},
		},
		Tables: TablesConfig{
			MinRows:            2,
			MinCols:            7,
			MinConfidence:      0.3,
			UseLines:           true,
			AlignmentTolerance: 2.0,
			RowTolerance:       3.0,
			ClusterGap:         50.0,
		},
	}
	cfg.SetDefaults()
	return cfg
}

// Load reads path on top of [Default] and applies environment overrides.
// An empty path loads the defaults and the environment only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// SetDefaults fills settings whose zero value is not usable.
func (c *Config) SetDefaults() {
	c.Tables.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Tables.Validate(); err != nil {
		return fmt.Errorf("tables: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}
