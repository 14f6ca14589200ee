// Package config loads runtime settings from the environment with viper.
// Everything has a default; the app runs with zero configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `mapstructure:"db"`
	// ContentDir overrides where imported course files live.
	ContentDir string `mapstructure:"content_dir"`
	// UserID is the active profile. The store is multi-user but the CLI
	// works on one profile at a time.
	UserID string `mapstructure:"user"`
	// Timezone is the IANA zone used for activity day boundaries.
	Timezone string `mapstructure:"timezone"`
	// MinutesPerCompletion is the study time credited per finished
	// scenario.
	MinutesPerCompletion int `mapstructure:"minutes_per_completion"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from CULTIVA_* environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("cultiva")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db", "")
	v.SetDefault("content_dir", "")
	v.SetDefault("user", "default")
	v.SetDefault("timezone", "America/Mexico_City")
	v.SetDefault("minutes_per_completion", 5)
	v.SetDefault("log_level", "warn")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.MinutesPerCompletion <= 0 {
		return nil, fmt.Errorf("minutes_per_completion must be positive, got %d", cfg.MinutesPerCompletion)
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return &cfg, nil
}

// Location resolves the configured timezone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
