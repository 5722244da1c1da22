// Package config holds the run configuration and the platform wiring.
package config

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"

	"github.com/sarchlab/chronica/core"
)

// Config is the TOML run configuration.
type Config struct {
	Input     string  `toml:"input"`
	Threshold int     `toml:"threshold"`
	FreqGHz   float64 `toml:"freq_ghz"`
	LogLevel  string  `toml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input:     "input.txt",
		Threshold: 3,
		FreqGHz:   1,
		LogLevel:  "info",
	}
}

// Load decodes a TOML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values no run can use.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %d",
			c.Threshold)
	}
	if c.FreqGHz <= 0 {
		return fmt.Errorf("freq_ghz must be positive, got %g", c.FreqGHz)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "trace":
		return core.LevelTrace, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
