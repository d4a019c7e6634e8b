// Package config loads invoker settings from an optional YAML file and
// CONTAINER_* environment variables. Environment values win.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration that fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "CONTAINER_"

// Config holds invoker settings.
type Config struct {
	// Steps to run, e.g. ["a", "b:inherited"]
	Steps []string `yaml:"steps" env:"STEPS" envSeparator:","`

	// Repeat runs the step list this many times
	Repeat int `yaml:"repeat" env:"REPEAT"`

	// Format is text or json
	Format string `yaml:"format" env:"FORMAT"`

	// LogLevel is a zap level name
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Steps:    []string{"a", "b"},
		Repeat:   1,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// environment overrides, then validates.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays CONTAINER_* variables onto cfg
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidConfig)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalidConfig, c.Repeat)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}
