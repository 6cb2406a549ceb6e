// Package config loads the optional scalemeta configuration file, which
// provides defaults for the CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultFileName is the config file looked up in the working directory
// when no --config flag is given.
const DefaultFileName = "scalemeta.config.json"

// Config represents the scalemeta configuration.
type Config struct {
	// Registry is the default registry file used when --registry is absent.
	Registry string `json:"registry,omitempty"`

	// Seed is the default seed for example generation.
	Seed uint64 `json:"seed,omitempty"`

	// Indent pretty-prints JSON output by default.
	Indent bool `json:"indent,omitempty"`

	// Color controls ANSI colors on output: "auto" (TTY only), "always",
	// or "never".
	Color string `json:"color,omitempty"`

	// Verbose enables debug logging by default.
	Verbose bool `json:"verbose,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Color: "auto",
	}
}

// Load reads and parses a scalemeta config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Validate checks the config for logical errors.
func (c *Config) Validate() error {
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("color must be one of auto, always, never; got %q", c.Color)
	}
	return nil
}
