// Package config holds the exporter's configuration: default timezone,
// output path and single-event duration. Values come from an optional YAML
// file; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no config file or flag says otherwise.
const (
	DefaultTimezone        = "Europe/Berlin"
	DefaultOutput          = "life_science_talks.ics"
	DefaultDurationMinutes = 60
)

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA timezone used for event timestamps. If it
	// cannot be resolved the exporter falls back to floating times.
	Timezone string `yaml:"timezone"`

	// Output is the path of the generated .ics file. A leading ~/ is
	// expanded to the home directory.
	Output string `yaml:"output"`

	// DurationMinutes is the assumed length of events whose row carries a
	// single time instead of a range.
	DurationMinutes int `yaml:"duration_minutes"`
}

// Default returns an in-memory default configuration.
func Default() *Config {
	return &Config{
		Timezone:        DefaultTimezone,
		Output:          DefaultOutput,
		DurationMinutes: DefaultDurationMinutes,
	}
}

// Normalize fills in missing/zero values so that partially-filled configs
// still behave correctly.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.DurationMinutes <= 0 {
		c.DurationMinutes = DefaultDurationMinutes
	}
}

// Load reads configuration from the given YAML path. An empty path or a
// missing file yields the defaults; a present but malformed file is an
// error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Duration returns the configured single-event duration.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// Location resolves the configured timezone. Callers treat a failure as the
// degraded floating-time mode, not a fatal error.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
