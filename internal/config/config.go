// Package config loads the YAML configuration file, creating it with
// defaults on first run.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the configuration file location when set
// (directly or via a .env file).
const EnvConfigPath = "GCALENDAR_CONFIG"

// Config is the top-level application configuration.
type Config struct {
	// CalendarID is the calendar operated on; "primary" unless the
	// user points the tool at a secondary calendar.
	CalendarID string `yaml:"calendar_id"`

	// SchedulesDir is where schedule .json files are read and written.
	SchedulesDir string `yaml:"schedules_dir"`

	// UTCOffsetHours pins the fixed local offset used for day windows.
	// When unset, the system zone's current offset is used.
	UTCOffsetHours *int `yaml:"utc_offset_hours,omitempty"`
}

func Default() *Config {
	return &Config{
		CalendarID:   "primary",
		SchedulesDir: ".",
	}
}

// DefaultPath returns the configuration file location, honoring the
// EnvConfigPath override.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(dir, "gcalendar", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file is created with
// defaults so a fresh install works without manual setup. Zero-valued
// fields fall back to their defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.SchedulesDir == "" {
		cfg.SchedulesDir = "."
	}
	return cfg, nil
}

// Save writes the configuration to path with 0600 permissions, creating
// parent directories as needed.
func Save(path string, cfg *Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return fmt.Errorf("writing config %q: %w", path, err)
	}
	return nil
}

// UTCOffset returns the fixed local offset all day windows use.
func (c *Config) UTCOffset() time.Duration {
	if c.UTCOffsetHours != nil {
		return time.Duration(*c.UTCOffsetHours) * time.Hour
	}
	_, secs := time.Now().Zone()
	return time.Duration(secs) * time.Second
}
