// Package config holds application constants and the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration file.
type Config struct {
	Durations DurationsConfig `yaml:"durations"`
	Logging   LoggingConfig   `yaml:"logging"`
	Notify    NotifyConfig    `yaml:"notify"`
	Theme     string          `yaml:"theme"`
}

// DurationsConfig holds interval lengths in whole seconds.
type DurationsConfig struct {
	Work       int `yaml:"work"`
	ShortBreak int `yaml:"short_break"`
	LongBreak  int `yaml:"long_break"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
	File  string `yaml:"file"`  // defaults to the data directory
}

// NotifyConfig defines how interval completion is announced.
type NotifyConfig struct {
	Desktop bool          `yaml:"desktop"`
	Bell    bool          `yaml:"bell"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Durations: DurationsConfig{
			Work:       int(WorkDuration / time.Second),
			ShortBreak: int(ShortBreakDuration / time.Second),
			LongBreak:  int(LongBreakDuration / time.Second),
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
		},
		Notify: NotifyConfig{
			Desktop: true,
			Bell:    true,
			Timeout: NotifyTimeout,
		},
		Theme: DefaultTheme,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pomo/config.yaml or ~/.config/pomo/config.yaml.
func DefaultPath() string {
	dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

// Load reads configuration from a YAML file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	cfg.Validate()
	return cfg, nil
}

// Validate replaces out-of-range values with defaults.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.Durations.Work <= 0 {
		c.Durations.Work = defaults.Durations.Work
	}
	if c.Durations.ShortBreak <= 0 {
		c.Durations.ShortBreak = defaults.Durations.ShortBreak
	}
	if c.Durations.LongBreak <= 0 {
		c.Durations.LongBreak = defaults.Durations.LongBreak
	}
	switch strings.ToLower(c.Logging.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		c.Logging.Level = strings.ToLower(c.Logging.Level)
	default:
		c.Logging.Level = LogLevelInfo
	}
	if c.Notify.Timeout <= 0 {
		c.Notify.Timeout = NotifyTimeout
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// IntervalDurations converts the configured seconds to models.Durations.
func (c *Config) IntervalDurations() models.Durations {
	return models.Durations{
		Work:       time.Duration(c.Durations.Work) * time.Second,
		ShortBreak: time.Duration(c.Durations.ShortBreak) * time.Second,
		LongBreak:  time.Duration(c.Durations.LongBreak) * time.Second,
	}
}

// Save writes the configuration to a YAML file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
