package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap/zapcore"
)

// Defaults applied to keys missing from the file.
const (
	DefaultLogLevel         = "info"
	DefaultResultLimit      = 200
	DefaultOptimizeSchedule = "0 4 * * *"
)

// Config represents the global ~/.wpp/config.toml.
type Config struct {
	DefaultSession string            `toml:"default_session"`
	Log            LogConfig         `toml:"log"`
	Search         SearchConfig      `toml:"search"`
	Maintenance    MaintenanceConfig `toml:"maintenance"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type SearchConfig struct {
	// ResultLimit caps how many of the newest matches a search returns.
	ResultLimit int `toml:"result_limit"`
}

type MaintenanceConfig struct {
	// OptimizeSchedule is a five-field cron expression for the index
	// optimize job. "off" disables it.
	OptimizeSchedule string `toml:"optimize_schedule"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Search.ResultLimit <= 0 {
		c.Search.ResultLimit = DefaultResultLimit
	}
	if c.Maintenance.OptimizeSchedule == "" {
		c.Maintenance.OptimizeSchedule = DefaultOptimizeSchedule
	}
}

// Validate checks the log level and the optimize schedule.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Maintenance.OptimizeSchedule != "off" {
		if _, err := cron.ParseStandard(c.Maintenance.OptimizeSchedule); err != nil {
			return fmt.Errorf("maintenance.optimize_schedule: %w", err)
		}
	}
	return nil
}

// Load reads config from the given path. Returns nil config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
