// Package config loads the server configuration and holds the shared
// option catalogues (roles, job types, priorities).
//
// Values come from, in increasing precedence: built-in defaults, an
// optional YAML file, ELICITD_* environment variables, and CLI flags
// bound by cmd/elicitd.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (ELICITD_STORE_DRIVER, ...).
const EnvPrefix = "ELICITD"

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the full server configuration.
type Config struct {
	Elicitation ElicitationConfig `mapstructure:"elicitation"`
	Store       StoreConfig       `mapstructure:"store"`
	Log         LogConfig         `mapstructure:"log"`
}

// ElicitationConfig controls the interactive exchange with the caller.
type ElicitationConfig struct {
	Timeout          time.Duration `mapstructure:"timeout"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	ProgressValue    float64       `mapstructure:"progress_value"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// Path is the SQLite database file. Empty means a private in-memory
	// database that lives as long as the process.
	Path string `mapstructure:"path"`
	// Seed adds the demo user to an empty store on startup.
	Seed bool `mapstructure:"seed"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Elicitation: ElicitationConfig{
			Timeout:          5 * time.Minute,
			ProgressInterval: 10 * time.Second,
			ProgressValue:    50,
		},
		Store: StoreConfig{
			Driver: DriverMemory,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// SetDefaults registers the built-in values on v so that Unmarshal
// and environment lookups see every key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("elicitation.timeout", d.Elicitation.Timeout)
	v.SetDefault("elicitation.progress_interval", d.Elicitation.ProgressInterval)
	v.SetDefault("elicitation.progress_value", d.Elicitation.ProgressValue)
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("store.seed", d.Store.Seed)
	v.SetDefault("log.level", d.Log.Level)
}

// NewViper returns a viper instance with defaults and environment
// lookups configured. If file is non-empty it is read as the config file.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Elicitation.Timeout <= 0 {
		return fmt.Errorf("elicitation.timeout must be positive, got %s", c.Elicitation.Timeout)
	}
	if c.Elicitation.ProgressInterval <= 0 {
		return fmt.Errorf("elicitation.progress_interval must be positive, got %s", c.Elicitation.ProgressInterval)
	}
	if c.Elicitation.ProgressValue < 0 || c.Elicitation.ProgressValue > 100 {
		return fmt.Errorf("elicitation.progress_value must be within 0..100, got %v", c.Elicitation.ProgressValue)
	}
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverMemory, DriverSQLite, c.Store.Driver)
	}
	return nil
}
