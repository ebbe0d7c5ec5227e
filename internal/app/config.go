package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"acctkeep/internal/services/accounts"
)

const (
	// ConfigFileName is the optional YAML file read from the home directory.
	ConfigFileName = "config.yml"
	// SQLiteFileName is the database file used by the sqlite backend.
	SQLiteFileName = "accounts.db"
)

// Backend names a key/value persistence backend.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Config holds runtime wiring options for building the app.
//
// Values are resolved in order: defaults, then <Home>/config.yml, then
// ACCTKEEP_* environment variables. Command-line flags are applied last by
// the caller.
type Config struct {
	Home             string  `yaml:"-"`
	Backend          Backend `yaml:"backend"            env:"ACCTKEEP_BACKEND"`
	Key              string  `yaml:"key"                env:"ACCTKEEP_KEY"`
	ResetOnMalformed bool    `yaml:"reset_on_malformed" env:"ACCTKEEP_RESET_ON_MALFORMED"`
	Verbose          bool    `yaml:"verbose"            env:"ACCTKEEP_VERBOSE"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig(home string) Config {
	return Config{
		Home:    home,
		Backend: BackendFile,
		Key:     accounts.DefaultKey,
	}
}

// LoadConfig resolves the configuration for home.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	path := filepath.Join(home, ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Home = home

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values the app cannot run with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q (want file, sqlite or memory)", c.Backend)
	}
	if c.Key == "" {
		return errors.New("storage key must not be empty")
	}
	if c.Backend != BackendMemory && c.Home == "" {
		return errors.New("home directory required")
	}
	return nil
}
