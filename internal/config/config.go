// Package config loads and stores CLI configuration in the XDG config dir.
// Values resolve in three layers: file, then SIEVETAIL_* environment
// variables, then command-line flags (applied by the commands themselves).
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"sievetail/cli/internal/xdg"
)

// Config holds the scan defaults.
type Config struct {
	// MaxN is the exclusive upper bound of the batch scan.
	MaxN int `json:"max_n" env:"SIEVETAIL_MAX_N"`
	// TableBound is the exclusive sieve bound of the shared prime table.
	TableBound int `json:"table_bound" env:"SIEVETAIL_TABLE_BOUND"`
	// Workers is the number of parallel scan workers; 1 means sequential.
	Workers int `json:"workers" env:"SIEVETAIL_WORKERS"`
}

// Default returns the built-in defaults: scan to one million with a
// ten-million prime table, sequentially.
func Default() Config {
	return Config{
		MaxN:       1_000_000,
		TableBound: 10_000_000,
		Workers:    1,
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Path returns the config file location for display purposes.
func Path() (string, error) { return path() }

// Load reads configuration; a missing file yields the defaults. Any
// SIEVETAIL_* environment variables are overlaid on top of the file.
func Load() (Config, error) {
	c := Default()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, err
	}
	if err == nil {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, err
		}
	}
	if err := env.Parse(&c); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
