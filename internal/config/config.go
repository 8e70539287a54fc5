// Package config loads the global ~/.wab/config.toml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global configuration file. All fields are optional;
// the zero value is a valid configuration.
type Config struct {
	// DefaultSession is the session used when no --session flag is given.
	DefaultSession string `toml:"default_session"`
	// Listen is an optional extra TCP address the daemon serves RPC on,
	// in addition to the per-session Unix socket. Empty disables TCP.
	Listen string `toml:"listen"`
	// LogLevel is the daemon log level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Load reads config from the given path. A missing file is an error; callers
// treat it as an empty configuration.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
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
