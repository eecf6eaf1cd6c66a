// Package config handles loading and saving user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mshalev/gematria/internal/gematria"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds user preferences. Letter tables are fixed and deliberately
// not configurable.
type Config struct {
	DefaultScheme string `yaml:"default_scheme"`
	ShareBaseURL  string `yaml:"share_base_url,omitempty"`
	BigTotal      bool   `yaml:"big_total"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultScheme: gematria.DefaultScheme.String(),
		BigTotal:      true,
	}
}

// Scheme resolves the configured default scheme, falling back to the
// built-in default when the identifier is unknown.
func (c *Config) Scheme() gematria.Scheme {
	s, err := gematria.ParseScheme(c.DefaultScheme)
	if err != nil {
		return gematria.DefaultScheme
	}
	return s
}

// Load reads the config file from a directory. A missing file yields the
// defaults without error.
func Load(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a directory.
func Save(dir string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gematria"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
