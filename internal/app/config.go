package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options.
type Config struct {
	Home     string `yaml:"home"`      // data directory, e.g. $HOME/.sealchat
	Curve    string `yaml:"curve"`     // x25519 (default), p256 or p384
	LogLevel string `yaml:"log_level"` // zerolog level name, default "info"
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Curve: "x25519", LogLevel: "info"}
}

// DefaultConfigPath is $HOME/.sealchat/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".sealchat", "config.yaml"), nil
}

// LoadConfig reads a YAML config file, layering it over the defaults. A
// missing file is not an error; a malformed one is, before any store is
// touched.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
