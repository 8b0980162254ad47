// Package config loads pqbind configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the CLI and the API server.
type Config struct {
	// Library is the path to the PQClean shared library.
	Library string `yaml:"library"`

	// KATDir is the root of the KAT vector tree.
	KATDir string `yaml:"kat_dir"`

	// Algorithms restricts validation to these identifiers; empty means
	// every algorithm with a KAT file pattern.
	Algorithms []string `yaml:"algorithms,omitempty"`

	// MaxVectors caps vectors driven per file; 0 means the default.
	MaxVectors int `yaml:"max_vectors,omitempty"`

	// CrossCheck enables the circl reference cross-check.
	CrossCheck bool `yaml:"cross_check,omitempty"`

	// Listen is the API server bind address.
	Listen string `yaml:"listen,omitempty"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		KATDir: "./KATs",
		Listen: ":8080",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config:
// PQBIND_LIB, PQBIND_KAT_DIR and PQBIND_ADDR.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PQBIND_LIB"); v != "" {
		c.Library = v
	}
	if v := os.Getenv("PQBIND_KAT_DIR"); v != "" {
		c.KATDir = v
	}
	if v := os.Getenv("PQBIND_ADDR"); v != "" {
		c.Listen = v
	}
}
