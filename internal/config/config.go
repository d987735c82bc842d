// Package config loads the ccperms tool configuration. Settings come
// from, in increasing priority: built-in defaults, an optional global
// config file at ~/.ccperms/config.json, and CCPERMS_* environment
// variables. Command-line flags override all of these at the call
// site.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds tool-wide defaults for both binaries.
type Configuration struct {
	// Indent is the default JSON indentation width for merged output.
	Indent int `koanf:"indent" validate:"min=0"`

	// Backup controls whether ccmerge copies an existing output file
	// aside before overwriting it.
	Backup bool `koanf:"backup"`

	// Prefix is the filename prefix ccextract matches markdown
	// catalogs by.
	Prefix string `koanf:"prefix" validate:"required"`

	// Dir is the directory ccextract scans.
	Dir string `koanf:"dir" validate:"required"`
}

// Load builds the configuration from defaults, the global config file
// (if present), and environment overrides.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".ccperms", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	k.Load(env.Provider("CCPERMS_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys.
// Example: CCPERMS_INDENT -> indent
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CCPERMS_"))
}
