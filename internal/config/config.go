// Package config provides configuration types, loading and validation for
// dnamectl.
//
// Configuration is read from a YAML file. Every field is optional: Validate
// fills in defaults, so Load("") yields a usable configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath is the environment variable consulted when no config path
// is given on the command line.
const EnvConfigPath = "DNAMECTL_CONFIG"

// Defaults applied by Validate.
const (
	DefaultDatabasePath = "dnamectl.db"
	DefaultAPIHost      = "127.0.0.1"
	DefaultAPIPort      = 8053
)

// ResolveConfigPath returns flagValue if set and the value of
// DNAMECTL_CONFIG otherwise. Both may be empty.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads and validates the configuration at path. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize input
	switch InputFormat(strings.ToLower(string(cfg.Input.Format))) {
	case "", InputHex:
		cfg.Input.Format = InputHex
	case InputText:
		cfg.Input.Format = InputText
	default:
		return fmt.Errorf("input.format must be %q or %q, got %q", InputHex, InputText, cfg.Input.Format)
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = DefaultDatabasePath
	}

	// Normalize management API
	if cfg.API.Host == "" {
		cfg.API.Host = DefaultAPIHost
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = DefaultAPIPort
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}

	return nil
}
