// Package config provides configuration management for bal.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/balance-cli/internal/view"
)

// Defaults applied when neither the file nor the environment sets a value.
const (
	DefaultInputFile    = "expresiones.txt"
	DefaultOutputFormat = "table"
	DefaultLocale       = "en"
)

// Environment variables that override file values.
const (
	EnvInputFile = "BAL_INPUT_FILE"
	EnvOutput    = "BAL_OUTPUT"
	EnvLocale    = "BAL_LOCALE"
	EnvNoColor   = "NO_COLOR"
)

// Config holds the bal configuration.
type Config struct {
	InputFile    string `yaml:"input_file,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	Locale       string `yaml:"locale,omitempty"`
	NoColor      bool   `yaml:"no_color,omitempty"`
}

// Validate checks that the configured values are supported.
func (c *Config) Validate() error {
	if err := view.ValidateFormat(c.OutputFormat); err != nil {
		return err
	}
	if err := view.ValidateLocale(c.Locale); err != nil {
		return err
	}
	return nil
}

// ApplyDefaults fills empty fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.InputFile == "" {
		c.InputFile = DefaultInputFile
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv(EnvInputFile); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.OutputFormat = v
	}
	if v := os.Getenv(EnvLocale); v != "" {
		c.Locale = v
	}
	if os.Getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bal", "config.yml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bal", "config.yml")
	}

	return filepath.Join(home, ".config", "bal", "config.yml")
}

// PathOrDefault returns path, or the default path when path is empty.
func PathOrDefault(path string) string {
	if path != "" {
		return path
	}
	return DefaultConfigPath()
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file, overrides with environment
// variables and fills in defaults. A missing file is not an error; a file that
// exists but cannot be parsed is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	cfg.ApplyDefaults()
	return cfg, nil
}
