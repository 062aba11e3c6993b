// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tariff-optimizer/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Advisory contains advisory chat configuration
	Advisory AdvisoryConfig `json:"advisory"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// TopN is how many recommendations to display (export always gets all)
	TopN int `json:"top_n"`

	// ShowDetails shows per-row detail in CLI output
	ShowDetails bool `json:"show_details"`
}

// AdvisoryConfig contains advisory chat settings
type AdvisoryConfig struct {
	// BaseURL is the text-generation endpoint base URL
	BaseURL string `json:"base_url"`

	// Model is the model identifier
	Model string `json:"model"`

	// TimeoutSeconds bounds a single advisory request
	TimeoutSeconds int `json:"timeout_seconds"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is never stored in config or logs.
	APIKeyEnv string `json:"api_key_env"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			TopN:          5,
			ShowDetails:   true,
		},
		Advisory: AdvisoryConfig{
			BaseURL:        "https://generativelanguage.googleapis.com/v1beta",
			Model:          "gemini-pro",
			TimeoutSeconds: 30,
			APIKeyEnv:      "GEMINI_API_KEY",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".tariff-optimizer", "config.json")
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
