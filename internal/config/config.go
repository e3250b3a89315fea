// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"astrochart/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Aspects contains aspect detection settings
	Aspects AspectConfig `json:"aspects"`

	// Ashtakavarga contains Ashtakavarga scoring settings
	Ashtakavarga AshtakavargaConfig `json:"ashtakavarga"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// AspectConfig contains aspect detection settings
type AspectConfig struct {
	// IncludeMinor enables the minor aspect table
	IncludeMinor bool `json:"include_minor"`

	// DefinitionsFile is an optional HCL file overriding the default
	// aspect definition table
	DefinitionsFile string `json:"definitions_file,omitempty"`
}

// AshtakavargaConfig contains Ashtakavarga scoring settings
type AshtakavargaConfig struct {
	// StrengthThreshold overrides the mean-based strongest/weakest
	// classification when non-nil
	StrengthThreshold *int `json:"strength_threshold,omitempty"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowPatterns includes the pattern section in CLI output
	ShowPatterns bool `json:"show_patterns"`

	// ShowAshtakavarga includes the Ashtakavarga table in CLI output
	ShowAshtakavarga bool `json:"show_ashtakavarga"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Aspects: AspectConfig{
			IncludeMinor: false,
		},
		Ashtakavarga: AshtakavargaConfig{},
		Output: OutputConfig{
			DefaultFormat:    "cli",
			ShowPatterns:     true,
			ShowAshtakavarga: true,
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
	// Ensure directory exists
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
