// Package config provides configuration loading for rulegen.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfigFile is the name of the project-level config file.
const ProjectConfigFile = "rulegen.yaml"

// DefaultOutputPath is where the catalog is written when nothing
// overrides it, resolved against the working directory.
const DefaultOutputPath = "knowledge_base/rules.json"

// Config represents the complete rulegen configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig configures the catalog destination.
type OutputConfig struct {
	// Path is the destination file for the generated catalog.
	Path string `yaml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the fixed defaults. Running with
// no config file always reproduces the same catalog at the same path.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("output.path is required")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Output.Path != "" {
		c.Output.Path = other.Output.Path
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
