// Package models defines the corpus data types and runtime configuration.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEncoding = "windows-1252"
	DefaultTopN     = 10
	DefaultFormat   = "json"
)

// Config holds runtime configuration for an analysis run. Values come from
// an optional YAML file and are overridden by CLI flags.
type Config struct {
	CorpusFiles []string `yaml:"corpus"`
	Encoding    string   `yaml:"encoding"`
	WorkerCount int      `yaml:"workers"`
	TopN        int      `yaml:"top"`
	Format      string   `yaml:"format"`
	OutputPath  string   `yaml:"output"`
	SQLitePath  string   `yaml:"sqlite"`
}

// DefaultConfig returns a config with defaults applied. A zero WorkerCount
// lets the reducer pick GOMAXPROCS.
func DefaultConfig() *Config {
	return &Config{
		Encoding: DefaultEncoding,
		TopN:     DefaultTopN,
		Format:   DefaultFormat,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired by defaults.
func (c *Config) Validate() error {
	if c.WorkerCount < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.WorkerCount)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.TopN)
	}
	switch c.Format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or text)", c.Format)
	}
	return nil
}
