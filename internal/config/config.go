// Package config loads engine settings from YAML. Everything has a working
// default: a zero-config engine validates locally and skips the semantic
// tier.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's tunable settings
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Semantic SemanticConfig `yaml:"semantic"`
	Shuffle  ShuffleConfig  `yaml:"shuffle"`
}

// ContentConfig points at the authored exercise catalog
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// SemanticConfig configures the external Tier-2 validator client
type SemanticConfig struct {
	BaseURL        string `yaml:"base_url"` // empty disables the semantic tier
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	CircuitBreaker bool `yaml:"circuit_breaker"`
	Retry          bool `yaml:"retry"`
	Bulkhead       bool `yaml:"bulkhead"`
	RateLimit      bool `yaml:"rate_limit"`
	MaxConcurrent  int  `yaml:"max_concurrent"`
	RatePerSecond  int  `yaml:"rate_per_second"`
}

// ShuffleConfig bounds the reshuffle-until-different loop
type ShuffleConfig struct {
	MaxRetries int `yaml:"max_retries"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Content: ContentConfig{Dir: "content"},
		Semantic: SemanticConfig{
			TimeoutSeconds: 30,
			CircuitBreaker: true,
			Retry:          true,
			Bulkhead:       true,
			RateLimit:      true,
			MaxConcurrent:  8,
			RatePerSecond:  5,
		},
		Shuffle: ShuffleConfig{MaxRetries: 10},
	}
}

// Load reads a YAML config file, layering it over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with
func (c *Config) Validate() error {
	if c.Semantic.TimeoutSeconds < 0 {
		return fmt.Errorf("semantic.timeout_seconds must not be negative")
	}
	if c.Shuffle.MaxRetries < 0 {
		return fmt.Errorf("shuffle.max_retries must not be negative")
	}
	return nil
}
