// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"dario.cat/mergo"
)

// DefaultPageSize is the number of trials shown per page when unset.
const DefaultPageSize = 12

// StoreConfig holds settings for the local trial repository.
type StoreConfig struct {
	// DataDir contains the SQLite database (index/trials.db).
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
}

// EngineConfig holds settings for the query engine and its CLI.
type EngineConfig struct {
	StoreConfig `yaml:",inline" mapstructure:",squash"`

	// AliasFile is a YAML or JSON map of lowercase drug name to synonyms.
	AliasFile string `json:"alias_file,omitempty" yaml:"alias_file,omitempty" mapstructure:"alias_file"`

	// OptionsFile is a YAML or JSON map of filter category to externally
	// maintained dropdown values.
	OptionsFile string `json:"options_file,omitempty" yaml:"options_file,omitempty" mapstructure:"options_file"`

	// PageSize is the number of trials per page (default 12).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// LogLevel is a logrus level name (default "info").
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultEngineConfig returns the configuration used when nothing is set.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		StoreConfig: StoreConfig{DataDir: "data"},
		PageSize:    DefaultPageSize,
		LogLevel:    "info",
	}
}

// WithDefaults fills every unset field of cfg from DefaultEngineConfig.
func (cfg EngineConfig) WithDefaults() (EngineConfig, error) {
	if err := mergo.Merge(&cfg, DefaultEngineConfig()); err != nil {
		return cfg, fmt.Errorf("merging config defaults: %w", err)
	}
	if cfg.PageSize < 0 {
		cfg.PageSize = DefaultPageSize
	}
	return cfg, nil
}
