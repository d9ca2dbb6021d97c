// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trial-engine CLI.
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trial-engine/internal/alias"
	"github.com/pdiddy/trial-engine/internal/logger"
	"github.com/pdiddy/trial-engine/internal/store"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is resolved from flags, environment and the config file before any
// subcommand runs.
var cfg types.EngineConfig

// rootCmd is the base command for the trial-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "trial-engine",
	Short: "Search, filter and sort clinical-trial records",
	Long: `trial-engine keeps a local collection of clinical-trial records and
evaluates browsing queries against it: free-text search, category filters,
advanced field criteria, a single sort key, and pagination.

Load records with ingest, then query them with browse. The options command
lists the values each filter category can take.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var loaded types.EngineConfig
		if err := viper.Unmarshal(&loaded); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
		resolved, err := loaded.WithDefaults()
		if err != nil {
			return err
		}
		cfg = resolved
		logger.Init(cfg.LogLevel, os.Stderr)
		logger.WithField("data_dir", cfg.DataDir).Debug("configuration loaded")
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./trial-engine.yaml or ~/.config/trial-engine/trial-engine.yaml)")
	flags.String("data-dir", "", "directory holding the trial database (default \"data\")")
	flags.String("alias-file", "", "YAML or JSON drug alias table")
	flags.String("options-file", "", "YAML or JSON map of filter category to extra dropdown values")
	flags.String("log-level", "", "log level: debug, info, warn, error (default \"info\")")

	viper.BindPFlag("data_dir", flags.Lookup("data-dir"))
	viper.BindPFlag("alias_file", flags.Lookup("alias-file"))
	viper.BindPFlag("options_file", flags.Lookup("options-file"))
	viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trial-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trial-engine"))
		}
	}

	viper.SetEnvPrefix("TRIAL_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// --- shared helpers ---

// loadTrials returns every stored trial in arrival order.
func loadTrials(ctx context.Context) ([]types.Trial, error) {
	s, err := store.Open(cfg.StoreConfig)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	trials, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	logger.WithField("trials", len(trials)).Debug("loaded trial collection")
	return trials, nil
}

// loadAliases reads the configured alias table, or returns an empty one.
func loadAliases() (alias.Table, error) {
	if cfg.AliasFile == "" {
		return alias.Table{}, nil
	}
	table, err := alias.Load(cfg.AliasFile)
	if err != nil {
		return nil, err
	}
	logger.WithField("drugs", len(table)).Debug("loaded alias table")
	return table, nil
}

// loadExternalOptions reads the configured dropdown options, if any.
func loadExternalOptions() (map[string][]string, error) {
	if cfg.OptionsFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(cfg.OptionsFile)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	var options map[string][]string
	if err := yaml.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", cfg.OptionsFile, err)
	}
	return options, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
