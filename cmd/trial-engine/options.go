// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trial-engine/internal/engine"
	revisions "github.com/pdiddy/trial-engine/internal/version"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the selectable values of every filter category",
	Long: `Options derives the values each filter category can take from the
latest version of every stored trial, merged with the dropdown values in
the configured options file.`,
	RunE: runOptions,
}

func init() {
	optionsCmd.Flags().Bool("json", false, "output options as JSON")
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	trials, err := loadTrials(context.Background())
	if err != nil {
		return err
	}
	external, err := loadExternalOptions()
	if err != nil {
		return err
	}

	options := engine.DeriveCategoryOptions(revisions.Latest(trials), external)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(options)
	}
	formatOptions(options, os.Stdout)
	return nil
}

func formatOptions(options map[string][]string, w io.Writer) {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := options[name]
		if len(values) == 0 {
			fmt.Fprintf(w, "%s: (none)\n", name)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", name, strings.Join(values, "; "))
	}
}
