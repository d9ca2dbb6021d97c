// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/match"
	"github.com/pdiddy/trial-engine/pkg/types"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List searchable fields, operators and filter categories",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "%-28s  %-8s  %-12s  %s\n", "Field", "Sort", "Match", "Also accepted as")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
		for _, d := range field.All() {
			fmt.Fprintf(os.Stdout, "%-28s  %-8s  %-12s  %s\n",
				d.Name, d.Kind, d.Policy, strings.Join(d.Aliases, ", "))
		}

		ops := make([]string, 0, len(types.ValidOperators()))
		for _, op := range types.ValidOperators() {
			ops = append(ops, string(op))
		}
		fmt.Fprintf(os.Stdout, "\nOperators: %s\n", strings.Join(ops, ", "))
		fmt.Fprintf(os.Stdout, "Filter categories: %s\n", strings.Join(match.CategoryNames(), ", "))
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
