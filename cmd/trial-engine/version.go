// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/match"
	"github.com/pdiddy/trial-engine/pkg/types"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the trial-engine version and its query vocabulary size",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "trial-engine %s (%d fields, %d operators, %d filter categories)\n",
			version, len(field.Names()), len(types.ValidOperators()), len(match.CategoryNames()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
