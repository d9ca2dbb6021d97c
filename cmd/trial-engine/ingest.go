// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/trial-engine/internal/logger"
	"github.com/pdiddy/trial-engine/internal/store"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Load trial records from JSON or YAML files",
	Long: `Ingest reads every .json, .yaml and .yml file in a directory and stores
the trial records it contains. A file may hold a single trial or an array of
trials. Records are keyed by trial_id; ingesting a record again replaces it.

Revisions (records with original_trial_id) are stored alongside their
originals; browse resolves the latest version of each trial.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	s, err := store.Open(cfg.StoreConfig)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), args[0], os.Stdout)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"files":    summary.Files,
		"inserted": summary.Inserted,
		"updated":  summary.Updated,
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
	}).Info("ingest finished")

	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed ingestion", summary.Failed)
	}
	return nil
}
