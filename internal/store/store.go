// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists the raw trial collection in a local SQLite
// database so the engine can be re-run without re-reading source files.
//
// Records are stored exactly as ingested. Version resolution happens in the
// engine, so revisions and their originals are both kept here.
package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trial-engine/internal/logger"
	"github.com/pdiddy/trial-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "trials.db"
)

// Store manages the trial SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dataDir/index/trials.db and ensures
// the schema exists.
func Open(cfg types.StoreConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trials (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			trial_id TEXT NOT NULL UNIQUE,
			title TEXT,
			original_trial_id TEXT,
			payload TEXT NOT NULL,
			source TEXT,
			ingested_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trials_title ON trials(title)`,
		`CREATE INDEX IF NOT EXISTS idx_trials_original ON trials(original_trial_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	Files    int
	Inserted int
	Updated  int
	Skipped  int
	Failed   int
}

// Ingest reads every *.json, *.yaml and *.yml file in dir and upserts the
// trials it contains. A file may hold one trial object or an array of them.
// Files that fail to parse are counted and reported on w; they do not abort
// the run.
func (s *Store) Ingest(ctx context.Context, dir string, w io.Writer) (IngestSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading trial directory %s: %w", dir, err)
	}

	var summary IngestSummary
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".json" && ext != ".yaml" && ext != ".yml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		summary.Files++
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entry.Name(), err)
			summary.Failed++
			continue
		}

		trials, err := DecodeTrials(data, ext)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", entry.Name(), err)
			summary.Failed++
			continue
		}

		inserted, updated, skipped, err := s.Put(ctx, trials, entry.Name())
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", entry.Name(), err)
			summary.Failed++
			continue
		}
		summary.Inserted += inserted
		summary.Updated += updated
		summary.Skipped += skipped
		fmt.Fprintf(w, "ingested %s (%d new, %d updated)\n", entry.Name(), inserted, updated)
	}

	fmt.Fprintf(w, "\nfiles: %d, inserted: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Files, summary.Inserted, summary.Updated, summary.Skipped, summary.Failed)
	return summary, nil
}

// Put upserts trials in one transaction, keyed by trial_id. Updated records
// keep their original arrival position. Trials without a trial_id are
// skipped.
func (s *Store) Put(ctx context.Context, trials []types.Trial, source string) (inserted, updated, skipped int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, t := range trials {
		if strings.TrimSpace(t.TrialID) == "" {
			logger.WithField("source", source).Warn("skipping trial without trial_id")
			skipped++
			continue
		}

		payload, err := json.Marshal(t)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("encoding trial %s: %w", t.TrialID, err)
		}

		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM trials WHERE trial_id = ?`, t.TrialID,
		).Scan(&exists); err != nil {
			return 0, 0, 0, fmt.Errorf("checking trial %s: %w", t.TrialID, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO trials (trial_id, title, original_trial_id, payload, source, ingested_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(trial_id) DO UPDATE SET
				title=excluded.title, original_trial_id=excluded.original_trial_id,
				payload=excluded.payload, source=excluded.source, ingested_at=excluded.ingested_at`,
			t.TrialID, t.Overview.Title, t.Overview.OriginalTrialID, string(payload), source, now,
		)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("upserting trial %s: %w", t.TrialID, err)
		}
		if exists > 0 {
			updated++
		} else {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, 0, fmt.Errorf("committing trials: %w", err)
	}
	return inserted, updated, skipped, nil
}

// All returns every stored trial in arrival order.
func (s *Store) All(ctx context.Context) ([]types.Trial, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT trial_id, payload FROM trials ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying trials: %w", err)
	}
	defer rows.Close()

	var trials []types.Trial
	for rows.Next() {
		var id, payload string
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		var t types.Trial
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, fmt.Errorf("decoding trial %s: %w", id, err)
		}
		trials = append(trials, t)
	}
	return trials, rows.Err()
}

// Count returns the number of stored trials.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM trials`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting trials: %w", err)
	}
	return n, nil
}

// DecodeTrials parses a JSON or YAML document holding one trial or an array
// of trials. ext selects the format (".json", ".yaml" or ".yml").
func DecodeTrials(data []byte, ext string) ([]types.Trial, error) {
	if ext == ".json" {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var trials []types.Trial
			if err := json.Unmarshal(trimmed, &trials); err != nil {
				return nil, err
			}
			return trials, nil
		}
		var t types.Trial
		if err := json.Unmarshal(trimmed, &t); err != nil {
			return nil, err
		}
		return []types.Trial{t}, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var trials []types.Trial
		if err := root.Decode(&trials); err != nil {
			return nil, err
		}
		return trials, nil
	}
	var t types.Trial
	if err := root.Decode(&t); err != nil {
		return nil, err
	}
	return []types.Trial{t}, nil
}
