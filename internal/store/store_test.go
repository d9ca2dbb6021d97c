// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/trial-engine/pkg/types"
)

// --- test helpers ---

func testSetup(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	s, err := Open(types.StoreConfig{DataDir: filepath.Join(tmpDir, "data")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })

	trialsDir := filepath.Join(tmpDir, "trials")
	if err := os.MkdirAll(trialsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return s, trialsDir
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func trialIDs(trials []types.Trial) string {
	ids := make([]string, len(trials))
	for i, t := range trials {
		ids[i] = t.TrialID
	}
	return strings.Join(ids, ",")
}

// --- tests ---

func TestIngest(t *testing.T) {
	s, dir := testSetup(t)
	ctx := context.Background()

	writeFile(t, dir, "a.json", `[
		{"trial_id": "T-1", "overview": {"title": "Study A", "countries": "France, Germany"}},
		{"trial_id": "T-2", "overview": {"title": "Study B"}, "criteria": [{"age_from": 18}]}
	]`)
	writeFile(t, dir, "b.yaml", `trial_id: T-1
overview:
  title: Study A (amended)
  countries:
    - France
criteria:
  - healthy_volunteers: yes
`)
	writeFile(t, dir, "bad.json", `{"trial_id": `)
	writeFile(t, dir, "readme.txt", "ignored")

	var out bytes.Buffer
	summary, err := s.Ingest(ctx, dir, &out)
	if err != nil {
		t.Fatal(err)
	}

	want := IngestSummary{Files: 3, Inserted: 2, Updated: 1, Failed: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	if !strings.Contains(out.String(), "failed  bad.json") {
		t.Errorf("progress output missing failure line:\n%s", out.String())
	}

	trials, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := trialIDs(trials); got != "T-1,T-2" {
		t.Fatalf("All() order = %s, want T-1,T-2", got)
	}

	amended := trials[0]
	if amended.Overview.Title != "Study A (amended)" {
		t.Errorf("title = %q, want amended title", amended.Overview.Title)
	}
	if amended.Overview.Countries.String() != "France" {
		t.Errorf("countries = %q, want France", amended.Overview.Countries.String())
	}
	if amended.FirstCriteria().HealthyVolunteers != types.Yes {
		t.Errorf("healthy_volunteers = %v, want Yes", amended.FirstCriteria().HealthyVolunteers)
	}
	if got := trials[1].FirstCriteria().AgeFrom; got != "18" {
		t.Errorf("age_from = %q, want 18", got)
	}
}

func TestIngestMissingDir(t *testing.T) {
	s, dir := testSetup(t)
	if _, err := s.Ingest(context.Background(), filepath.Join(dir, "nope"), &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestPutSkipsMissingID(t *testing.T) {
	s, _ := testSetup(t)
	ctx := context.Background()

	trials := []types.Trial{
		{TrialID: "T-1"},
		{TrialID: "  "},
		{TrialID: "T-2", Overview: types.Overview{OriginalTrialID: "T-1"}},
	}
	inserted, updated, skipped, err := s.Put(ctx, trials, "test")
	if err != nil {
		t.Fatal(err)
	}
	if inserted != 2 || updated != 0 || skipped != 1 {
		t.Errorf("Put() = %d inserted, %d updated, %d skipped; want 2, 0, 1", inserted, updated, skipped)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	stored, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !stored[1].IsRevision() {
		t.Error("revision marker lost in storage")
	}
}

func TestPutKeepsArrivalOrderOnUpdate(t *testing.T) {
	s, _ := testSetup(t)
	ctx := context.Background()

	if _, _, _, err := s.Put(ctx, []types.Trial{{TrialID: "A"}, {TrialID: "B"}}, "first"); err != nil {
		t.Fatal(err)
	}
	_, updated, _, err := s.Put(ctx, []types.Trial{{TrialID: "A", Overview: types.Overview{Title: "new"}}}, "second")
	if err != nil {
		t.Fatal(err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}

	trials, err := s.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got := trialIDs(trials); got != "A,B" {
		t.Errorf("All() order = %s, want A,B", got)
	}
	if trials[0].Overview.Title != "new" {
		t.Errorf("title = %q, want new", trials[0].Overview.Title)
	}
}

func TestDecodeTrials(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantIDs string
		wantErr bool
	}{
		{"json object", `{"trial_id": "T-1"}`, ".json", "T-1", false},
		{"json array", `[{"trial_id": "T-1"}, {"trial_id": "T-2"}]`, ".json", "T-1,T-2", false},
		{"yaml mapping", "trial_id: T-1\n", ".yaml", "T-1", false},
		{"yaml sequence", "- trial_id: T-1\n- trial_id: T-2\n", ".yml", "T-1,T-2", false},
		{"empty yaml", "", ".yaml", "", false},
		{"broken json", `[{"trial_id": }]`, ".json", "", true},
		{"broken yaml", "trial_id: [unclosed\n", ".yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trials, err := DecodeTrials([]byte(tt.data), tt.ext)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeTrials() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := trialIDs(trials); got != tt.wantIDs {
				t.Errorf("DecodeTrials() ids = %q, want %q", got, tt.wantIDs)
			}
		})
	}
}
