// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package version

import (
	"testing"

	"github.com/pdiddy/trial-engine/pkg/types"
)

func trial(id, title, original string) types.Trial {
	return types.Trial{
		TrialID:  id,
		Overview: types.Overview{Title: title, OriginalTrialID: original},
	}
}

func ids(trials []types.Trial) []string {
	out := make([]string, len(trials))
	for i, t := range trials {
		out[i] = t.TrialID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLatest(t *testing.T) {
	tests := []struct {
		name   string
		trials []types.Trial
		want   []string
	}{
		{
			name:   "revision after original wins",
			trials: []types.Trial{trial("1", "Study A", ""), trial("2", "Study A", "1")},
			want:   []string{"2"},
		},
		{
			name:   "revision before original wins",
			trials: []types.Trial{trial("2", "Study A", "1"), trial("1", "Study A", "")},
			want:   []string{"2"},
		},
		{
			name:   "first original wins among originals",
			trials: []types.Trial{trial("1", "Study A", ""), trial("3", "Study A", "")},
			want:   []string{"1"},
		},
		{
			name:   "last of two revisions wins",
			trials: []types.Trial{trial("2", "Study A", "1"), trial("3", "Study A", "1")},
			want:   []string{"3"},
		},
		{
			name:   "untitled trials key on trial_id",
			trials: []types.Trial{trial("1", "", ""), trial("2", "", ""), trial("1", "", "")},
			want:   []string{"1", "2"},
		},
		{
			name: "first-occurrence order is kept",
			trials: []types.Trial{
				trial("x", "Study X", ""),
				trial("a", "Study A", ""),
				trial("y", "Study Y", ""),
				trial("a2", "Study A", "a"),
			},
			want: []string{"x", "a2", "y"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Latest(tt.trials))
			if !equalIDs(got, tt.want) {
				t.Errorf("Latest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLatestIsIdempotent(t *testing.T) {
	in := []types.Trial{
		trial("1", "Study A", ""),
		trial("2", "Study B", ""),
		trial("3", "Study A", "1"),
		trial("4", "", ""),
		trial("5", "Study B", "2"),
		trial("6", "Study B", "2"),
	}
	once := Latest(in)
	twice := Latest(once)
	if !equalIDs(ids(once), ids(twice)) {
		t.Errorf("Latest(Latest(x)) = %v, want %v", ids(twice), ids(once))
	}
}

func TestLatestDoesNotModifyInput(t *testing.T) {
	in := []types.Trial{trial("1", "Study A", ""), trial("2", "Study A", "1")}
	Latest(in)
	if in[0].TrialID != "1" || in[1].TrialID != "2" {
		t.Errorf("input modified: %v", ids(in))
	}
}

func TestKey(t *testing.T) {
	if got := Key(trial("1", "  Study A ", "")); got != "Study A" {
		t.Errorf("Key() = %q, want %q", got, "Study A")
	}
	if got := Key(trial("1", " ", "")); got != "1" {
		t.Errorf("Key() = %q, want %q", got, "1")
	}
}
