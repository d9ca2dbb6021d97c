// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package version collapses a raw trial list into the latest version of each
// logical trial.
package version

import (
	"strings"

	"github.com/pdiddy/trial-engine/pkg/types"
)

// Key returns the logical identity of a trial: its overview title when
// present, otherwise its trial_id.
func Key(t types.Trial) string {
	if title := strings.TrimSpace(t.Overview.Title); title != "" {
		return title
	}
	return t.TrialID
}

// Latest keeps one trial per Key. Among originals the first seen wins. A
// revision (original_trial_id set) always replaces whatever holds its key,
// so it beats its original regardless of arrival order; between two
// revisions the one processed last wins. Output order follows the first
// occurrence of each key.
func Latest(trials []types.Trial) []types.Trial {
	seen := make(map[string]int, len(trials)) // key → index in out
	out := make([]types.Trial, 0, len(trials))

	for _, t := range trials {
		key := Key(t)
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, t)
			continue
		}
		if t.IsRevision() {
			out[idx] = t
		}
	}
	return out
}
