// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"sort"
	"strings"

	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/match"
	"github.com/pdiddy/trial-engine/internal/normalize"
	"github.com/pdiddy/trial-engine/internal/sorter"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// DeriveCategoryOptions lists the selectable values of every filter
// category: externally supplied options first, then values found in trials.
// Values are deduplicated on their normalized form (the first spelling wins)
// and ordered by case-insensitive collation. Multi-valued fields are split
// on commas. External categories the engine does not know are passed
// through, deduplicated and ordered the same way.
func DeriveCategoryOptions(trials []types.Trial, external map[string][]string) map[string][]string {
	out := make(map[string][]string)
	for _, c := range match.Categories() {
		values := append([]string(nil), external[c.Name]...)
		for i := range trials {
			raw := field.SearchValue(&trials[i], c.Field)
			if c.MultiValued {
				values = append(values, normalize.RawTokens(raw)...)
			} else {
				values = append(values, raw)
			}
		}
		out[c.Name] = distinct(values)
	}
	for name, values := range external {
		if _, ok := out[name]; !ok {
			out[name] = distinct(values)
		}
	}
	return out
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := normalize.String(v)
		if key == "" || key == "n a" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	c := sorter.NewComparator(field.KindText)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareStrings(out[i], out[j]) < 0
	})
	return out
}
