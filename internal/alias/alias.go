// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package alias resolves drug names to their known synonyms and matches
// drug-bearing fields against a search term through those synonyms.
//
// The synonym dictionary is supplied externally; equivalence is exactly what
// the table states and is never closed transitively here.
package alias

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trial-engine/internal/normalize"
)

// Table maps a lowercased drug name to its synonyms. It is read-only once built.
type Table map[string][]string

// New builds a Table from raw entries, lowercasing and trimming the keys.
// Entries whose keys collide after lowercasing are concatenated.
func New(entries map[string][]string) Table {
	t := make(Table, len(entries))
	for name, synonyms := range entries {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		t[key] = append(t[key], synonyms...)
	}
	return t
}

// Load reads a YAML or JSON document mapping drug names to synonym lists.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading alias table: %w", err)
	}
	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing alias table %s: %w", path, err)
	}
	return New(entries), nil
}

// Synonyms returns the synonyms recorded for name, case-insensitively.
// It returns nil when name is unknown.
func (t Table) Synonyms(name string) []string {
	return t[strings.ToLower(strings.TrimSpace(name))]
}

// MatchDrug reports whether a drug field matches term. It succeeds when any
// of these hold:
//   - the normalized field contains the normalized term;
//   - a synonym of term is contained in the normalized field;
//   - some comma-separated drug in the field lists term among its synonyms.
func (t Table) MatchDrug(field, term string) bool {
	text := normalize.String(field)
	want := normalize.String(term)
	if want == "" {
		return false
	}
	if strings.Contains(text, want) {
		return true
	}
	for _, syn := range t.Synonyms(term) {
		if s := normalize.String(syn); s != "" && strings.Contains(text, s) {
			return true
		}
	}
	for _, drug := range normalize.RawTokens(field) {
		for _, syn := range t.Synonyms(drug) {
			if normalize.String(syn) == want {
				return true
			}
		}
	}
	return false
}
