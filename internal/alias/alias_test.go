// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package alias

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() Table {
	return New(map[string][]string{
		"Keytruda": {"Pembrolizumab", "MK-3475"},
		"opdivo":   {"Nivolumab"},
	})
}

func TestSynonymsCaseInsensitive(t *testing.T) {
	table := testTable()
	assert.Equal(t, []string{"Pembrolizumab", "MK-3475"}, table.Synonyms("KEYTRUDA"))
	assert.Equal(t, []string{"Nivolumab"}, table.Synonyms(" Opdivo "))
	assert.Nil(t, table.Synonyms("aspirin"))
}

func TestMatchDrug(t *testing.T) {
	table := testTable()
	tests := []struct {
		name  string
		field string
		term  string
		want  bool
	}{
		{"direct containment", "Pembrolizumab, Carboplatin", "carboplatin", true},
		{"alias of term in field", "Pembrolizumab", "Keytruda", true},
		{"alias spelled with dash", "MK 3475 + chemo", "Keytruda", true},
		{"reverse lookup", "Keytruda, Carboplatin", "Pembrolizumab", true},
		{"unrelated", "Nivolumab", "Keytruda", false},
		{"empty term", "Nivolumab", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.MatchDrug(tt.field, tt.term))
		})
	}
}

func TestMatchDrugSymmetry(t *testing.T) {
	table := New(map[string][]string{"Drug A": {"Drug B"}})
	assert.True(t, table.MatchDrug("Drug B", "Drug A"))
	assert.True(t, table.MatchDrug("Drug A", "Drug B"))
}

func TestMatchDrugNotTransitive(t *testing.T) {
	table := New(map[string][]string{
		"a": {"b"},
		"b": {"c"},
	})
	assert.False(t, table.MatchDrug("c", "a"))
}

func TestNilTable(t *testing.T) {
	var table Table
	assert.True(t, table.MatchDrug("Aspirin", "aspirin"))
	assert.False(t, table.MatchDrug("Aspirin", "ibuprofen"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "aliases.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("Keytruda:\n  - Pembrolizumab\n"), 0o644))
	table, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pembrolizumab"}, table.Synonyms("keytruda"))

	jsonPath := filepath.Join(dir, "aliases.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"OPDIVO": ["Nivolumab"]}`), 0o644))
	table, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"Nivolumab"}, table.Synonyms("opdivo"))

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
