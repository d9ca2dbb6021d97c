// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package queryfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trial-engine/pkg/types"
)

func writeQuery(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeQuery(t, `search: pembrolizumab
filters:
  trialPhases:
    - Phase II
  countries: [France, Spain]
criteria:
  - field: age_from
    operator: greater_than_equal
    value: "18"
sort:
  field: start_date_estimated
  direction: desc
page: 2
page_size: 24
`)
	q, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "pembrolizumab", q.Search)
	assert.Equal(t, []string{"Phase II"}, q.Filters["trialPhases"])
	assert.Equal(t, []string{"France", "Spain"}, q.Filters["countries"])
	require.Len(t, q.Criteria, 1)
	assert.Equal(t, types.SearchCriterion{Field: "age_from", Operator: types.OpGreaterThanEqual, Value: "18"}, q.Criteria[0])
	assert.Equal(t, types.SortSpec{Field: "start_date_estimated", Direction: types.SortDesc}, q.Sort)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 24, q.PageSize)
	assert.NoError(t, Validate(q))
}

func TestReadJSON(t *testing.T) {
	path := writeQuery(t, `{"search": "nsclc", "filters": {"sex": ["Female"]}}`)
	q, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "nsclc", q.Search)
	assert.Equal(t, []string{"Female"}, q.Filters["sex"])
}

func TestReadErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Read(writeQuery(t, "criteria: {not: [a list\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       types.Query
		wantErr []string
	}{
		{"empty", types.Query{}, nil},
		{"camel case field", types.Query{Criteria: []types.SearchCriterion{{Field: "ageFrom", Operator: types.OpIs}}}, nil},
		{"unknown category", types.Query{Filters: types.FilterState{"colour": {"blue"}}}, []string{`unknown filter category "colour"`}},
		{"unknown field and operator", types.Query{Criteria: []types.SearchCriterion{{Field: "colour", Operator: "between"}}},
			[]string{`criterion 1: unknown field "colour"`, `criterion 1: unknown operator "between"`}},
		{"unknown sort field", types.Query{Sort: types.SortSpec{Field: "colour", Direction: types.SortAsc}}, []string{`unknown sort field "colour"`}},
		{"bad direction", types.Query{Sort: types.SortSpec{Field: "title", Direction: "up"}}, []string{`unknown sort direction "up"`}},
		{"negative page", types.Query{Page: -1}, []string{"must not be negative"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.q)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, msg := range tt.wantErr {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}
