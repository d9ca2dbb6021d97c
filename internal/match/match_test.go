// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trial-engine/internal/alias"
	"github.com/pdiddy/trial-engine/pkg/types"
)

func phaseTrial(id, phase string) types.Trial {
	return types.Trial{TrialID: id, Overview: types.Overview{TrialPhase: phase}}
}

func TestMatchesSearch(t *testing.T) {
	trial := &types.Trial{
		TrialID: "TB-1",
		Overview: types.Overview{
			Title:     "Pembrolizumab in First_Line NSCLC",
			Countries: types.StringList{"France", "Germany"},
		},
		Criteria: []types.Criteria{{HealthyVolunteers: types.Yes, AgeFrom: "18"}},
		Notes:    []types.Note{{Content: "Interim analysis posted"}},
		Other: []types.OtherRecord{{
			ID:   "o1",
			Type: "publication",
			Data: map[string]any{"journal": "Lancet", "year": 2023.0, "tags": []any{"phase-2"}},
		}},
	}
	m := New(nil)

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"first line", true},
		{"FIRST-LINE", true},
		{"germany", true},
		{"interim analysis", true},
		{"lancet", true},
		{"2023", true},
		{"phase 2", true},
		{"yes", true},
		{"tb 1", true},
		{"chemotherapy", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchesSearch(trial, tt.term))
		})
	}
}

func TestMatchesSearchSkipsUnknownYesNo(t *testing.T) {
	trial := &types.Trial{Criteria: []types.Criteria{{HealthyVolunteers: types.Unknown}}}
	assert.False(t, New(nil).MatchesSearch(trial, "0"))
}

func TestFilterPhaseExact(t *testing.T) {
	m := New(nil)
	q := types.Query{Filters: types.FilterState{"trialPhases": {"Phase I"}}}

	assert.True(t, m.Match(ptr(phaseTrial("1", "Phase I")), q))
	assert.False(t, m.Match(ptr(phaseTrial("2", "Phase I/II")), q))
	assert.False(t, m.Match(ptr(phaseTrial("3", "")), q))
}

func TestFilterSexExact(t *testing.T) {
	m := New(nil)
	q := types.Query{Filters: types.FilterState{"sex": {"Male"}}}

	female := &types.Trial{Criteria: []types.Criteria{{Sex: "Female"}}}
	male := &types.Trial{Criteria: []types.Criteria{{Sex: "male"}}}
	assert.False(t, m.Match(female, q))
	assert.True(t, m.Match(male, q))
}

func TestFilterSemantics(t *testing.T) {
	m := New(nil)
	trial := &types.Trial{Overview: types.Overview{
		TrialPhase: "Phase II",
		Status:     "Recruiting",
		Countries:  types.StringList{"France", "Germany"},
	}}

	tests := []struct {
		name    string
		filters types.FilterState
		want    bool
	}{
		{"no filters", nil, true},
		{"empty category", types.FilterState{"countries": {}}, true},
		{"unknown category", types.FilterState{"colour": {"blue"}}, true},
		{"or within category", types.FilterState{"countries": {"Spain", "Germany"}}, true},
		{"and across categories", types.FilterState{"countries": {"France"}, "statuses": {"Closed"}}, false},
		{"both satisfied", types.FilterState{"countries": {"France"}, "statuses": {"recruiting"}}, true},
		{"none accepted", types.FilterState{"countries": {"Spain"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchesFilters(trial, tt.filters))
		})
	}
}

func TestFilterDrugAliases(t *testing.T) {
	m := New(alias.New(map[string][]string{"keytruda": {"pembrolizumab"}}))
	generic := &types.Trial{Overview: types.Overview{PrimaryDrugs: types.StringList{"Pembrolizumab"}}}
	brand := &types.Trial{Overview: types.Overview{OtherDrugs: types.StringList{"Keytruda", "Carboplatin"}}}

	assert.True(t, m.MatchesFilters(generic, types.FilterState{"primaryDrugs": {"Keytruda"}}))
	assert.True(t, m.MatchesFilters(brand, types.FilterState{"otherDrugs": {"Pembrolizumab"}}))
	assert.True(t, m.MatchesFilters(brand, types.FilterState{"secondaryDrugs": {"carboplatin"}}))
	assert.False(t, m.MatchesFilters(generic, types.FilterState{"primaryDrugs": {"Nivolumab"}}))
}

func TestMatchesCriteria(t *testing.T) {
	m := New(nil)
	trial := &types.Trial{
		Overview: types.Overview{Countries: types.StringList{"France"}},
		Criteria: []types.Criteria{{AgeFrom: "18", Sex: "Female"}},
	}

	tests := []struct {
		name     string
		criteria []types.SearchCriterion
		want     bool
	}{
		{"none", nil, true},
		{"age", []types.SearchCriterion{{Field: "ageFrom", Operator: types.OpGreaterThanEqual, Value: "18"}}, true},
		{"and", []types.SearchCriterion{
			{Field: "age_from", Operator: types.OpGreaterThanEqual, Value: "18"},
			{Field: "sex", Operator: types.OpIs, Value: "Male"},
		}, false},
		{"blank field skipped", []types.SearchCriterion{{Field: "", Operator: types.OpIs, Value: "x"}}, true},
		{"blank value skipped", []types.SearchCriterion{{Field: "sex", Operator: types.OpIs, Value: " "}}, true},
		{"absent field is_not", []types.SearchCriterion{{Field: "regions", Operator: types.OpIsNot, Value: "Europe"}}, true},
		{"absent field is", []types.SearchCriterion{{Field: "regions", Operator: types.OpIs, Value: "Europe"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.MatchesCriteria(trial, tt.criteria))
		})
	}
}

func TestCategories(t *testing.T) {
	names := CategoryNames()
	assert.Contains(t, names, "trialPhases")
	assert.Contains(t, names, "primaryDrugs")
	assert.Len(t, Categories(), len(names))

	c, ok := LookupCategory("secondaryDrugs")
	require.True(t, ok)
	assert.Equal(t, "otherDrugs", c.Name)

	_, ok = LookupCategory("colour")
	assert.False(t, ok)
}

func ptr(t types.Trial) *types.Trial { return &t }
