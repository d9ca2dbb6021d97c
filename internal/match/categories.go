// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import "sort"

// Rule is how one accepted filter value is compared with a trial field.
type Rule int

const (
	// RuleContains matches when the normalized field contains the value.
	RuleContains Rule = iota
	// RuleExact matches only whole-value equality after normalization.
	RuleExact
	// RuleDrug matches through the alias table.
	RuleDrug
)

// Category binds a filter category name to the field it constrains.
type Category struct {
	Name  string
	Field string
	Rule  Rule
	// MultiValued fields hold comma-separated lists; option derivation
	// splits them into individual values.
	MultiValued bool
}

var categories = []Category{
	{Name: "therapeuticAreas", Field: "therapeutic_area", Rule: RuleContains},
	{Name: "statuses", Field: "trial_status", Rule: RuleExact},
	{Name: "diseaseTypes", Field: "disease_type", Rule: RuleContains},
	{Name: "primaryDrugs", Field: "primary_drugs", Rule: RuleDrug, MultiValued: true},
	{Name: "otherDrugs", Field: "secondary_drugs", Rule: RuleDrug, MultiValued: true},
	{Name: "trialPhases", Field: "trial_phase", Rule: RuleExact},
	{Name: "patientSegments", Field: "patient_segment", Rule: RuleContains, MultiValued: true},
	{Name: "lineOfTherapy", Field: "line_of_therapy", Rule: RuleContains, MultiValued: true},
	{Name: "countries", Field: "countries", Rule: RuleContains, MultiValued: true},
	{Name: "regions", Field: "regions", Rule: RuleContains, MultiValued: true},
	{Name: "sponsorsCollaborators", Field: "sponsor_collaborators", Rule: RuleContains, MultiValued: true},
	{Name: "sponsorFieldActivity", Field: "sponsor_field_activity", Rule: RuleContains, MultiValued: true},
	{Name: "associatedCro", Field: "associated_cro", Rule: RuleContains, MultiValued: true},
	{Name: "trialTags", Field: "trial_tags", Rule: RuleContains, MultiValued: true},
	{Name: "studyDesignKeywords", Field: "study_design_keywords", Rule: RuleContains, MultiValued: true},
	{Name: "subjectTypes", Field: "subject_type", Rule: RuleContains},
	{Name: "trialRecordStatus", Field: "trial_record_status", Rule: RuleContains},
	{Name: "sex", Field: "sex", Rule: RuleExact},
	{Name: "healthyVolunteers", Field: "healthy_volunteers", Rule: RuleExact},
	{Name: "resultsAvailable", Field: "results_available", Rule: RuleExact},
	{Name: "endpointsMet", Field: "endpoints_met", Rule: RuleExact},
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, len(categories)+1)
	for _, c := range categories {
		m[c.Name] = c
	}
	m["secondaryDrugs"] = m["otherDrugs"]
	return m
}()

// LookupCategory returns the category registered under name.
func LookupCategory(name string) (Category, bool) {
	c, ok := categoryByName[name]
	return c, ok
}

// Categories returns every category in registration order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// CategoryNames returns the category names, sorted.
func CategoryNames() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	sort.Strings(out)
	return out
}
