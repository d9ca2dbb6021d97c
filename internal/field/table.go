// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package field

import (
	"strings"

	"github.com/pdiddy/trial-engine/pkg/types"
)

func table() []*Descriptor {
	return []*Descriptor{
		// overview
		{Name: "trial_id", Aliases: []string{"id"}, Policy: PolicyIdentifier,
			search: trialIdentifiers,
			sort:   func(t *types.Trial) SortValue { return String(t.TrialID) }},
		overview("title", nil, func(o types.Overview) string { return o.Title }),
		overview("therapeutic_area", nil, func(o types.Overview) string { return o.TherapeuticArea }),
		overview("disease_type", nil, func(o types.Overview) string { return o.DiseaseType }),
		overview("patient_segment", nil, func(o types.Overview) string { return o.PatientSegment.String() }),
		overview("line_of_therapy", nil, func(o types.Overview) string { return o.LineOfTherapy.String() }),
		categorical(overview("trial_phase", []string{"phase"}, func(o types.Overview) string { return o.TrialPhase })),
		categorical(overview("trial_status", []string{"status"}, func(o types.Overview) string { return o.Status })),
		drug(overview("primary_drugs", nil, func(o types.Overview) string { return o.PrimaryDrugs.String() })),
		drug(overview("secondary_drugs", []string{"other_drugs"}, func(o types.Overview) string { return o.OtherDrugs.String() })),
		overview("sponsor_collaborators", []string{"sponsor"}, func(o types.Overview) string { return o.SponsorCollaborators.String() }),
		overview("sponsor_field_activity", []string{"field_of_activity"}, func(o types.Overview) string { return o.SponsorFieldActivity.String() }),
		overview("associated_cro", nil, func(o types.Overview) string { return o.AssociatedCRO.String() }),
		categorical(overview("countries", []string{"country"}, func(o types.Overview) string { return o.Countries.String() })),
		categorical(overview("regions", []string{"region"}, func(o types.Overview) string { return o.Regions.String() })),
		overview("trial_tags", []string{"tags"}, func(o types.Overview) string { return o.TrialTags.String() }),
		overview("reference_links", nil, func(o types.Overview) string { return o.ReferenceLinks.String() }),
		overview("trial_record_status", nil, func(o types.Overview) string { return o.TrialRecordStatus }),
		overview("original_trial_id", nil, func(o types.Overview) string { return o.OriginalTrialID }),
		kind(KindDate, overview("created_at", nil, func(o types.Overview) string { return o.CreatedAt })),
		kind(KindDate, overview("updated_at", nil, func(o types.Overview) string { return o.UpdatedAt })),

		// outcomes[0]
		outcome("purpose_of_trial", func(o types.Outcome) string { return o.PurposeOfTrial }),
		outcome("summary", func(o types.Outcome) string { return o.Summary }),
		outcome("primary_outcome_measure", func(o types.Outcome) string { return o.PrimaryOutcomeMeasure }),
		outcome("other_outcome_measure", func(o types.Outcome) string { return o.OtherOutcomeMeasure }),
		outcome("study_design", func(o types.Outcome) string { return o.StudyDesign }),
		outcome("study_design_keywords", func(o types.Outcome) string { return o.StudyDesignKeywords.String() }),
		outcome("treatment_regimen", func(o types.Outcome) string { return o.TreatmentRegimen }),
		kind(KindNumber, outcome("number_of_arms", func(o types.Outcome) string { return o.NumberOfArms.String() })),

		// criteria[0]
		criteria("inclusion_criteria", func(c types.Criteria) string { return c.InclusionCriteria }),
		criteria("exclusion_criteria", func(c types.Criteria) string { return c.ExclusionCriteria }),
		kind(KindNumber, criteria("age_from", func(c types.Criteria) string { return c.AgeFrom.String() })),
		kind(KindNumber, criteria("age_to", func(c types.Criteria) string { return c.AgeTo.String() })),
		criteria("subject_type", func(c types.Criteria) string { return c.SubjectType }),
		exact(criteria("sex", func(c types.Criteria) string { return c.Sex })),
		exact(kind(KindYesNo, criteria("healthy_volunteers", func(c types.Criteria) string { return c.HealthyVolunteers.String() }))),
		kind(KindNumber, criteria("target_no_volunteers", func(c types.Criteria) string { return c.TargetNoVolunteers.String() })),
		kind(KindNumber, criteria("actual_enrolled_volunteers", func(c types.Criteria) string { return c.ActualEnrolledVolunteers.String() })),

		// timing[0]
		kind(KindDate, timing("start_date_actual", func(t types.Timing) string { return t.StartDateActual })),
		kind(KindDate, timing("start_date_estimated", func(t types.Timing) string { return t.StartDateEstimated })),
		kind(KindDate, timing("enrollment_closed_actual", func(t types.Timing) string { return t.EnrollmentClosedActual })),
		kind(KindDate, timing("trial_end_date_actual", func(t types.Timing) string { return t.TrialEndDateActual })),
		kind(KindDate, timing("trial_end_date_estimated", func(t types.Timing) string { return t.TrialEndDateEstimated })),
		kind(KindDate, timing("result_published_date", func(t types.Timing) string { return t.ResultPublishedDate })),

		// results[0]
		exact(kind(KindYesNo, results("results_available", func(r types.Results) string { return r.ResultsAvailable.String() }))),
		exact(kind(KindYesNo, results("endpoints_met", func(r types.Results) string { return r.EndpointsMet.String() }))),
		results("trial_outcome", func(r types.Results) string { return r.TrialOutcome }),
		results("trial_outcome_content", func(r types.Results) string { return r.TrialOutcomeContent }),
		results("adverse_event_reported", func(r types.Results) string { return r.AdverseEventReported }),

		// sites[0]
		kind(KindNumber, &Descriptor{Name: "total_sites", Aliases: []string{"sites"},
			search: func(t *types.Trial) string { return t.FirstSites().TotalSites.String() }}),
		{Name: "site_notes",
			search: func(t *types.Trial) string { return t.FirstSites().SiteNotes }},

		// logs[0]
		logs("trial_changes_log", func(l types.Logs) string { return l.TrialChangesLog }),
		kind(KindDate, logs("last_modified_date", func(l types.Logs) string { return l.LastModifiedDate })),
		logs("last_modified_user", func(l types.Logs) string { return l.LastModifiedUser }),
		logs("full_review_user", func(l types.Logs) string { return l.FullReviewUser }),
		kind(KindDate, logs("next_review_date", func(l types.Logs) string { return l.NextReviewDate })),
	}
}

// trialIdentifiers joins every identifier-like attribute so one search field
// matches any of the ID schemes a trial carries.
func trialIdentifiers(t *types.Trial) string {
	ids := []string{t.TrialID}
	ids = append(ids, t.Overview.TrialIdentifier...)
	ids = append(ids, t.Overview.NCTNumber, t.Overview.ProtocolID)

	out := ids[:0]
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return strings.Join(out, " ")
}

func overview(name string, aliases []string, get func(types.Overview) string) *Descriptor {
	return &Descriptor{Name: name, Aliases: aliases,
		search: func(t *types.Trial) string { return get(t.Overview) }}
}

func outcome(name string, get func(types.Outcome) string) *Descriptor {
	return &Descriptor{Name: name,
		search: func(t *types.Trial) string { return get(t.FirstOutcome()) }}
}

func criteria(name string, get func(types.Criteria) string) *Descriptor {
	return &Descriptor{Name: name,
		search: func(t *types.Trial) string { return get(t.FirstCriteria()) }}
}

func timing(name string, get func(types.Timing) string) *Descriptor {
	return &Descriptor{Name: name,
		search: func(t *types.Trial) string { return get(t.FirstTiming()) }}
}

func results(name string, get func(types.Results) string) *Descriptor {
	return &Descriptor{Name: name,
		search: func(t *types.Trial) string { return get(t.FirstResults()) }}
}

func logs(name string, get func(types.Logs) string) *Descriptor {
	return &Descriptor{Name: name,
		search: func(t *types.Trial) string { return get(t.FirstLogs()) }}
}

func kind(k Kind, d *Descriptor) *Descriptor {
	d.Kind = k
	return d
}

func categorical(d *Descriptor) *Descriptor {
	d.Policy = PolicyCategorical
	return d
}

func exact(d *Descriptor) *Descriptor {
	d.Policy = PolicyExact
	return d
}

func drug(d *Descriptor) *Descriptor {
	d.Policy = PolicyDrug
	return d
}
