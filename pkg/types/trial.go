// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for the trial-engine:
// the Trial record and its sub-sections, the query contracts consumed by the
// evaluation engine (FilterState, SearchCriterion, SortSpec), and configuration.
//
// See docs/ARCHITECTURE.md § Data Model.
package types

// Trial is one clinical-trial record. The engine never mutates a Trial; every
// stage derives new values or booleans from it.
//
// Only index 0 of Outcomes, Criteria, Timing, Results, Sites and Logs is
// consulted. Callers must keep at most one current block per collection.
type Trial struct {
	// TrialID is the primary key of the record (e.g. "TB-000123").
	TrialID string `json:"trial_id" yaml:"trial_id"`

	Overview Overview   `json:"overview" yaml:"overview"`
	Outcomes []Outcome  `json:"outcomes,omitempty" yaml:"outcomes,omitempty"`
	Criteria []Criteria `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Timing   []Timing   `json:"timing,omitempty" yaml:"timing,omitempty"`
	Results  []Results  `json:"results,omitempty" yaml:"results,omitempty"`
	Sites    []Sites    `json:"sites,omitempty" yaml:"sites,omitempty"`
	Logs     []Logs     `json:"logs,omitempty" yaml:"logs,omitempty"`

	// Other holds heterogeneous typed sub-records (publications, press
	// releases, registry entries) whose shape varies by Type.
	Other []OtherRecord `json:"other,omitempty" yaml:"other,omitempty"`

	Notes []Note `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Overview carries the scalar attributes of a trial.
type Overview struct {
	Title           string     `json:"title" yaml:"title"`
	TherapeuticArea string     `json:"therapeutic_area" yaml:"therapeutic_area"`
	TrialIdentifier StringList `json:"trial_identifier,omitempty" yaml:"trial_identifier,omitempty"`
	NCTNumber       string     `json:"nct_number,omitempty" yaml:"nct_number,omitempty"`
	ProtocolID      string     `json:"protocol_id,omitempty" yaml:"protocol_id,omitempty"`
	TrialPhase      string     `json:"trial_phase" yaml:"trial_phase"`
	Status          string     `json:"status" yaml:"status"`
	PrimaryDrugs    StringList `json:"primary_drugs,omitempty" yaml:"primary_drugs,omitempty"`
	OtherDrugs      StringList `json:"other_drugs,omitempty" yaml:"other_drugs,omitempty"`
	DiseaseType     string     `json:"disease_type,omitempty" yaml:"disease_type,omitempty"`
	PatientSegment  StringList `json:"patient_segment,omitempty" yaml:"patient_segment,omitempty"`
	LineOfTherapy   StringList `json:"line_of_therapy,omitempty" yaml:"line_of_therapy,omitempty"`
	ReferenceLinks  StringList `json:"reference_links,omitempty" yaml:"reference_links,omitempty"`
	TrialTags       StringList `json:"trial_tags,omitempty" yaml:"trial_tags,omitempty"`

	SponsorCollaborators StringList `json:"sponsor_collaborators,omitempty" yaml:"sponsor_collaborators,omitempty"`
	SponsorFieldActivity StringList `json:"sponsor_field_activity,omitempty" yaml:"sponsor_field_activity,omitempty"`
	AssociatedCRO        StringList `json:"associated_cro,omitempty" yaml:"associated_cro,omitempty"`

	Countries StringList `json:"countries,omitempty" yaml:"countries,omitempty"`
	Regions   StringList `json:"region,omitempty" yaml:"region,omitempty"`

	TrialRecordStatus string `json:"trial_record_status,omitempty" yaml:"trial_record_status,omitempty"`

	// OriginalTrialID, when non-empty, marks this record as a revision of
	// the trial it names.
	OriginalTrialID string `json:"original_trial_id,omitempty" yaml:"original_trial_id,omitempty"`

	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Outcome describes the purpose and design of the trial.
type Outcome struct {
	PurposeOfTrial        string     `json:"purpose_of_trial,omitempty" yaml:"purpose_of_trial,omitempty"`
	Summary               string     `json:"summary,omitempty" yaml:"summary,omitempty"`
	PrimaryOutcomeMeasure string     `json:"primary_outcome_measure,omitempty" yaml:"primary_outcome_measure,omitempty"`
	OtherOutcomeMeasure   string     `json:"other_outcome_measure,omitempty" yaml:"other_outcome_measure,omitempty"`
	StudyDesign           string     `json:"study_design,omitempty" yaml:"study_design,omitempty"`
	StudyDesignKeywords   StringList `json:"study_design_keywords,omitempty" yaml:"study_design_keywords,omitempty"`
	TreatmentRegimen      string     `json:"treatment_regimen,omitempty" yaml:"treatment_regimen,omitempty"`
	NumberOfArms          Text       `json:"number_of_arms,omitempty" yaml:"number_of_arms,omitempty"`
}

// Criteria holds eligibility information.
type Criteria struct {
	InclusionCriteria        string       `json:"inclusion_criteria,omitempty" yaml:"inclusion_criteria,omitempty"`
	ExclusionCriteria        string       `json:"exclusion_criteria,omitempty" yaml:"exclusion_criteria,omitempty"`
	AgeFrom                  Text         `json:"age_from,omitempty" yaml:"age_from,omitempty"`
	AgeTo                    Text         `json:"age_to,omitempty" yaml:"age_to,omitempty"`
	SubjectType              string       `json:"subject_type,omitempty" yaml:"subject_type,omitempty"`
	Sex                      string       `json:"sex,omitempty" yaml:"sex,omitempty"`
	HealthyVolunteers        YesNoUnknown `json:"healthy_volunteers" yaml:"healthy_volunteers"`
	TargetNoVolunteers       Text         `json:"target_no_volunteers,omitempty" yaml:"target_no_volunteers,omitempty"`
	ActualEnrolledVolunteers Text         `json:"actual_enrolled_volunteers,omitempty" yaml:"actual_enrolled_volunteers,omitempty"`
}

// Timing holds the estimated and actual milestone dates. Dates are kept as
// the raw strings found in the source data.
type Timing struct {
	StartDateActual        string `json:"start_date_actual,omitempty" yaml:"start_date_actual,omitempty"`
	StartDateEstimated     string `json:"start_date_estimated,omitempty" yaml:"start_date_estimated,omitempty"`
	EnrollmentClosedActual string `json:"enrollment_closed_actual,omitempty" yaml:"enrollment_closed_actual,omitempty"`
	TrialEndDateActual     string `json:"trial_end_date_actual,omitempty" yaml:"trial_end_date_actual,omitempty"`
	TrialEndDateEstimated  string `json:"trial_end_date_estimated,omitempty" yaml:"trial_end_date_estimated,omitempty"`
	ResultPublishedDate    string `json:"result_published_date,omitempty" yaml:"result_published_date,omitempty"`
}

// Results summarises the published outcome of the trial.
type Results struct {
	ResultsAvailable     YesNoUnknown `json:"results_available" yaml:"results_available"`
	EndpointsMet         YesNoUnknown `json:"endpoints_met" yaml:"endpoints_met"`
	TrialOutcome         string       `json:"trial_outcome,omitempty" yaml:"trial_outcome,omitempty"`
	TrialOutcomeContent  string       `json:"trial_outcome_content,omitempty" yaml:"trial_outcome_content,omitempty"`
	AdverseEventReported string       `json:"adverse_event_reported,omitempty" yaml:"adverse_event_reported,omitempty"`
}

// Sites describes where the trial runs.
type Sites struct {
	TotalSites Text   `json:"total,omitempty" yaml:"total,omitempty"`
	SiteNotes  string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Logs tracks editorial review of the record.
type Logs struct {
	TrialChangesLog  string `json:"trial_changes_log,omitempty" yaml:"trial_changes_log,omitempty"`
	LastModifiedDate string `json:"last_modified_date,omitempty" yaml:"last_modified_date,omitempty"`
	LastModifiedUser string `json:"last_modified_user,omitempty" yaml:"last_modified_user,omitempty"`
	FullReviewUser   string `json:"full_review_user,omitempty" yaml:"full_review_user,omitempty"`
	NextReviewDate   string `json:"next_review_date,omitempty" yaml:"next_review_date,omitempty"`
}

// OtherRecord is a typed sub-record whose Data shape depends on Type.
type OtherRecord struct {
	ID   string         `json:"id,omitempty" yaml:"id,omitempty"`
	Type string         `json:"type" yaml:"type"`
	Data map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

// Note is a free-form annotation attached to a trial.
type Note struct {
	Date    string     `json:"date,omitempty" yaml:"date,omitempty"`
	Type    string     `json:"type,omitempty" yaml:"type,omitempty"`
	Content string     `json:"content" yaml:"content"`
	Sources StringList `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// FirstOutcome returns outcomes[0], or the zero value when absent.
func (t *Trial) FirstOutcome() Outcome {
	if len(t.Outcomes) == 0 {
		return Outcome{}
	}
	return t.Outcomes[0]
}

// FirstCriteria returns criteria[0], or the zero value when absent.
func (t *Trial) FirstCriteria() Criteria {
	if len(t.Criteria) == 0 {
		return Criteria{}
	}
	return t.Criteria[0]
}

// FirstTiming returns timing[0], or the zero value when absent.
func (t *Trial) FirstTiming() Timing {
	if len(t.Timing) == 0 {
		return Timing{}
	}
	return t.Timing[0]
}

// FirstResults returns results[0], or the zero value when absent.
func (t *Trial) FirstResults() Results {
	if len(t.Results) == 0 {
		return Results{}
	}
	return t.Results[0]
}

// FirstSites returns sites[0], or the zero value when absent.
func (t *Trial) FirstSites() Sites {
	if len(t.Sites) == 0 {
		return Sites{}
	}
	return t.Sites[0]
}

// FirstLogs returns logs[0], or the zero value when absent.
func (t *Trial) FirstLogs() Logs {
	if len(t.Logs) == 0 {
		return Logs{}
	}
	return t.Logs[0]
}

// IsRevision reports whether the trial is an updated version of another.
func (t *Trial) IsRevision() bool {
	return t.Overview.OriginalTrialID != ""
}
