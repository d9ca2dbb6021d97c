// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Operator is an advanced-search comparison operator.
type Operator string

const (
	OpContains         Operator = "contains"
	OpIs               Operator = "is"
	OpIsNot            Operator = "is_not"
	OpStartsWith       Operator = "starts_with"
	OpEndsWith         Operator = "ends_with"
	OpGreaterThan      Operator = "greater_than"
	OpGreaterThanEqual Operator = "greater_than_equal"
	OpLessThan         Operator = "less_than"
	OpLessThanEqual    Operator = "less_than_equal"
	OpEquals           Operator = "equals"
	OpNotEquals        Operator = "not_equals"
)

// ValidOperators returns the closed set of operators in display order.
func ValidOperators() []Operator {
	return []Operator{
		OpContains, OpIs, OpIsNot, OpStartsWith, OpEndsWith,
		OpGreaterThan, OpGreaterThanEqual, OpLessThan, OpLessThanEqual,
		OpEquals, OpNotEquals,
	}
}

// IsValid reports whether op belongs to the closed operator set.
func (op Operator) IsValid() bool {
	switch op {
	case OpContains, OpIs, OpIsNot, OpStartsWith, OpEndsWith,
		OpGreaterThan, OpGreaterThanEqual, OpLessThan, OpLessThanEqual,
		OpEquals, OpNotEquals:
		return true
	}
	return false
}

// IsNegative reports whether op is one of the negating operators, which are
// the only ones a blank field satisfies.
func (op Operator) IsNegative() bool {
	return op == OpIsNot || op == OpNotEquals
}

// FilterState maps a filter category (e.g. "trialPhases") to its accepted
// values. Categories combine with AND; values within a category with OR.
// An empty value set places no constraint on its category.
type FilterState map[string][]string

// Active returns the categories that carry at least one accepted value.
func (f FilterState) Active() []string {
	var out []string
	for category, values := range f {
		if len(values) > 0 {
			out = append(out, category)
		}
	}
	return out
}

// IsEmpty reports whether no category constrains the result.
func (f FilterState) IsEmpty() bool {
	return len(f.Active()) == 0
}

// Clone returns a deep copy.
func (f FilterState) Clone() FilterState {
	out := make(FilterState, len(f))
	for k, v := range f {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// SearchCriterion is one advanced-search predicate. Criteria combine with AND.
type SearchCriterion struct {
	Field    string   `json:"field" yaml:"field"`
	Operator Operator `json:"operator" yaml:"operator"`
	Value    string   `json:"value" yaml:"value"`
}

// SortDirection orders a sort key ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec names the single active sort key. A zero SortSpec means unsorted.
type SortSpec struct {
	Field     string        `json:"field,omitempty" yaml:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty" yaml:"direction,omitempty"`
}

// IsActive reports whether a sort field is set.
func (s SortSpec) IsActive() bool {
	return s.Field != ""
}

// Toggle returns the spec that results from selecting field: a new field
// starts ascending, then descending, then unsorted.
func (s SortSpec) Toggle(field string) SortSpec {
	if s.Field != field {
		return SortSpec{Field: field, Direction: SortAsc}
	}
	if s.Direction == SortAsc {
		return SortSpec{Field: field, Direction: SortDesc}
	}
	return SortSpec{}
}

// Query is the full snapshot the engine evaluates in one pass.
type Query struct {
	Search   string            `json:"search,omitempty" yaml:"search,omitempty"`
	Filters  FilterState       `json:"filters,omitempty" yaml:"filters,omitempty"`
	Criteria []SearchCriterion `json:"criteria,omitempty" yaml:"criteria,omitempty"`
	Sort     SortSpec          `json:"sort,omitempty" yaml:"sort,omitempty"`
	Page     int               `json:"page,omitempty" yaml:"page,omitempty"`
	PageSize int               `json:"page_size,omitempty" yaml:"page_size,omitempty"`
}
