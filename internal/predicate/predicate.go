// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package predicate decides whether one extracted field value satisfies an
// advanced-search operator and comparison value.
//
// Rules are chosen by the field's policy and checked in a fixed order; the
// first rule that handles the operator decides. Nothing here returns an
// error: malformed numbers and dates degrade to false, and unknown
// operators match.
package predicate

import (
	"cmp"
	"regexp"
	"strings"

	"github.com/pdiddy/trial-engine/internal/alias"
	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/normalize"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Evaluator applies operators to field values. The zero value evaluates
// drug fields without synonyms.
type Evaluator struct {
	Aliases alias.Table
}

// New returns an Evaluator that resolves drug names through aliases.
func New(aliases alias.Table) *Evaluator {
	return &Evaluator{Aliases: aliases}
}

// Evaluate reports whether value, the display string of fieldName, satisfies
// op against search.
func (e *Evaluator) Evaluate(value string, op types.Operator, search, fieldName string) bool {
	// A blank field never is or contains anything, but always is not.
	if strings.TrimSpace(value) == "" {
		return op.IsNegative()
	}

	policy := field.PolicyFor(fieldName)
	switch policy {
	case field.PolicyDrug:
		if ok, handled := e.drug(value, op, search); handled {
			return ok
		}
	case field.PolicyDate:
		if ok, handled := date(value, op, search); handled {
			return ok
		}
	case field.PolicyExact:
		return exact(value, op, search)
	case field.PolicyCategorical:
		if ok, handled := categorical(value, op, search); handled {
			return ok
		}
	}

	if op == types.OpIs && isMultiline(value) {
		return multilineIs(value, search)
	}
	if op == types.OpIs && policy == field.PolicyIdentifier {
		op = types.OpContains
	}
	return fallback(value, op, search)
}

func (e *Evaluator) drug(value string, op types.Operator, search string) (bool, bool) {
	// "N/A" normalizes to "n a".
	if n := normalize.String(value); n == "" || n == "n a" {
		return op.IsNegative(), true
	}
	switch op {
	case types.OpContains, types.OpIs:
		return e.Aliases.MatchDrug(value, search), true
	case types.OpIsNot:
		return !e.Aliases.MatchDrug(value, search), true
	}
	return false, false
}

func date(value string, op types.Operator, search string) (bool, bool) {
	switch op {
	case types.OpIs, types.OpIsNot, types.OpEquals, types.OpNotEquals,
		types.OpGreaterThan, types.OpGreaterThanEqual, types.OpLessThan, types.OpLessThanEqual:
	default:
		return false, false
	}

	want, ok := normalize.Date(search)
	if !ok {
		return false, true
	}
	got, ok := normalize.Date(value)
	if !ok {
		return op == types.OpIsNot, true
	}

	switch op {
	case types.OpIs, types.OpEquals:
		return normalize.Day(got) == normalize.Day(want), true
	case types.OpIsNot, types.OpNotEquals:
		return normalize.Day(got) != normalize.Day(want), true
	case types.OpGreaterThan:
		return got.After(want), true
	case types.OpGreaterThanEqual:
		return !got.Before(want), true
	case types.OpLessThan:
		return got.Before(want), true
	default: // less_than_equal
		return !got.After(want), true
	}
}

// exact handles single-valued fields (sex, yes/no answers), where only the
// whole value can match.
func exact(value string, op types.Operator, search string) bool {
	equal := normalize.String(value) == normalize.String(search)
	if op.IsNegative() {
		return !equal
	}
	return equal
}

// categorical compares comma tokens exactly, so "Male" never matches inside
// "Female" and "Phase I" never matches "Phase I/II".
func categorical(value string, op types.Operator, search string) (bool, bool) {
	want := normalize.String(search)
	switch op {
	case types.OpIs:
		return normalize.String(value) == want, true
	case types.OpContains:
		return hasToken(value, want), true
	case types.OpIsNot:
		return !hasToken(value, want), true
	}
	return false, false
}

func hasToken(value, want string) bool {
	for _, tok := range normalize.Tokens(value) {
		if tok == want {
			return true
		}
	}
	return false
}

// bullet splits multi-line and bulleted text into its items.
var bullet = regexp.MustCompile(`[\r\n•◦▪●]+`)

func isMultiline(value string) bool {
	return bullet.MatchString(value)
}

func multilineIs(value, search string) bool {
	want := normalize.String(search)
	if normalize.String(value) == want {
		return true
	}
	for _, chunk := range bullet.Split(value, -1) {
		if c := normalize.String(chunk); c != "" && c == want {
			return true
		}
	}
	return false
}

func fallback(value string, op types.Operator, search string) bool {
	got := normalize.String(value)
	want := normalize.String(search)

	switch op {
	case types.OpContains:
		return strings.Contains(got, want)
	case types.OpIs:
		return got == want
	case types.OpIsNot:
		// Negates containment, not equality.
		return !strings.Contains(got, want)
	case types.OpStartsWith:
		return strings.HasPrefix(got, want)
	case types.OpEndsWith:
		return strings.HasSuffix(got, want)
	case types.OpGreaterThan, types.OpGreaterThanEqual, types.OpLessThan,
		types.OpLessThanEqual, types.OpEquals, types.OpNotEquals:
		return numeric(value, op, search)
	}
	return true
}

func numeric(value string, op types.Operator, search string) bool {
	c, ok := compareNumbers(value, search)
	if !ok {
		return false
	}
	switch op {
	case types.OpGreaterThan:
		return c > 0
	case types.OpGreaterThanEqual:
		return c >= 0
	case types.OpLessThan:
		return c < 0
	case types.OpLessThanEqual:
		return c <= 0
	case types.OpEquals:
		return c == 0
	default: // not_equals
		return c != 0
	}
}

// compareNumbers compares exactly when both sides fit a decimal, and as
// float64 otherwise, where huge exponents saturate to ±Inf or 0.
func compareNumbers(value, search string) (int, bool) {
	if a, ok := normalize.Decimal(value); ok {
		if b, ok := normalize.Decimal(search); ok {
			return a.Cmp(b), true
		}
	}
	a, ok := normalize.Number(value)
	if !ok {
		return 0, false
	}
	b, ok := normalize.Number(search)
	if !ok {
		return 0, false
	}
	return cmp.Compare(a, b), true
}
