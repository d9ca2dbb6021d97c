// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match composes free-text search, category filters and advanced
// search criteria into one verdict per trial.
package match

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pdiddy/trial-engine/internal/alias"
	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/normalize"
	"github.com/pdiddy/trial-engine/internal/predicate"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Matcher evaluates trials against a query snapshot. It holds no state
// beyond the read-only alias table.
type Matcher struct {
	aliases alias.Table
	eval    *predicate.Evaluator
}

// New returns a Matcher that resolves drug synonyms through aliases.
func New(aliases alias.Table) *Matcher {
	return &Matcher{aliases: aliases, eval: predicate.New(aliases)}
}

// Match reports whether t satisfies the free-text term, every active
// category filter, and every advanced criterion.
func (m *Matcher) Match(t *types.Trial, q types.Query) bool {
	return m.MatchesSearch(t, q.Search) &&
		m.MatchesFilters(t, q.Filters) &&
		m.MatchesCriteria(t, q.Criteria)
}

// MatchesSearch reports whether any string, number or boolean leaf of t
// contains term after normalization. An empty term matches everything.
func (m *Matcher) MatchesSearch(t *types.Trial, term string) bool {
	want := normalize.String(term)
	if want == "" {
		return true
	}
	return walk(reflect.ValueOf(t), func(leaf string) bool {
		return strings.Contains(normalize.String(leaf), want)
	})
}

// MatchesFilters ANDs the non-empty categories of filters; within a category
// any accepted value suffices. Unknown categories place no constraint.
func (m *Matcher) MatchesFilters(t *types.Trial, filters types.FilterState) bool {
	for name, accepted := range filters {
		if len(accepted) == 0 {
			continue
		}
		c, ok := LookupCategory(name)
		if !ok {
			continue
		}
		if !m.matchesCategory(t, c, accepted) {
			return false
		}
	}
	return true
}

func (m *Matcher) matchesCategory(t *types.Trial, c Category, accepted []string) bool {
	value := field.SearchValue(t, c.Field)
	text := normalize.String(value)
	for _, want := range accepted {
		switch c.Rule {
		case RuleExact:
			if text == normalize.String(want) {
				return true
			}
		case RuleDrug:
			if m.aliases.MatchDrug(value, want) {
				return true
			}
		default:
			if w := normalize.String(want); w != "" && strings.Contains(text, w) {
				return true
			}
		}
	}
	return false
}

// MatchesCriteria ANDs every complete criterion. Criteria missing a field or
// a value are incomplete rows and are skipped.
func (m *Matcher) MatchesCriteria(t *types.Trial, criteria []types.SearchCriterion) bool {
	for _, c := range criteria {
		if strings.TrimSpace(c.Field) == "" || strings.TrimSpace(c.Value) == "" {
			continue
		}
		value := field.SearchValue(t, c.Field)
		if !m.eval.Evaluate(value, c.Operator, c.Value, c.Field) {
			return false
		}
	}
	return true
}

// walk visits every scalar leaf of v depth-first and stops at the first leaf
// for which visit returns true.
func walk(v reflect.Value, visit func(string) bool) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return walk(v.Elem(), visit)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() && walk(v.Field(i), visit) {
				return true
			}
		}
		return false
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if walk(v.Index(i), visit) {
				return true
			}
		}
		return false
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if walk(iter.Value(), visit) {
				return true
			}
		}
		return false
	case reflect.String:
		return visit(v.String())
	}

	// Remaining kinds are scalars. Types such as YesNoUnknown render
	// through their String method rather than their numeric encoding.
	var leaf string
	if s, ok := v.Interface().(fmt.Stringer); ok {
		leaf = s.String()
	} else {
		leaf = normalize.Stringify(v.Interface())
	}
	return leaf != "" && visit(leaf)
}
