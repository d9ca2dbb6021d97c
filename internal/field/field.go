// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package field maps logical field names to values extracted from a Trial.
//
// Every field is one Descriptor in a table built once at init. A descriptor
// names the field, its alternate spellings, how to extract its display
// string (search mode), how it sorts, and which matching policy the
// predicate evaluator applies to it. Adding a field is a table entry.
package field

import (
	"sort"
	"strings"

	"github.com/pdiddy/trial-engine/internal/normalize"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Kind is the sort type of a field.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindDate
	KindYesNo
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindYesNo:
		return "yes/no"
	}
	return "text"
}

// Policy selects the predicate rules applied to a field.
type Policy int

const (
	// PolicyText uses substring, equality, prefix/suffix and numeric rules.
	PolicyText Policy = iota
	// PolicyDrug resolves contains/is/is_not through the alias table.
	PolicyDrug
	// PolicyDate compares parsed dates, day-truncated for equality.
	PolicyDate
	// PolicyCategorical compares comma tokens exactly.
	PolicyCategorical
	// PolicyExact requires whole-value equality for every operator.
	PolicyExact
	// PolicyIdentifier treats "is" as "contains".
	PolicyIdentifier
)

func (p Policy) String() string {
	switch p {
	case PolicyDrug:
		return "drug"
	case PolicyDate:
		return "date"
	case PolicyCategorical:
		return "categorical"
	case PolicyExact:
		return "exact"
	case PolicyIdentifier:
		return "identifier"
	}
	return "text"
}

// SortValue is the typed sort key of a field: a number (including date
// timestamps) or a string.
type SortValue struct {
	Text    string
	Num     float64
	Numeric bool
}

// Number returns a numeric sort key.
func Number(f float64) SortValue { return SortValue{Num: f, Numeric: true} }

// String returns a string sort key.
func String(s string) SortValue { return SortValue{Text: s} }

// Stringify renders the key as a string for mixed-type comparison.
func (v SortValue) Stringify() string {
	if v.Numeric {
		return normalize.FormatNumber(v.Num)
	}
	return v.Text
}

// Descriptor describes one logical field.
type Descriptor struct {
	Name    string
	Aliases []string
	Kind    Kind
	Policy  Policy

	search func(*types.Trial) string
	sort   func(*types.Trial) SortValue
}

// Search returns the display string of the field; absent data yields "".
func (d *Descriptor) Search(t *types.Trial) string {
	return d.search(t)
}

// Sort returns the sort key of the field. Numbers that do not parse sort as
// 0 and dates that do not parse sort as timestamp 0.
func (d *Descriptor) Sort(t *types.Trial) SortValue {
	if d.sort != nil {
		return d.sort(t)
	}
	raw := d.search(t)
	switch d.Kind {
	case KindNumber:
		return Number(normalize.NumberOrZero(raw))
	case KindDate:
		return Number(normalize.Timestamp(raw))
	}
	return String(raw)
}

var (
	descriptors []*Descriptor
	byName      map[string]*Descriptor
)

func init() {
	descriptors = table()
	byName = make(map[string]*Descriptor, len(descriptors)*3)
	for _, d := range descriptors {
		if d.Policy == PolicyText && strings.Contains(d.Name, "date") {
			d.Policy = PolicyDate
		}
		names := append([]string{d.Name, camelCase(d.Name)}, d.Aliases...)
		for _, alias := range d.Aliases {
			names = append(names, camelCase(alias))
		}
		for _, n := range names {
			byName[n] = d
		}
	}
}

// Lookup resolves a snake_case or camelCase field name to its descriptor.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := byName[strings.TrimSpace(name)]
	return d, ok
}

// All returns every descriptor in table order.
func All() []*Descriptor {
	return append([]*Descriptor(nil), descriptors...)
}

// Names returns the canonical field names, sorted.
func Names() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Name
	}
	sort.Strings(out)
	return out
}

// SearchValue extracts the display string of the named field. Unknown
// fields yield "".
func SearchValue(t *types.Trial, name string) string {
	d, ok := Lookup(name)
	if !ok {
		return ""
	}
	return d.Search(t)
}

// SortKey extracts the sort key of the named field. It reports false for
// unknown fields.
func SortKey(t *types.Trial, name string) (SortValue, bool) {
	d, ok := Lookup(name)
	if !ok {
		return SortValue{}, false
	}
	return d.Sort(t), true
}

// PolicyFor returns the predicate policy of the named field. Unknown names
// containing "date" are treated as dates; anything else as text.
func PolicyFor(name string) Policy {
	if d, ok := Lookup(name); ok {
		return d.Policy
	}
	if strings.Contains(strings.ToLower(name), "date") {
		return PolicyDate
	}
	return PolicyText
}

// camelCase converts "age_from" to "ageFrom".
func camelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
