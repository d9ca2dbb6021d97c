// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sorter orders matched trials by a single sort key.
package sorter

import (
	"cmp"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Sort returns a new slice ordered by spec. The sort is stable: trials with
// equal keys keep their input order. An inactive spec or an unknown field
// returns the input order unchanged.
func Sort(trials []types.Trial, spec types.SortSpec) []types.Trial {
	out := append([]types.Trial(nil), trials...)
	if !spec.IsActive() {
		return out
	}
	d, ok := field.Lookup(spec.Field)
	if !ok {
		return out
	}

	keys := make([]field.SortValue, len(out))
	for i := range out {
		keys[i] = d.Sort(&out[i])
	}

	c := NewComparator(d.Kind)
	sign := 1
	if spec.Direction == types.SortDesc {
		sign = -1
	}

	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return sign*c.Compare(keys[idx[a]], keys[idx[b]]) < 0
	})

	sorted := make([]types.Trial, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// Comparator compares sort keys of one field kind. It is not safe for
// concurrent use.
type Comparator struct {
	kind     field.Kind
	collator *collate.Collator
}

// NewComparator returns a Comparator for keys of the given kind.
func NewComparator(kind field.Kind) *Comparator {
	return &Comparator{
		kind:     kind,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// Compare returns a negative number when a orders before b, zero when they
// are equal, and a positive number otherwise.
//
// Yes/no fields compare by rank (Yes, No, then anything else). Two strings
// compare by case-insensitive collation, two numbers numerically, and a
// string against a number compares both as strings.
func (c *Comparator) Compare(a, b field.SortValue) int {
	if c.kind == field.KindYesNo {
		return cmp.Compare(types.ParseYesNo(a.Stringify()).Rank(), types.ParseYesNo(b.Stringify()).Rank())
	}
	switch {
	case a.Numeric && b.Numeric:
		return cmp.Compare(a.Num, b.Num)
	case !a.Numeric && !b.Numeric:
		return c.collator.CompareString(a.Text, b.Text)
	}
	return c.collator.CompareString(a.Stringify(), b.Stringify())
}

// CompareStrings orders two display strings by case-insensitive collation.
func (c *Comparator) CompareStrings(a, b string) int {
	return c.collator.CompareString(a, b)
}
