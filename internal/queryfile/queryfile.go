// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package queryfile loads a query snapshot (search term, filters, criteria,
// sort and paging) from a YAML or JSON document and validates it before it
// reaches the engine.
package queryfile

import (
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trial-engine/internal/field"
	"github.com/pdiddy/trial-engine/internal/match"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Read loads a query document from disk. JSON documents are accepted as YAML.
func Read(path string) (types.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Query{}, fmt.Errorf("reading query file: %w", err)
	}
	var q types.Query
	if err := yaml.Unmarshal(data, &q); err != nil {
		return types.Query{}, fmt.Errorf("parsing query file: %w", err)
	}
	return q, nil
}

// Validate reports every unknown field, operator, category and sort
// direction in q. The engine itself lets unknown operators match, so callers
// that want them rejected check here first.
func Validate(q types.Query) error {
	var errs []error
	for category := range q.Filters {
		if _, ok := match.LookupCategory(category); !ok {
			errs = append(errs, fmt.Errorf("unknown filter category %q", category))
		}
	}
	for i, c := range q.Criteria {
		if _, ok := field.Lookup(c.Field); !ok {
			errs = append(errs, fmt.Errorf("criterion %d: unknown field %q", i+1, c.Field))
		}
		if !c.Operator.IsValid() {
			errs = append(errs, fmt.Errorf("criterion %d: unknown operator %q", i+1, c.Operator))
		}
	}
	if q.Sort.IsActive() {
		if _, ok := field.Lookup(q.Sort.Field); !ok {
			errs = append(errs, fmt.Errorf("unknown sort field %q", q.Sort.Field))
		}
	}
	switch q.Sort.Direction {
	case "", types.SortAsc, types.SortDesc:
	default:
		errs = append(errs, fmt.Errorf("unknown sort direction %q: use asc or desc", q.Sort.Direction))
	}
	if q.Page < 0 || q.PageSize < 0 {
		errs = append(errs, fmt.Errorf("page and page_size must not be negative"))
	}
	return errors.Join(errs...)
}
