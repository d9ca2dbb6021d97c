// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"slices"

	"github.com/pdiddy/trial-engine/pkg/types"
)

// State is the caller-owned query snapshot behind a browsing session. Any
// change to the search term, filters, criteria, sort or page size resets the
// page to 1. Clear resets filters and sort together. The zero value is an
// empty State with the default page size.
type State struct {
	search   string
	filters  types.FilterState
	criteria []types.SearchCriterion
	sort     types.SortSpec
	page     int
	pageSize int
}

// NewState returns an empty State with the given page size.
func NewState(pageSize int) *State {
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	return &State{filters: types.FilterState{}, page: 1, pageSize: pageSize}
}

// Query returns a copy of the current snapshot for one evaluation pass.
func (s *State) Query() types.Query {
	return types.Query{
		Search:   s.search,
		Filters:  s.filters.Clone(),
		Criteria: slices.Clone(s.criteria),
		Sort:     s.sort,
		Page:     s.Page(),
		PageSize: s.PageSize(),
	}
}

// SetSearch replaces the free-text term.
func (s *State) SetSearch(term string) {
	s.search = term
	s.page = 1
}

// SetFilter replaces the accepted values of one category. An empty values
// slice removes the constraint.
func (s *State) SetFilter(category string, values []string) {
	if len(values) == 0 {
		delete(s.filters, category)
	} else {
		if s.filters == nil {
			s.filters = types.FilterState{}
		}
		s.filters[category] = slices.Clone(values)
	}
	s.page = 1
}

// ToggleFilterValue adds value to a category, or removes it if present.
func (s *State) ToggleFilterValue(category, value string) {
	values := s.filters[category]
	if i := slices.Index(values, value); i >= 0 {
		values = slices.Delete(slices.Clone(values), i, i+1)
	} else {
		values = append(slices.Clone(values), value)
	}
	s.SetFilter(category, values)
}

// SetCriteria replaces the advanced-search criteria.
func (s *State) SetCriteria(criteria []types.SearchCriterion) {
	s.criteria = slices.Clone(criteria)
	s.page = 1
}

// ToggleSort cycles field through ascending, descending and unsorted.
func (s *State) ToggleSort(field string) {
	s.sort = s.sort.Toggle(field)
	s.page = 1
}

// SetSort replaces the sort spec.
func (s *State) SetSort(spec types.SortSpec) {
	s.sort = spec
	s.page = 1
}

// SetPageSize changes the page size.
func (s *State) SetPageSize(size int) {
	if size > 0 {
		s.pageSize = size
	}
	s.page = 1
}

// SetPage moves to a 1-based page without touching anything else.
func (s *State) SetPage(page int) {
	s.page = max(page, 1)
}

// Page returns the current 1-based page.
func (s *State) Page() int { return max(s.page, 1) }

// PageSize returns the current page size.
func (s *State) PageSize() int {
	if s.pageSize <= 0 {
		return types.DefaultPageSize
	}
	return s.pageSize
}

// Sort returns the current sort spec.
func (s *State) Sort() types.SortSpec { return s.sort }

// Clear resets search, filters, criteria and sort in one step.
func (s *State) Clear() {
	s.search = ""
	s.filters = types.FilterState{}
	s.criteria = nil
	s.sort = types.SortSpec{}
	s.page = 1
}
