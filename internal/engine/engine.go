// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine runs the query pipeline over a trial collection:
// version resolution, matching, sorting and pagination.
//
// Every Run is a pure pass over its inputs. The query snapshot is owned by
// the caller (see State) and the engine keeps nothing between passes.
package engine

import (
	"github.com/pdiddy/trial-engine/internal/alias"
	"github.com/pdiddy/trial-engine/internal/match"
	"github.com/pdiddy/trial-engine/internal/paginate"
	"github.com/pdiddy/trial-engine/internal/sorter"
	"github.com/pdiddy/trial-engine/internal/version"
	"github.com/pdiddy/trial-engine/pkg/types"
)

// Engine evaluates queries against trial collections.
type Engine struct {
	matcher  *match.Matcher
	pageSize int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPageSize sets the page size used when a query leaves it unset.
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// New returns an Engine that resolves drug synonyms through aliases.
func New(aliases alias.Table, opts ...Option) *Engine {
	e := &Engine{
		matcher:  match.New(aliases),
		pageSize: types.DefaultPageSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Result is one page of matched trials plus the counts a pager needs.
type Result struct {
	Trials       []types.Trial `json:"trials" yaml:"trials"`
	Total        int           `json:"total" yaml:"total"`
	TotalMatched int           `json:"total_matched" yaml:"total_matched"`
	Page         int           `json:"page" yaml:"page"`
	PageSize     int           `json:"page_size" yaml:"page_size"`
	TotalPages   int           `json:"total_pages" yaml:"total_pages"`
}

// Run resolves versions, keeps the trials matching q, orders them by
// q.Sort and returns the requested page. The input slice is not modified.
func (e *Engine) Run(trials []types.Trial, q types.Query) Result {
	latest := version.Latest(trials)
	ordered := sorter.Sort(e.Filter(latest, q), q.Sort)

	size := q.PageSize
	if size <= 0 {
		size = e.pageSize
	}
	page := max(q.Page, 1)

	return Result{
		Trials:       paginate.Slice(ordered, size, page),
		Total:        len(latest),
		TotalMatched: len(ordered),
		Page:         page,
		PageSize:     size,
		TotalPages:   paginate.TotalPages(len(ordered), size),
	}
}

// Filter returns the trials that match q, in input order.
func (e *Engine) Filter(trials []types.Trial, q types.Query) []types.Trial {
	var out []types.Trial
	for i := range trials {
		if e.matcher.Match(&trials[i], q) {
			out = append(out, trials[i])
		}
	}
	return out
}
