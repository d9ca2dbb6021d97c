// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/trial-engine/internal/engine"
	"github.com/pdiddy/trial-engine/internal/logger"
	"github.com/pdiddy/trial-engine/internal/queryfile"
	"github.com/pdiddy/trial-engine/pkg/types"
)

var browseCmd = &cobra.Command{
	Use:   "browse [search terms...]",
	Short: "Search, filter, sort and page through stored trials",
	Long: `Browse evaluates one query against the stored trial collection. Only the
latest version of each trial is considered.

Positional arguments form a free-text search matched against every value of
a trial. --filter narrows one category to a set of accepted values (repeat
the flag to accept several values or constrain several categories).
--where adds an advanced criterion as field:operator:value. --sort orders
by one field, ascending unless suffixed with :desc.

A query document written in YAML or JSON can be supplied with --query-file;
flags are applied on top of it.`,
	Example: `  trial-engine browse --filter trialPhases="Phase II" --sort start_date_estimated:desc
  trial-engine browse pembrolizumab --where "age_from:greater_than_equal:18" --page 2
  trial-engine browse --query-file saved.yaml --json`,
	RunE: runBrowse,
}

func init() {
	addQueryFlags(browseCmd.Flags())
	browseCmd.Flags().Bool("strict", false, "reject unknown fields, operators and categories")
	browseCmd.Flags().Bool("json", false, "output the result page as JSON")

	viper.BindPFlag("page_size", browseCmd.Flags().Lookup("page-size"))

	rootCmd.AddCommand(browseCmd)
}

// addQueryFlags registers the flags queryFromFlags reads.
func addQueryFlags(flags *pflag.FlagSet) {
	flags.StringArray("filter", nil, "category=value filter (repeatable)")
	flags.StringArray("where", nil, "field:operator:value criterion (repeatable)")
	flags.String("sort", "", "sort field, optionally suffixed with :asc or :desc")
	flags.Int("page", 1, "1-based page number")
	flags.Int("page-size", 0, "trials per page (default 12)")
	flags.String("query-file", "", "YAML or JSON query document")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	q, err := queryFromFlags(cmd, args)
	if err != nil {
		return err
	}
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		if err := queryfile.Validate(q); err != nil {
			return err
		}
	}

	ctx := context.Background()
	trials, err := loadTrials(ctx)
	if err != nil {
		return err
	}
	aliases, err := loadAliases()
	if err != nil {
		return err
	}

	result := engine.New(aliases, engine.WithPageSize(cfg.PageSize)).Run(trials, q)
	logger.WithFields(logrus.Fields{
		"stored":  len(trials),
		"latest":  result.Total,
		"matched": result.TotalMatched,
		"page":    result.Page,
	}).Debug("query evaluated")

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return FormatJSON(result, os.Stdout)
	}
	FormatTable(result, os.Stdout)
	return nil
}

// queryFromFlags builds the query snapshot: the query file first, then the
// search terms, filters, criteria, sort and paging given on the command line.
func queryFromFlags(cmd *cobra.Command, args []string) (types.Query, error) {
	var q types.Query
	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		loaded, err := queryfile.Read(path)
		if err != nil {
			return q, err
		}
		q = loaded
	}
	if q.Filters == nil {
		q.Filters = types.FilterState{}
	}

	if len(args) > 0 {
		q.Search = strings.Join(args, " ")
	}

	filters, _ := cmd.Flags().GetStringArray("filter")
	for _, f := range filters {
		category, value, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(category) == "" {
			return q, fmt.Errorf("invalid --filter %q: use category=value", f)
		}
		category = strings.TrimSpace(category)
		q.Filters[category] = append(q.Filters[category], strings.TrimSpace(value))
	}

	wheres, _ := cmd.Flags().GetStringArray("where")
	for _, w := range wheres {
		parts := strings.SplitN(w, ":", 3)
		if len(parts) != 3 {
			return q, fmt.Errorf("invalid --where %q: use field:operator:value", w)
		}
		q.Criteria = append(q.Criteria, types.SearchCriterion{
			Field:    strings.TrimSpace(parts[0]),
			Operator: types.Operator(strings.TrimSpace(parts[1])),
			Value:    parts[2],
		})
	}

	if sortFlag, _ := cmd.Flags().GetString("sort"); sortFlag != "" {
		spec, err := parseSort(sortFlag)
		if err != nil {
			return q, err
		}
		q.Sort = spec
	}

	if cmd.Flags().Changed("page") || q.Page == 0 {
		q.Page, _ = cmd.Flags().GetInt("page")
	}
	if size, _ := cmd.Flags().GetInt("page-size"); size > 0 {
		q.PageSize = size
	}
	return q, nil
}

// parseSort reads "field", "field:asc" or "field:desc".
func parseSort(s string) (types.SortSpec, error) {
	name, dir, found := strings.Cut(s, ":")
	spec := types.SortSpec{Field: strings.TrimSpace(name), Direction: types.SortAsc}
	if found {
		switch types.SortDirection(strings.ToLower(strings.TrimSpace(dir))) {
		case types.SortAsc:
		case types.SortDesc:
			spec.Direction = types.SortDesc
		default:
			return types.SortSpec{}, fmt.Errorf("invalid sort direction %q: use asc or desc", dir)
		}
	}
	return spec, nil
}

// FormatTable writes a result page as a human-readable table to w.
func FormatTable(result engine.Result, w io.Writer) {
	if len(result.Trials) == 0 {
		fmt.Fprintf(w, "No trials found (%d matched).\n", result.TotalMatched)
		return
	}

	fmt.Fprintf(w, "%-4s  %-14s  %-50s  %-12s  %-12s  %s\n",
		"#", "Trial ID", "Title", "Phase", "Status", "Sponsor")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	offset := (result.Page - 1) * result.PageSize
	for i, t := range result.Trials {
		fmt.Fprintf(w, "%-4d  %-14s  %-50s  %-12s  %-12s  %s\n",
			offset+i+1,
			truncate(t.TrialID, 14),
			truncate(t.Overview.Title, 50),
			truncate(t.Overview.TrialPhase, 12),
			truncate(t.Overview.Status, 12),
			truncate(t.Overview.SponsorCollaborators.String(), 30))
	}

	fmt.Fprintf(w, "\n%d matched of %d, page %d/%d\n",
		result.TotalMatched, result.Total, result.Page, result.TotalPages)
}

// FormatJSON writes a result page as indented JSON to w.
func FormatJSON(result engine.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
