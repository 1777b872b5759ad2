// Package query derives filtered views and monthly statistics from an
// in-memory record snapshot. Everything here is a pure function: inputs are
// never mutated and results are built fresh on every call.
package query

import (
	"strings"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// Filter selects a subsequence of a snapshot. All three conditions compose
// with AND. An empty Search matches everything; Kind record.Any matches
// every kind; Date applies only when non-empty (a calendar day selection).
type Filter struct {
	Search string
	Kind   record.Kind
	Date   string
}

// All matches every record.
var All = Filter{Kind: record.Any}

func (f Filter) Matches(r *record.Record) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Content), needle) {
			return false
		}
	}
	if f.Kind != record.Any && f.Kind != r.Kind {
		return false
	}
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	return true
}

// Apply returns the records matching f, preserving input order.
func Apply(records []*record.Record, f Filter) []*record.Record {
	out := make([]*record.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
