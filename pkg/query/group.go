package query

import (
	"sort"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// GroupByDate partitions records into per-date groups. Within a group,
// records keep their relative order of first encounter.
func GroupByDate(records []*record.Record) map[string][]*record.Record {
	groups := make(map[string][]*record.Record)
	for _, r := range records {
		groups[r.Date] = append(groups[r.Date], r)
	}
	return groups
}

// SortedDates returns the group keys most-recent first. Dates are
// zero-padded ISO strings, so reverse lexicographic order is reverse
// chronological order.
func SortedDates(groups map[string][]*record.Record) []string {
	dates := make([]string, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}
