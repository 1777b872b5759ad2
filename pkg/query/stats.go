package query

import (
	"fmt"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// MonthStats aggregates one calendar month of records.
type MonthStats struct {
	// MoodCounts is a five bucket histogram over Emotion records that carry
	// a mood; index 0 counts mood 1.
	MoodCounts [5]int

	// Dominant is the mood (1..5) of the first bucket attaining the maximum
	// count. Ties break toward the lowest bucket, which matches the
	// historical stats exactly. Only meaningful when Total > 0.
	Dominant int

	// Total is the number of mood-bearing Emotion records in the month.
	Total int

	// KindCounts counts every record in the month by kind, independent of
	// kind-specific fields.
	KindCounts map[record.Kind]int
}

// MonthPrefix renders the "YYYY-MM" date prefix used to select a month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// Monthly computes stats for the records whose date falls in the given
// month, selected by string prefix.
func Monthly(records []*record.Record, year int, month time.Month) MonthStats {
	prefix := MonthPrefix(year, month)

	stats := MonthStats{KindCounts: make(map[record.Kind]int, len(record.Kinds()))}
	for _, k := range record.Kinds() {
		stats.KindCounts[k] = 0
	}

	for _, r := range records {
		if !r.InMonth(prefix) {
			continue
		}
		stats.KindCounts[r.Kind]++
		if r.HasMood() {
			stats.MoodCounts[r.Mood-1]++
			stats.Total++
		}
	}

	max := stats.MoodCounts[0]
	idx := 0
	for i, c := range stats.MoodCounts {
		if c > max {
			max = c
			idx = i
		}
	}
	stats.Dominant = idx + 1

	return stats
}
