package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
)

var moodNames = []string{"angry", "sad", "neutral", "happy", "loved"}

var moodColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgBlue),
	color.New(color.FgWhite),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
}

// Stats prints the month's mood histogram and per-kind counts.
func (pp *PrettyPrint) Stats(year int, month time.Month, stats query.MonthStats) {
	pp.Title(fmt.Sprintf("%s %d", month, year))

	f := color.New(color.Faint)
	if stats.Total > 0 {
		_, _ = fmt.Printf("dominant mood: ")
		_, _ = moodColors[stats.Dominant-1].Printf("%s", moodNames[stats.Dominant-1])
		_, _ = f.Printf("  (%d rated entries)\n\n", stats.Total)
	} else {
		_, _ = f.Println("no rated entries this month")
		_, _ = fmt.Println("")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, count := range stats.MoodCounts {
		tbl.AddRow(moodNames[i], bar(count, stats.Total), count)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Println("")

	habits := uitable.New()
	habits.Separator = "  "
	for _, k := range record.Kinds() {
		habits.AddRow(k.Symbol(), k.Info().Noun, stats.KindCounts[k])
	}
	_, _ = fmt.Fprintln(color.Output, habits)
}

// bar renders a count as a proportional block bar, like the stats view's
// histogram rows.
func bar(count, total int) string {
	const scale = 20
	if total == 0 || count == 0 {
		return ""
	}
	n := count * scale / total
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
