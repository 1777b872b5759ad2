package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Day prints the records of a single date.
func (pp *PrettyPrint) Day(records ...*record.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, r := range records {
		if pp.ShowID {
			id := r.ID
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		_, _ = t.Printf("%s  %s", r.Kind.Symbol(), title(r))
		if r.HasMood() {
			_, _ = f.Printf("  %s", strings.Repeat("♥", r.Mood))
		}
		if len(r.Tags) > 0 {
			_, _ = f.Printf("  #%s", strings.Join(r.Tags, " #"))
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Grouped prints records bucketed by date, most recent day first.
func (pp *PrettyPrint) Grouped(records ...*record.Record) {
	groups := query.GroupByDate(records)
	for _, date := range query.SortedDates(groups) {
		day := groups[date]
		pp.TitleWithCount(date, len(day))
		pp.Day(day...)
	}
}

func title(r *record.Record) string {
	if r.Title != "" {
		return r.Title
	}
	if first := firstLine(r.Content); first != "" {
		return first
	}
	return "(untitled)"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
