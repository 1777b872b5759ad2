// Package backup encodes a record collection to the CSV backup format and
// decodes it back. The dialect matches the app's historical exports exactly:
// UTF-8 with a leading byte-order mark, `\n` line ends, a fixed seven column
// header, Title and Content always double-quoted with `"` escaped by
// doubling, and tags joined by a bare `,`. encoding/csv cannot reproduce
// this dialect (unconditional quoting, raw commas inside the tag field), so
// the codec is written by hand.
package backup

import (
	"strconv"
	"strings"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

const bom = "\uFEFF"

var header = []string{"ID", "Date", "Type", "Title", "Content", "Mood", "Tags"}

// Export renders the collection as one CSV document, one row per record in
// input order. Deterministic for a fixed input order.
func Export(records []*record.Record) string {
	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(strings.Join(header, ","))
	for _, r := range records {
		b.WriteString("\n")
		writeRow(&b, r)
	}
	return b.String()
}

func writeRow(b *strings.Builder, r *record.Record) {
	mood := ""
	if r.Mood > 0 {
		mood = strconv.Itoa(r.Mood)
	}
	fields := []string{
		r.ID,
		r.Date,
		r.Kind.Label(),
		quote(r.Title),
		quote(r.Content),
		mood,
		strings.Join(r.Tags, ","),
	}
	b.WriteString(strings.Join(fields, ","))
}

// quote wraps a field in double quotes unconditionally, doubling any quote
// characters inside it.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
