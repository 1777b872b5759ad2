package backup

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// ErrNothingToImport signals that a document produced no usable rows. It is
// a distinct outcome, not a parse failure: a well-formed but empty backup
// and a fully garbled file both land here.
var ErrNothingToImport = errors.New("backup: nothing to import")

// minFields is the number of tokens a row must produce to be accepted.
const minFields = 5

// Import parses a CSV backup document into fresh records. The header line is
// discarded without validation, blank lines are ignored, and rows with fewer
// than five fields are silently skipped. Imported records never carry an ID
// or creation time; the store assigns both, so re-importing an export
// duplicates records rather than updating them.
func Import(text string) ([]*record.Record, error) {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 {
		lines = lines[1:] // header (and the BOM riding on it)
	}

	records := make([]*record.Record, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) < minFields {
			continue
		}

		r := &record.Record{
			Date:    clean(fields[1]),
			Kind:    record.KindForLabel(fields[2]),
			Title:   clean(fields[3]),
			Content: clean(fields[4]),
		}
		if len(fields) > 5 && fields[5] != "" {
			if mood, err := strconv.Atoi(clean(fields[5])); err == nil {
				r.Mood = mood
			}
		}
		if len(fields) > 6 && fields[6] != "" {
			r.Tags = strings.Split(clean(fields[6]), ",")
		}
		records = append(records, r)
	}

	if len(records) == 0 {
		return nil, ErrNothingToImport
	}
	return records, nil
}

// splitFields tokenizes one row. A quote character toggles the in-quotes
// flag and stays in the token; a comma separates fields only outside quotes.
// Doubled-quote escapes are not interpreted here, clean handles them.
func splitFields(line string) []string {
	fields := make([]string, 0, len(header))
	var cur strings.Builder
	inQuote := false
	for _, c := range line {
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteRune(c)
		case c == ',' && !inQuote:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	return append(fields, cur.String())
}

// clean strips one literal quote from each end of a value and unescapes
// doubled quotes.
func clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}
