package record

import "time"

const layoutISO = "2006-01-02"

// FormatDate renders a time as the calendar date string used throughout the
// app (zero-padded ISO, so lexicographic order is chronological order).
func FormatDate(t time.Time) string {
	return t.Format(layoutISO)
}

// ParseDate validates a calendar date string.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(layoutISO, v)
}

func New(kind Kind, date, title, content string) *Record {
	return &Record{
		Kind:    kind,
		Date:    date,
		Title:   title,
		Content: content,
	}
}

// Record is a single journal entry. ID and Created are assigned by the store
// when the record is first persisted and never change afterwards. Date is
// user-editable and need not equal the creation date. Mood is zero unless
// the record is an Emotion entry with a rating, and Tags are currently only
// populated through CSV import.
type Record struct {
	ID      string    `json:"id,omitempty"`
	Date    string    `json:"date"`
	Kind    Kind      `json:"kind"`
	Title   string    `json:"title,omitempty"`
	Content string    `json:"content,omitempty"`
	Mood    int       `json:"mood,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
	Created Timestamp `json:"created,omitempty"`
}

// HasMood reports whether the record carries a valid mood rating.
func (r *Record) HasMood() bool {
	return r.Kind == Emotion && r.Mood >= 1 && r.Mood <= 5
}

// InMonth reports whether the record's date falls in the given month prefix
// ("YYYY-MM").
func (r *Record) InMonth(prefix string) bool {
	return len(r.Date) >= len(prefix) && r.Date[:len(prefix)] == prefix
}

func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	cp := *r
	if r.Tags != nil {
		cp.Tags = append([]string(nil), r.Tags...)
	}
	return &cp
}

func (r *Record) String() string {
	if r.Title != "" {
		return r.Kind.Symbol() + "  " + r.Title
	}
	return r.Kind.Symbol() + "  " + r.Kind.Info().Noun
}
