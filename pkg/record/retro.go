package record

import "strings"

const (
	keepHeading    = "## Keep"
	problemHeading = "## Problem"
	tryHeading     = "## Try"
)

// Retro is the editing view of a Retrospective record's content: three
// labeled sections composed into (and split back out of) the single content
// string. The content text stays the source of truth; this type is derived.
type Retro struct {
	Keep    string
	Problem string
	Try     string
}

// Content renders the three sections as one text, sections separated by a
// blank line.
func (r Retro) Content() string {
	return keepHeading + "\n" + strings.TrimSpace(r.Keep) +
		"\n\n" + problemHeading + "\n" + strings.TrimSpace(r.Problem) +
		"\n\n" + tryHeading + "\n" + strings.TrimSpace(r.Try)
}

// ParseRetro recovers the section view from composed content. Sections that
// are missing or unlabeled stay empty.
func ParseRetro(content string) Retro {
	var r Retro
	for _, sec := range strings.Split(content, "\n\n") {
		switch {
		case strings.HasPrefix(sec, keepHeading):
			r.Keep = strings.TrimPrefix(sec, keepHeading+"\n")
		case strings.HasPrefix(sec, problemHeading):
			r.Problem = strings.TrimPrefix(sec, problemHeading+"\n")
		case strings.HasPrefix(sec, tryHeading):
			r.Try = strings.TrimPrefix(sec, tryHeading+"\n")
		}
	}
	return r
}

// Empty reports whether no section has any text.
func (r Retro) Empty() bool {
	return r.Keep == "" && r.Problem == "" && r.Try == ""
}
