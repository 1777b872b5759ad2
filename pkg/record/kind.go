package record

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies which of the four journal entry variants a record is.
// It is fixed at creation; edits never change it.
type Kind int

const (
	MorningPage Kind = iota
	BrainDump
	Emotion
	Retrospective

	// Any is not a storable kind; it matches every kind when filtering.
	Any
)

// Info describes a kind: its wire name, the label written to CSV backups,
// a display symbol, and the nouns the CLI accepts for it.
type Info struct {
	Name    string
	Label   string
	Symbol  string
	Noun    string
	Aliases []string
}

func Kinds() []Kind {
	return []Kind{MorningPage, BrainDump, Emotion, Retrospective}
}

func DefaultKinds() []Info {
	return []Info{
		{
			Name:    "MorningPage",
			Label:   "모닝 페이지",
			Symbol:  "☀",
			Noun:    "morning",
			Aliases: []string{"morning", "morningpage", "page", "pages"},
		}, {
			Name:    "BrainDump",
			Label:   "브레인 덤프",
			Symbol:  "✍",
			Noun:    "dump",
			Aliases: []string{"dump", "braindump", "brain"},
		}, {
			Name:    "Emotion",
			Label:   "감정 일지",
			Symbol:  "♥",
			Noun:    "emotion",
			Aliases: []string{"emotion", "emotions", "mood", "feeling"},
		}, {
			Name:    "Retrospective",
			Label:   "회고",
			Symbol:  "↻",
			Noun:    "retro",
			Aliases: []string{"retro", "retrospective"},
		},
	}
}

func (k Kind) Info() Info {
	kinds := DefaultKinds()
	if int(k) < 0 || int(k) >= len(kinds) {
		return Info{Name: "Any", Noun: "any"}
	}
	return kinds[k]
}

func (k Kind) String() string {
	return k.Info().Name
}

// Label is the localized type label used in CSV backups.
func (k Kind) Label() string {
	return k.Info().Label
}

func (k Kind) Symbol() string {
	return k.Info().Symbol
}

// KindForAlias resolves a CLI noun or alias to a kind.
func KindForAlias(alias string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for i, info := range DefaultKinds() {
		for _, a := range info.Aliases {
			if a == needle {
				return Kind(i), nil
			}
		}
	}
	return BrainDump, fmt.Errorf("record: unknown kind %q", alias)
}

// labelRule maps a label fragment back to a kind on import.
type labelRule struct {
	substring string
	kind      Kind
}

// labelRules are evaluated in order, first match wins. The mapping is
// deliberately lossy so partial or garbled labels still import.
var labelRules = []labelRule{
	{"모닝", MorningPage},
	{"감정", Emotion},
	{"회고", Retrospective},
}

// KindForLabel recovers a kind from a CSV type label. Unrecognized labels
// fall back to BrainDump rather than failing the row.
func KindForLabel(label string) Kind {
	for _, rule := range labelRules {
		if strings.Contains(label, rule.substring) {
			return rule.kind
		}
	}
	return BrainDump
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, info := range DefaultKinds() {
		if info.Name == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("record: unknown kind %q", name)
}
