package record

import (
	"encoding/json"
	"testing"
)

func TestKindForAlias(t *testing.T) {
	cases := map[string]Kind{
		"morning": MorningPage,
		"PAGES":   MorningPage,
		"dump":    BrainDump,
		"brain":   BrainDump,
		" mood ":  Emotion,
		"retro":   Retrospective,
	}
	for alias, want := range cases {
		got, err := KindForAlias(alias)
		if err != nil {
			t.Fatalf("alias %q: unexpected error: %v", alias, err)
		}
		if got != want {
			t.Fatalf("alias %q: expected %v, got %v", alias, want, got)
		}
	}
}

func TestKindForAliasUnknown(t *testing.T) {
	if _, err := KindForAlias("grocery"); err == nil {
		t.Fatal("expected an error for an unknown alias")
	}
}

func TestKindForLabel(t *testing.T) {
	cases := map[string]Kind{
		"모닝 페이지":    MorningPage,
		"모닝":        MorningPage,
		"감정 일지":     Emotion,
		"회고":        Retrospective,
		"브레인 덤프":    BrainDump,
		"":          BrainDump,
		"something": BrainDump,
	}
	for label, want := range cases {
		if got := KindForLabel(label); got != want {
			t.Fatalf("label %q: expected %v, got %v", label, want, got)
		}
	}
}

func TestKindJSONRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		b, err := json.Marshal(k)
		if err != nil {
			t.Fatalf("marshal %v: %v", k, err)
		}
		var back Kind
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", string(b), err)
		}
		if back != k {
			t.Fatalf("expected %v back, got %v", k, back)
		}
	}
}

func TestKindJSONUnknownName(t *testing.T) {
	var k Kind
	if err := json.Unmarshal([]byte(`"Grocery"`), &k); err == nil {
		t.Fatal("expected an error for an unknown kind name")
	}
}
