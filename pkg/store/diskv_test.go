package store

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

type testConfig struct {
	path string
	user string
}

func (t testConfig) BasePath() string { return t.path }
func (t testConfig) AppID() string    { return "test-app-id" }
func (t testConfig) User() string {
	if t.user != "" {
		return t.user
	}
	return "guest"
}
func (t testConfig) Guest() bool { return true }

func TestCreateStampsRecord(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	r := record.New(record.BrainDump, "2024-01-02", "stamped", "body")
	if err := p.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(r.ID) != 32 {
		t.Fatalf("expected a 32 char id, got %q", r.ID)
	}
	if _, err := hex.DecodeString(r.ID); err != nil {
		t.Fatalf("expected a hex id, got %q: %v", r.ID, err)
	}
	if r.Created.IsZero() {
		t.Fatal("expected a creation time")
	}
}

func TestListOrdering(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	orig := now
	defer func() { now = orig }()
	clock := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, r := range []*record.Record{
		record.New(record.BrainDump, "2024-01-01", "oldest", ""),
		record.New(record.BrainDump, "2024-01-03", "newest day, first created", ""),
		record.New(record.BrainDump, "2024-01-03", "newest day, last created", ""),
	} {
		if err := p.Create(ctx, r); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	titles := []string{all[0].Title, all[1].Title, all[2].Title}
	want := []string{"newest day, last created", "newest day, first created", "oldest"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, titles)
		}
	}
}

func TestUpdatePreservesUnpatchedFields(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	r := record.New(record.Emotion, "2024-01-02", "before", "kept content")
	r.Mood = 4
	r.Tags = []string{"work"}
	if err := p.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := p.Update(ctx, r.ID, Patch{Title: String("after")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	got := all[0]
	if got.Title != "after" {
		t.Fatalf("expected patched title, got %q", got.Title)
	}
	if got.Content != "kept content" || got.Mood != 4 || len(got.Tags) != 1 || got.Tags[0] != "work" {
		t.Fatalf("unpatched fields changed: %+v", got)
	}
	if got.Kind != record.Emotion {
		t.Fatalf("kind must never change, got %v", got.Kind)
	}
}

func TestUpdateDropsMoodOutsideEmotion(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	r := record.New(record.BrainDump, "2024-01-02", "unrated", "")
	if err := p.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := p.Update(ctx, r.ID, Patch{Mood: Int(4)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if all[0].Mood != 0 {
		t.Fatalf("expected no rating on a non-emotion record, got %d", all[0].Mood)
	}
}

func TestUpdateMovesDate(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	r := record.New(record.BrainDump, "2024-01-02", "moving", "")
	if err := p.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := p.Update(ctx, r.ID, Patch{Date: String("2024-02-10")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected the record once after the move, got %d", len(all))
	}
	if all[0].Date != "2024-02-10" || all[0].ID != r.ID {
		t.Fatalf("expected same record on the new date, got %+v", all[0])
	}
}

func TestUpdateNotFound(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	err = p.Update(context.Background(), "missing", Patch{Title: String("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	r := record.New(record.BrainDump, "2024-01-02", "doomed", "")
	if err := p.Create(ctx, r); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := p.Delete(ctx, r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected an empty collection, got %d", len(all))
	}

	if err := p.Delete(ctx, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a second delete, got %v", err)
	}
}

func TestBatchCreate(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	ctx := context.Background()

	batch := []*record.Record{
		record.New(record.MorningPage, "2024-01-01", "one", ""),
		record.New(record.Emotion, "2024-01-02", "two", ""),
		record.New(record.Retrospective, "2024-01-03", "three", ""),
	}
	if err := p.BatchCreate(ctx, batch); err != nil {
		t.Fatalf("batch create: %v", err)
	}

	all, err := p.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	for _, r := range batch {
		if r.ID == "" {
			t.Fatalf("expected ids assigned across the batch, got %+v", r)
		}
	}
}

func TestUsersAreIsolated(t *testing.T) {
	base := t.TempDir()
	ctx := context.Background()

	mine, err := Load(testConfig{path: base, user: "me"})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	theirs, err := Load(testConfig{path: base, user: "them"})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	if err := mine.Create(ctx, record.New(record.BrainDump, "2024-01-02", "private", "")); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := theirs.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected no records across users, got %d", len(all))
	}
}

func TestScopeRoundTrip(t *testing.T) {
	scope := toScope("default-app-id", "guest")
	if got := fromScope(scope); got != "default-app-id/guest" {
		t.Fatalf("expected scope to round trip, got %q", got)
	}
}
