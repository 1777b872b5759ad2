package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/backup"
	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

// memoryStore is an in-memory store.Interface for exercising the service
// without touching disk.
type memoryStore struct {
	mu      sync.Mutex
	seq     int
	records []*record.Record

	failBatch bool
}

func (m *memoryStore) List(ctx context.Context) ([]*record.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*record.Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (m *memoryStore) Subscribe(ctx context.Context) (<-chan []*record.Record, error) {
	ch := make(chan []*record.Record, 1)
	all, _ := m.List(ctx)
	ch <- all
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

func (m *memoryStore) Create(ctx context.Context, r *record.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	r.ID = fmt.Sprintf("id-%d", m.seq)
	r.Created = record.Timestamp{Time: time.Now()}
	m.records = append(m.records, r.Clone())
	return nil
}

func (m *memoryStore) Update(ctx context.Context, id string, p store.Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			if p.Date != nil {
				r.Date = *p.Date
			}
			if p.Title != nil {
				r.Title = *p.Title
			}
			if p.Content != nil {
				r.Content = *p.Content
			}
			if p.Mood != nil {
				r.Mood = *p.Mood
			}
			if p.Tags != nil {
				r.Tags = append([]string(nil), (*p.Tags)...)
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memoryStore) BatchCreate(ctx context.Context, records []*record.Record) error {
	if m.failBatch {
		return errors.New("batch write refused")
	}
	for _, r := range records {
		if err := m.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func TestAddDefaultsDate(t *testing.T) {
	s := &Service{Store: &memoryStore{}}

	r, err := s.Add(context.Background(), record.New(record.BrainDump, "", "dated today", ""))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.Date != record.FormatDate(time.Now()) {
		t.Fatalf("expected today's date, got %q", r.Date)
	}
	if r.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestAddDropsMoodOutsideEmotion(t *testing.T) {
	s := &Service{Store: &memoryStore{}}

	r := record.New(record.BrainDump, "2024-01-02", "no rating", "")
	r.Mood = 4
	if _, err := s.Add(context.Background(), r); err != nil {
		t.Fatalf("add: %v", err)
	}
	if r.Mood != 0 {
		t.Fatalf("expected mood cleared for non-emotion kinds, got %d", r.Mood)
	}

	e := record.New(record.Emotion, "2024-01-02", "rated", "")
	e.Mood = 4
	if _, err := s.Add(context.Background(), e); err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.Mood != 4 {
		t.Fatalf("expected emotion mood preserved, got %d", e.Mood)
	}
}

func TestAddRejectsOutOfRangeMood(t *testing.T) {
	m := &memoryStore{}
	s := &Service{Store: m}

	r := record.New(record.Emotion, "2024-01-02", "too strong", "")
	r.Mood = 9
	if _, err := s.Add(context.Background(), r); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if len(m.records) != 0 {
		t.Fatalf("expected nothing written, got %d records", len(m.records))
	}
}

func TestEditRejectsOutOfRangeMood(t *testing.T) {
	m := &memoryStore{}
	s := &Service{Store: m}
	ctx := context.Background()

	e := record.New(record.Emotion, "2024-01-02", "rated", "")
	e.Mood = 3
	if _, err := s.Add(ctx, e); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.Edit(ctx, e.ID, store.Patch{Mood: store.Int(6)}); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if err := s.Edit(ctx, e.ID, store.Patch{Mood: store.Int(-1)}); !errors.Is(err, ErrInvalidMood) {
		t.Fatalf("expected ErrInvalidMood, got %v", err)
	}
	if err := s.Edit(ctx, e.ID, store.Patch{Mood: store.Int(5)}); err != nil {
		t.Fatalf("in-range edit: %v", err)
	}
}

func TestImportCSV(t *testing.T) {
	m := &memoryStore{}
	s := &Service{Store: m}

	text := "ID,Date,Type,Title,Content,Mood,Tags\n" +
		`x,2024-01-02,브레인 덤프,"one","first",,` + "\n" +
		`y,2024-01-03,감정 일지,"two","second",4,`

	n, err := s.ImportCSV(context.Background(), text)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 restored, got %d", n)
	}

	all, err := s.Records(context.Background())
	if err != nil {
		t.Fatalf("records: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}

func TestImportCSVNothingToImport(t *testing.T) {
	m := &memoryStore{}
	s := &Service{Store: m}

	_, err := s.ImportCSV(context.Background(), "ID,Date,Type,Title,Content,Mood,Tags\n")
	if !errors.Is(err, backup.ErrNothingToImport) {
		t.Fatalf("expected ErrNothingToImport, got %v", err)
	}
	if len(m.records) != 0 {
		t.Fatalf("expected nothing written, got %d records", len(m.records))
	}
}

func TestImportCSVFailedBatchWritesNothing(t *testing.T) {
	m := &memoryStore{failBatch: true}
	s := &Service{Store: m}

	text := "ID,Date,Type,Title,Content,Mood,Tags\n" +
		`x,2024-01-02,브레인 덤프,"one","first",,`

	if _, err := s.ImportCSV(context.Background(), text); err == nil {
		t.Fatal("expected the batch failure to surface")
	}
	if len(m.records) != 0 {
		t.Fatalf("expected nothing written after a failed batch, got %d records", len(m.records))
	}
}

func TestExportCSV(t *testing.T) {
	s := &Service{Store: &memoryStore{}}
	ctx := context.Background()

	if _, err := s.Add(ctx, record.New(record.MorningPage, "2024-01-02", "salut", "pages")); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := s.ExportCSV(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "ID,Date,Type,Title,Content,Mood,Tags") {
		t.Fatalf("expected the header row, got %q", out)
	}
	if !strings.Contains(out, `"salut"`) {
		t.Fatalf("expected the record row, got %q", out)
	}
}

func TestStats(t *testing.T) {
	s := &Service{Store: &memoryStore{}}
	ctx := context.Background()

	e := record.New(record.Emotion, "2024-01-10", "rated", "")
	e.Mood = 5
	if _, err := s.Add(ctx, e); err != nil {
		t.Fatalf("add: %v", err)
	}

	stats, err := s.Stats(ctx, 2024, time.January)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Total != 1 || stats.Dominant != 5 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestServiceRequiresStore(t *testing.T) {
	s := &Service{}
	if _, err := s.Records(context.Background()); err == nil {
		t.Fatal("expected an error without a store")
	}
	if _, err := s.Add(context.Background(), record.New(record.BrainDump, "", "", "")); err == nil {
		t.Fatal("expected an error without a store")
	}
}
