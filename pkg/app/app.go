package app

import (
	"context"
	"errors"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/backup"
	"github.com/Naheeria/mindcontrol/pkg/query"
	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

// Service provides high-level operations over a user's record collection.
// It wraps the store so CLIs and UIs can share logic. The store is injected;
// Service performs no retries and never mutates its view ahead of a
// successful write.
type Service struct {
	Store store.Interface
}

var (
	errNoStore     = errors.New("app: no store configured")
	ErrInvalidMood = errors.New("app: mood must be between 1 and 5")
)

// Records returns the current snapshot, date descending then most recently
// created first.
func (s *Service) Records(ctx context.Context) ([]*record.Record, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.List(ctx)
}

// Watch subscribes to snapshot updates.
func (s *Service) Watch(ctx context.Context) (<-chan []*record.Record, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Subscribe(ctx)
}

// Add creates and persists a new record. Mood is only kept for Emotion
// entries and must be 1..5 (0 means unrated); other kinds store no rating.
func (s *Service) Add(ctx context.Context, r *record.Record) (*record.Record, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	if r.Date == "" {
		r.Date = record.FormatDate(time.Now())
	}
	if r.Kind != record.Emotion {
		r.Mood = 0
	}
	if r.Mood < 0 || r.Mood > 5 {
		return nil, ErrInvalidMood
	}
	if err := s.Store.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Edit applies a field patch to the record with the given id. Kind stays
// whatever it was at creation.
func (s *Service) Edit(ctx context.Context, id string, p store.Patch) error {
	if s.Store == nil {
		return errNoStore
	}
	if p.Mood != nil && (*p.Mood < 0 || *p.Mood > 5) {
		return ErrInvalidMood
	}
	return s.Store.Update(ctx, id, p)
}

// Delete removes a record permanently. Any confirmation happens above this
// layer.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Store == nil {
		return errNoStore
	}
	return s.Store.Delete(ctx, id)
}

// ExportCSV renders the full collection as a CSV backup document.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return "", err
	}
	return backup.Export(records), nil
}

// ImportCSV parses a backup document and commits every valid row as one
// all-or-nothing batch, returning how many records were restored. A document
// with no usable rows surfaces backup.ErrNothingToImport and writes nothing.
func (s *Service) ImportCSV(ctx context.Context, text string) (int, error) {
	if s.Store == nil {
		return 0, errNoStore
	}
	records, err := backup.Import(text)
	if err != nil {
		return 0, err
	}
	if err := s.Store.BatchCreate(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// Stats aggregates the given month of the collection.
func (s *Service) Stats(ctx context.Context, year int, month time.Month) (query.MonthStats, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return query.MonthStats{}, err
	}
	return query.Monthly(records, year, month), nil
}
