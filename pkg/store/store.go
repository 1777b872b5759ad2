package store

import (
	"context"
	"errors"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("store: record not found")

// Interface is the persistence contract the core depends on. A store is
// constructed for one (app id, user) pair; every operation is scoped to that
// user's collection. Operations may fail (disk, network in remote
// implementations); a failed write leaves the visible collection at the last
// successful snapshot, and no retries happen at this layer.
type Interface interface {
	// List returns the user's full collection ordered by date descending
	// then creation time descending, so same-day entries show most recently
	// created first.
	List(ctx context.Context) ([]*record.Record, error)

	// Subscribe delivers a fresh full snapshot, in List order, first
	// immediately and then after every change until ctx is done. Consumers
	// replace their view wholesale; no diffing is required of them.
	Subscribe(ctx context.Context) (<-chan []*record.Record, error)

	// Create persists a new record, assigning its ID and Created time.
	Create(ctx context.Context, r *record.Record) error

	// Update replaces the fields listed in the patch and preserves the
	// rest. Kind is immutable and has no patch field.
	Update(ctx context.Context, id string, p Patch) error

	// Delete removes the record permanently. Confirmation is a UI concern.
	Delete(ctx context.Context, id string) error

	// BatchCreate persists all records or none of them. Used by CSV import.
	BatchCreate(ctx context.Context, records []*record.Record) error
}

// Patch lists the fields an update replaces. Nil fields are preserved.
type Patch struct {
	Date    *string
	Title   *string
	Content *string
	Mood    *int
	Tags    *[]string
}

func (p Patch) apply(r *record.Record) {
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
}

// String returns a pointer for a string patch field.
func String(v string) *string { return &v }

// Int returns a pointer for an int patch field.
func Int(v int) *int { return &v }

// Tags returns a pointer for a tags patch field.
func Tags(v []string) *[]string { return &v }
