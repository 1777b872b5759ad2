package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Naheeria/mindcontrol/pkg/record"
	"github.com/Naheeria/mindcontrol/pkg/store"
)

// AutosaveDelay is how long a session waits after the latest edit before
// writing it back.
const AutosaveDelay = 3 * time.Second

// Autosaves reports whether a kind participates in autosave. Emotion and
// Retrospective entries only save on explicit action.
func Autosaves(k record.Kind) bool {
	return k == record.MorningPage || k == record.BrainDump
}

// Session owns the debounced autosave for one open edit of an already
// persisted record. Each Touch supersedes the previous pending save: at most
// one save is ever scheduled, and the latest edit wins. Close cancels
// whatever is pending and can flush it synchronously to sequence
// save-then-close.
type Session struct {
	id    string
	save  func(ctx context.Context, id string, p store.Patch) error
	delay time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   *time.Timer
	pending *store.Patch
	closed  bool
}

// NewSession prepares autosave for the record id. The save func is called
// once per fired or flushed edit.
func (s *Service) NewSession(id string) *Session {
	return &Session{
		id:    id,
		save:  s.Edit,
		delay: AutosaveDelay,
	}
}

// Touch records the latest edit and (re)arms the delay. A pending save that
// has not fired yet is cancelled, not queued behind.
func (s *Session) Touch(p store.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = &p
	s.gen++
	gen := s.gen
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
}

// fire saves the pending edit of generation gen. A callback whose timer was
// superseded after it already started firing sees a newer generation and
// leaves the fresh edit to its own timer.
func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || s.pending == nil || gen != s.gen {
		s.mu.Unlock()
		return
	}
	p := *s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	// A failed autosave leaves the stored record at its last good state and
	// the next edit simply tries again.
	if err := s.save(context.Background(), s.id, p); err != nil {
		fmt.Fprintf(os.Stderr, "app: autosave %s: %v\n", s.id, err)
	}
}

// Close cancels any pending autosave. With flush set, a still-pending edit
// is saved synchronously before Close returns, so callers can sequence a
// save-then-close action.
func (s *Session) Close(ctx context.Context, flush bool) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	p := s.pending
	s.pending = nil
	s.mu.Unlock()

	if flush && p != nil {
		return s.save(ctx, s.id, *p)
	}
	return nil
}
