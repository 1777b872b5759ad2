package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"github.com/Naheeria/mindcontrol/pkg/record"
)

// now is swapped out by tests that need deterministic creation times.
var now = time.Now

// Load creates a diskv-backed store scoped to the config's (app id, user)
// pair. A nil config falls back to LoadConfig.
func Load(cfg Config) (Interface, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		basePath: basePath,
		scope:    toScope(cfg.AppID(), cfg.User()),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	scope    string
}

func (p *persistence) read(key string) (*record.Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := record.Record{}
	if err := json.Unmarshal(val, &r); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	r.ID = pk.FileName
	return &r, nil
}

func (p *persistence) List(ctx context.Context) ([]*record.Record, error) {
	all := make([]*record.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); pk.Path[0] != p.scope {
			continue
		}
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all, nil
}

func (p *persistence) Create(ctx context.Context, r *record.Record) error {
	p.stamp(r)
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(p.toKey(r), data)
}

func (p *persistence) Update(ctx context.Context, id string, patch Patch) error {
	key, r, err := p.find(ctx, id)
	if err != nil {
		return err
	}
	patch.apply(r)
	if r.Kind != record.Emotion {
		// Only emotion entries carry a rating; a patch cannot smuggle one
		// onto another kind.
		r.Mood = 0
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	newKey := p.toKey(r)
	if err := p.d.Write(newKey, data); err != nil {
		return err
	}
	if newKey != key {
		// The date moved, so the record lives under a new path now.
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("store: drop stale key: %w", err)
		}
	}
	return nil
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	key, _, err := p.find(ctx, id)
	if err != nil {
		return err
	}
	return p.d.Erase(key)
}

func (p *persistence) BatchCreate(ctx context.Context, records []*record.Record) error {
	written := make([]string, 0, len(records))
	for _, r := range records {
		p.stamp(r)
		data, err := json.Marshal(r)
		if err != nil {
			p.rollback(written)
			return err
		}
		key := p.toKey(r)
		if err := p.d.Write(key, data); err != nil {
			p.rollback(written)
			return err
		}
		written = append(written, key)
	}
	return nil
}

// rollback erases keys written by a failed batch so no partial import is
// ever visible.
func (p *persistence) rollback(keys []string) {
	for _, key := range keys {
		if err := p.d.Erase(key); err != nil {
			fmt.Fprintf(os.Stderr, "store: rollback %s: %v\n", key, err)
		}
	}
}

// stamp assigns the store-owned fields on first persist. IDs are hex so they
// never collide with the dash-separated key segments.
func (p *persistence) stamp(r *record.Record) {
	if r.ID == "" {
		r.ID = fmt.Sprintf("%x", uuid.New())
	}
	if r.Created.IsZero() {
		r.Created = record.Timestamp{Time: now()}
	}
}

func (p *persistence) find(ctx context.Context, id string) (string, *record.Record, error) {
	for key := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(key)
		if pk.Path[0] != p.scope || pk.FileName != id {
			continue
		}
		r, err := p.read(key)
		if err != nil {
			return "", nil, err
		}
		return key, r, nil
	}
	return "", nil, ErrNotFound
}

// sortRecords orders a snapshot date descending, then creation time
// descending so same-day entries list most recently created first.
func sortRecords(records []*record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left := records[i]
		right := records[j]
		if left.Date != right.Date {
			return left.Date > right.Date
		}
		lt := left.Created.Time
		rt := right.Created.Time
		if !lt.Equal(rt) {
			return lt.After(rt)
		}
		return left.ID < right.ID
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `scope-date-id`. The date's own dashes fan records out into
// per-year/month/day directories under the scope.
func (p *persistence) toKey(r *record.Record) string {
	return fmt.Sprintf("%s-%s-%s", p.scope, r.Date, r.ID)
}

// toScope encodes the (app id, user) pair into a single path-safe segment.
// Hex keeps the segment free of the dashes the key codec splits on.
func toScope(appID, user string) string {
	return hex.EncodeToString([]byte(appID + "/" + user))
}

func fromScope(s string) string {
	scope, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Sprintf("fromScope: %s", err)
	}
	return string(scope)
}
