package bounded

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/bitrecs/recsgo/core/parse"
	"github.com/bitrecs/recsgo/providers/cache"
	"github.com/bitrecs/recsgo/providers/observability"
)

// DefaultTTL matches the reference in-memory store.
const DefaultTTL = 300 * time.Second

// Store is a capacity-bounded response cache backed by ristretto. It keeps
// the same observable contract as the reference store — entries expire
// after the TTL and an expired read is a miss — while evicting under
// memory pressure instead of growing without bound. Each entry has a cost
// of 1, so maxEntries is a plain entry count.
type Store struct {
	rc  *ristretto.Cache[string, []parse.Record]
	ttl time.Duration
}

// Option configures a [Store].
type Option func(*Store)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// New creates a bounded store holding at most maxEntries entries.
func New(maxEntries int64, opts ...Option) (*Store, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[string, []parse.Record]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	s := &Store{rc: rc, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Ensure Store implements cache.Store at compile time.
var _ cache.Store = (*Store)(nil)

// Get returns a copy of the stored sequence when a fresh entry exists.
func (s *Store) Get(ctx context.Context, key string) ([]parse.Record, bool) {
	span := observability.SpanFromContext(ctx)

	recs, ok := s.rc.Get(key)
	if !ok {
		if span != nil {
			span.AddEvent(observability.EventCacheMiss,
				observability.String(observability.AttrCacheKey, key),
			)
		}
		return nil, false
	}

	out := make([]parse.Record, len(recs))
	copy(out, recs)

	if span != nil {
		span.AddEvent(observability.EventCacheHit,
			observability.String(observability.AttrCacheKey, key),
			observability.Int(observability.AttrCacheRecordCount, len(out)),
		)
	}
	return out, true
}

// Put stores a copy of recs under key with the configured TTL. The write is
// flushed synchronously so a subsequent Get observes it, matching the
// reference store's put-then-get behavior.
func (s *Store) Put(ctx context.Context, key string, recs []parse.Record) {
	stored := make([]parse.Record, len(recs))
	copy(stored, recs)

	s.rc.SetWithTTL(key, stored, 1, s.ttl)
	s.rc.Wait()

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventCacheStore,
			observability.String(observability.AttrCacheKey, key),
			observability.Int(observability.AttrCacheRecordCount, len(stored)),
		)
	}
}

// Close releases the cache's background resources.
func (s *Store) Close() {
	s.rc.Close()
}
