package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/bitrecs/recsgo/core/parse"
	"github.com/bitrecs/recsgo/providers/cache"
	"github.com/bitrecs/recsgo/providers/observability"
)

// DefaultTTL is the entry lifetime used when no [WithTTL] option is given.
const DefaultTTL = 300 * time.Second

// entry pairs a stored sequence with its creation time. Entries are owned
// exclusively by the store; callers only ever see copies.
type entry struct {
	recs      []parse.Record
	createdAt time.Time
}

// Store is the reference response cache: a mutex-guarded map with TTL
// expiry evaluated lazily at read time. There is no background sweeper, so
// expired entries that are never read again stay in memory until
// overwritten. That unbounded growth is a deliberate simplicity/latency
// trade-off; entries are small and the TTL is short.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
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

// WithClock injects the time source used for entry timestamps and expiry
// checks. Tests use this to exercise TTL behavior without real delays.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns an empty store ready for concurrent use.
func New(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure Store implements cache.Store at compile time.
var _ cache.Store = (*Store)(nil)

// Get returns a copy of the stored sequence when a fresh entry exists.
// Reading an expired entry removes it as a side effect (lazy eviction).
// The timestamp check and the value read happen under one lock acquisition,
// so a concurrent Put is observed entirely or not at all.
func (s *Store) Get(ctx context.Context, key string) ([]parse.Record, bool) {
	span := observability.SpanFromContext(ctx)

	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		if span != nil {
			span.AddEvent(observability.EventCacheMiss,
				observability.String(observability.AttrCacheKey, key),
			)
		}
		return nil, false
	}

	age := s.now().Sub(e.createdAt)
	if age >= s.ttl {
		delete(s.entries, key)
		s.mu.Unlock()
		if span != nil {
			span.AddEvent(observability.EventCacheEvicted,
				observability.String(observability.AttrCacheKey, key),
				observability.Duration(observability.AttrCacheEntryAge, age),
			)
		}
		return nil, false
	}

	out := make([]parse.Record, len(e.recs))
	copy(out, e.recs)
	s.mu.Unlock()

	if span != nil {
		span.AddEvent(observability.EventCacheHit,
			observability.String(observability.AttrCacheKey, key),
			observability.Duration(observability.AttrCacheEntryAge, age),
			observability.Int(observability.AttrCacheRecordCount, len(out)),
		)
	}
	return out, true
}

// Put inserts or overwrites the entry for key with a copy of recs and the
// current timestamp. Last writer wins.
func (s *Store) Put(ctx context.Context, key string, recs []parse.Record) {
	stored := make([]parse.Record, len(recs))
	copy(stored, recs)

	s.mu.Lock()
	s.entries[key] = entry{recs: stored, createdAt: s.now()}
	s.mu.Unlock()

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventCacheStore,
			observability.String(observability.AttrCacheKey, key),
			observability.Int(observability.AttrCacheRecordCount, len(stored)),
		)
	}
}

// Len reports the number of entries currently held, including expired ones
// that have not been read since passing their TTL.
func (s *Store) Len() int {
	s.mu.Lock()
	n := len(s.entries)
	s.mu.Unlock()
	return n
}
