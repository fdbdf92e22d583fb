package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/bitrecs/recsgo/core/parse"
)

// fakeClock is an adjustable time source for TTL tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClockedStore(opts ...Option) (*Store, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	opts = append(opts, WithClock(clock.Now))
	return New(opts...), clock
}

func TestStore_PutThenGet(t *testing.T) {
	s, _ := newClockedStore()
	ctx := context.Background()
	recs := []parse.Record{{SKU: "A", Name: "X", Price: "1", Reason: "r"}}

	s.Put(ctx, "k", recs)

	got, ok := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected a hit immediately after Put")
	}
	if len(got) != 1 || got[0] != recs[0] {
		t.Errorf("got %+v, want %+v", got, recs)
	}
}

func TestStore_MissOnUnknownKey(t *testing.T) {
	s, _ := newClockedStore()
	if _, ok := s.Get(context.Background(), "nope"); ok {
		t.Error("expected a miss for an unknown key")
	}
}

func TestStore_ExpiryAndLazyEviction(t *testing.T) {
	s, clock := newClockedStore(WithTTL(300 * time.Second))
	ctx := context.Background()

	s.Put(ctx, "k", []parse.Record{{SKU: "A"}})

	clock.Advance(299 * time.Second)
	if _, ok := s.Get(ctx, "k"); !ok {
		t.Fatal("entry expired before TTL elapsed")
	}

	clock.Advance(2 * time.Second)
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatal("expected a miss after TTL elapsed")
	}

	// The expired read must have removed the entry.
	if s.Len() != 0 {
		t.Errorf("expected lazy eviction to remove the entry, %d left", s.Len())
	}
}

func TestStore_ExpiredEntryPersistsUntilRead(t *testing.T) {
	s, clock := newClockedStore(WithTTL(time.Second))
	ctx := context.Background()

	s.Put(ctx, "k", []parse.Record{{SKU: "A"}})
	clock.Advance(time.Hour)

	// No sweeper: the stale entry stays until something reads it.
	if s.Len() != 1 {
		t.Fatalf("expected the unread expired entry to persist, len = %d", s.Len())
	}
	s.Get(ctx, "k")
	if s.Len() != 0 {
		t.Errorf("expected the read to evict, len = %d", s.Len())
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	s, clock := newClockedStore(WithTTL(10 * time.Second))
	ctx := context.Background()

	s.Put(ctx, "k", []parse.Record{{SKU: "old"}})
	clock.Advance(9 * time.Second)
	s.Put(ctx, "k", []parse.Record{{SKU: "new"}})

	// The overwrite refreshed the timestamp, so the entry outlives the
	// original TTL window.
	clock.Advance(5 * time.Second)
	got, ok := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected the overwritten entry to be fresh")
	}
	if got[0].SKU != "new" {
		t.Errorf("sku = %q, want %q (last writer wins)", got[0].SKU, "new")
	}
}

func TestStore_EmptyResultCachedFaithfully(t *testing.T) {
	s, _ := newClockedStore()
	ctx := context.Background()

	s.Put(ctx, "k", []parse.Record{})

	got, ok := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected a hit for a stored empty sequence")
	}
	if len(got) != 0 {
		t.Errorf("expected empty sequence, got %+v", got)
	}
}

func TestStore_CallersGetCopies(t *testing.T) {
	s, _ := newClockedStore()
	ctx := context.Background()

	original := []parse.Record{{SKU: "A", Name: "X"}}
	s.Put(ctx, "k", original)

	// Mutating the slice given to Put must not reach the store.
	original[0].SKU = "mutated"
	got, _ := s.Get(ctx, "k")
	if got[0].SKU != "A" {
		t.Errorf("store aliased the caller's slice on Put")
	}

	// Mutating the slice returned by Get must not reach the store either.
	got[0].SKU = "mutated"
	again, _ := s.Get(ctx, "k")
	if again[0].SKU != "A" {
		t.Errorf("store aliased the returned slice on Get")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				s.Put(ctx, "shared", []parse.Record{{SKU: "A"}})
				if recs, ok := s.Get(ctx, "shared"); ok && len(recs) != 1 {
					t.Error("observed a partially written entry")
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
