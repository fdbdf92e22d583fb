package cache

import (
	"context"

	"github.com/bitrecs/recsgo/core/parse"
)

// Store maps derived keys to previously recovered record sequences.
// Implementations must be safe for concurrent use: a Get racing a Put for
// the same key observes either the old or the new entry, never a partial
// write, and last-writer-wins on Put.
type Store interface {
	// Get returns the stored sequence for key and whether a usable entry
	// was found. An expired or absent entry reports false; expiry is a
	// normal outcome, never an error.
	Get(ctx context.Context, key string) ([]parse.Record, bool)

	// Put inserts or overwrites the entry for key. The stored sequence is
	// not validated: an empty result is cached faithfully, so callers that
	// do not want to cache failures must check before storing.
	Put(ctx context.Context, key string, recs []parse.Record)
}
