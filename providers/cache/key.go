package cache

import (
	"crypto/sha256"
	"fmt"
)

// ContextPrefixLength bounds how much of the context text participates in
// key derivation. Hashing only the leading prefix makes near-identical
// contexts collapse to the same key, trading exactness for hit rate.
const ContextPrefixLength = 200

// Key derives a deterministic cache key from the four query-identifying
// inputs. Two calls whose contexts differ only beyond [ContextPrefixLength]
// characters produce the same key.
func Key(sku, context string, count int, persona string) string {
	prefix := context
	if len(prefix) > ContextPrefixLength {
		prefix = prefix[:ContextPrefixLength]
	}
	sum := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%d|%s", sku, prefix, count, persona))
	return fmt.Sprintf("rec:%s:%d:%s:%x", sku, count, persona, sum[:8])
}
