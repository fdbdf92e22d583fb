// Package cache defines the short-lived response cache contract used to
// avoid redundant model calls, together with the key derivation that makes
// it a similarity-based cache: [Key] hashes only the leading 200 characters
// of the context text, so near-identical queries share an entry.
//
// Implementations live in subpackages: inmemory is the reference store with
// lazy TTL expiry evaluated at read time, bounded adds a capacity limit on
// top of the same observable contract.
package cache
