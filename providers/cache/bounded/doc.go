// Package bounded provides a capacity-limited implementation of the
// [cache.Store] interface backed by ristretto. It is the hardening option
// for deployments where the reference store's unbounded growth is not
// acceptable: entries still expire after their TTL and expired reads are
// misses, but admission and eviction are delegated to ristretto, so exact
// lazy-eviction internals are not observable. The main entry point is [New].
package bounded
