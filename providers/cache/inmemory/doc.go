// Package inmemory provides the reference implementation of the
// [cache.Store] interface: a process-wide, mutex-guarded map whose entries
// expire lazily on read after a configurable TTL. The main entry point is
// [New]; tests inject a controllable clock with [WithClock].
package inmemory
