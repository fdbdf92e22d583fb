// Package observability defines the core interfaces and semantic conventions
// used for distributed tracing, metrics collection, and structured logging
// throughout the recsgo library.
//
// The central entry point is [Provider], which composes [Tracer], [Metrics],
// and [Logger] into a single injectable dependency. Callers propagate an active
// [Provider] and [Span] through a [context.Context] using [ContextWithObserver]
// and [ContextWithSpan]; they can be retrieved with [ObserverFromContext] and
// [SpanFromContext]. Components treat a missing span or observer as a no-op:
// diagnostics never influence computed results.
//
// The semconv.go file contains all standard attribute-key, span-name and
// event-name constants that should be used when recording observations,
// ensuring consistency across providers and components.
package observability
