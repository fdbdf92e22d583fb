package recommend

import (
	"context"
	"fmt"

	"github.com/bitrecs/recsgo/core/parse"
	"github.com/bitrecs/recsgo/core/prompt"
	"github.com/bitrecs/recsgo/providers/ai"
	"github.com/bitrecs/recsgo/providers/cache"
	"github.com/bitrecs/recsgo/providers/observability"
)

// Request describes one recommendation query.
type Request struct {
	// SKU is the product the recommendations should complement.
	SKU string
	// Context is the available-products text, plain or HTML.
	Context string
	// Count is the number of recommendations to request (default 5).
	Count int
	// Persona selects the prompt voice; unknown values fall back to the
	// default persona.
	Persona string
	// Cart lists items already held by the customer.
	Cart []prompt.CartItem
}

// Engine composes the cache, the prompt factory, the model-call provider
// and the recovery parser into the full recommendation flow. A cache hit
// short-circuits before any prompt is rendered; on a miss the raw model
// output runs through the recovery cascade and only non-empty results are
// cached, so a garbled response never poisons the cache.
type Engine struct {
	provider ai.Provider
	store    cache.Store
	observer observability.Provider
}

// Option configures an [Engine].
type Option func(*Engine)

// WithCache attaches a response cache. Without one every request reaches
// the model.
func WithCache(store cache.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithObserver attaches an observability provider for spans and metrics.
func WithObserver(observer observability.Provider) Option {
	return func(e *Engine) { e.observer = observer }
}

// New creates an engine around the given model provider.
func New(provider ai.Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, fmt.Errorf("recommend: provider is required")
	}
	e := &Engine{provider: provider}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Recommend returns an ordered sequence of recommendation records for the
// request. An empty sequence with a nil error means the model output was
// unrecoverable; that is an expected business outcome, and the caller
// decides whether to retry or drop the request. Errors are reserved for
// invalid requests and failed model calls.
func (e *Engine) Recommend(ctx context.Context, req Request) ([]parse.Record, error) {
	observer := e.observer
	if observer == nil {
		observer = observability.ObserverFromContext(ctx)
	}

	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanRecommend,
			observability.String(observability.AttrRecSKU, req.SKU),
			observability.Int(observability.AttrRecCount, req.Count),
		)
		defer span.End()
	}

	opts := []prompt.Option{
		prompt.WithPersona(req.Persona),
		prompt.WithCart(req.Cart),
	}
	if req.Count > 0 {
		opts = append(opts, prompt.WithCount(req.Count))
	}
	factory, err := prompt.New(req.SKU, prompt.NormalizeContext(req.Context), opts...)
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "invalid request")
		}
		return nil, fmt.Errorf("recommend: %w", err)
	}

	persona := factory.Persona()
	if span != nil {
		span.SetAttributes(observability.String(observability.AttrRecPersona, persona))
	}

	key := cache.Key(req.SKU, req.Context, req.Count, persona)
	if e.store != nil {
		if recs, ok := e.store.Get(ctx, key); ok {
			if observer != nil {
				observer.Counter("recommend.cache.hits").Add(ctx, 1)
			}
			if span != nil {
				span.SetStatus(observability.StatusOK, "served from cache")
			}
			return recs, nil
		}
		if observer != nil {
			observer.Counter("recommend.cache.misses").Add(ctx, 1)
		}
	}

	resp, err := e.provider.SendSingleMessage(ctx, ai.ChatRequest{
		Messages: []ai.Message{{Role: ai.RoleUser, Content: factory.Generate(ctx)}},
	})
	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, "model call failed")
		}
		return nil, fmt.Errorf("recommend: model call: %w", err)
	}
	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMFinishReason, resp.FinishReason),
			observability.Int(observability.AttrLLMResponseLength, len(resp.Content)),
		)
	}

	recs := parse.Records(ctx, resp.Content)
	if len(recs) == 0 {
		if observer != nil {
			observer.Counter("recommend.parse.empty").Add(ctx, 1)
		}
		if span != nil {
			span.SetStatus(observability.StatusOK, "no recoverable records")
		}
		return recs, nil
	}

	if e.store != nil {
		e.store.Put(ctx, key, recs)
	}
	if span != nil {
		span.SetAttributes(observability.Int(observability.AttrParseRecordCount, len(recs)))
		span.SetStatus(observability.StatusOK, "")
	}
	return recs, nil
}
