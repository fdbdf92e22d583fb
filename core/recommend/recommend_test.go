package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bitrecs/recsgo/providers/ai"
	"github.com/bitrecs/recsgo/providers/cache/inmemory"
)

// fakeProvider returns canned content and counts calls.
type fakeProvider struct {
	content string
	err     error
	calls   int
}

func (p *fakeProvider) SendSingleMessage(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &ai.ChatResponse{Content: p.content, FinishReason: "stop"}, nil
}

func (p *fakeProvider) GetModelName() string { return "fake" }

func TestEngine_RecommendParsesModelOutput(t *testing.T) {
	provider := &fakeProvider{
		content: `Here you go! [{"sku":"A","name":"X","price":"1","reason":"r"}] Enjoy.`,
	}
	engine, err := New(provider)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	recs, err := engine.Recommend(context.Background(), Request{SKU: "SKU1", Context: "catalog text"})
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(recs) != 1 || recs[0].SKU != "A" {
		t.Errorf("recs = %+v", recs)
	}
}

func TestEngine_CacheHitSkipsProvider(t *testing.T) {
	provider := &fakeProvider{
		content: `[{"sku":"A","name":"X","price":"1","reason":"r"}]`,
	}
	engine, err := New(provider, WithCache(inmemory.New()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	req := Request{SKU: "SKU1", Context: "catalog text", Count: 5}

	first, err := engine.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("first Recommend() error: %v", err)
	}
	second, err := engine.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("second Recommend() error: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (second request served from cache)", provider.calls)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestEngine_SimilarContextsShareEntry(t *testing.T) {
	provider := &fakeProvider{
		content: `[{"sku":"A","name":"X","price":"1","reason":"r"}]`,
	}
	engine, err := New(provider, WithCache(inmemory.New()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	base := make([]byte, 200)
	for i := range base {
		base[i] = 'c'
	}

	ctx := context.Background()
	if _, err := engine.Recommend(ctx, Request{SKU: "SKU1", Context: string(base) + " tail one"}); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if _, err := engine.Recommend(ctx, Request{SKU: "SKU1", Context: string(base) + " other tail"}); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (contexts differ only beyond the key prefix)", provider.calls)
	}
}

func TestEngine_ExpiredEntryCallsProviderAgain(t *testing.T) {
	provider := &fakeProvider{
		content: `[{"sku":"A","name":"X","price":"1","reason":"r"}]`,
	}

	now := time.Unix(1_700_000_000, 0)
	store := inmemory.New(
		inmemory.WithTTL(300*time.Second),
		inmemory.WithClock(func() time.Time { return now }),
	)
	engine, err := New(provider, WithCache(store))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	req := Request{SKU: "SKU1", Context: "catalog text"}

	if _, err := engine.Recommend(ctx, req); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	now = now.Add(301 * time.Second)
	if _, err := engine.Recommend(ctx, req); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}

	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (entry expired)", provider.calls)
	}
}

func TestEngine_EmptyParseNotCached(t *testing.T) {
	provider := &fakeProvider{content: "Sorry, I cannot help with that request."}
	engine, err := New(provider, WithCache(inmemory.New()))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx := context.Background()
	req := Request{SKU: "SKU1", Context: "catalog text"}

	recs, err := engine.Recommend(ctx, req)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected empty result, got %+v", recs)
	}

	// The failure must not be cached: the next request tries the model
	// again.
	if _, err := engine.Recommend(ctx, req); err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (empty results are not cached)", provider.calls)
	}
}

func TestEngine_ProviderErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	engine, err := New(&fakeProvider{err: wantErr})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	_, err = engine.Recommend(context.Background(), Request{SKU: "SKU1", Context: "catalog text"})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestEngine_InvalidRequest(t *testing.T) {
	provider := &fakeProvider{content: "[]"}
	engine, err := New(provider)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := engine.Recommend(context.Background(), Request{SKU: "A"}); err == nil {
		t.Error("expected an error for a too-short sku")
	}
	if _, err := engine.Recommend(context.Background(), Request{SKU: "SKU1", Count: 99}); err == nil {
		t.Error("expected an error for an out-of-range count")
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times for invalid requests", provider.calls)
	}
}

func TestNew_RequiresProvider(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected an error for a nil provider")
	}
}
