package observability

import (
	"context"
	"testing"
)

type noopSpan struct{}

func (noopSpan) End()                          {}
func (noopSpan) SetAttributes(...Attribute)    {}
func (noopSpan) SetStatus(StatusCode, string)  {}
func (noopSpan) RecordError(error)             {}
func (noopSpan) AddEvent(string, ...Attribute) {}

func TestContextWithSpan_RoundTrip(t *testing.T) {
	span := noopSpan{}
	ctx := ContextWithSpan(context.Background(), span)

	if got := SpanFromContext(ctx); got != span {
		t.Errorf("SpanFromContext returned %v, want the stored span", got)
	}
}

func TestSpanFromContext_Missing(t *testing.T) {
	if got := SpanFromContext(context.Background()); got != nil {
		t.Errorf("expected nil for a plain context, got %v", got)
	}
	if got := SpanFromContext(nil); got != nil { //nolint:staticcheck // nil ctx tolerance is part of the contract
		t.Errorf("expected nil for a nil context, got %v", got)
	}
}

func TestAttributeConstructors(t *testing.T) {
	tests := []struct {
		name string
		attr Attribute
		key  string
	}{
		{"string", String("k", "v"), "k"},
		{"int", Int("n", 1), "n"},
		{"int64", Int64("n64", 1), "n64"},
		{"bool", Bool("b", true), "b"},
		{"error nil", Error(nil), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.key)
			}
		})
	}
}
