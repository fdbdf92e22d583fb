package ai

import "context"

// Provider is the model-call collaborator: it turns one prompt into one raw
// text completion. Implementations own transport concerns (endpoint,
// authentication, serialization); timeout and retry budgets are enforced by
// the caller through ctx and the injected HTTP client, never here.
type Provider interface {
	// SendSingleMessage performs a single stateless completion call.
	SendSingleMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// GetModelName returns the model identifier used for requests.
	GetModelName() string
}
