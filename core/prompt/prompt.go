package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/bitrecs/recsgo/providers/observability"
)

// Validation bounds for factory inputs.
const (
	MinQueryLength    = 2
	MaxQueryLength    = 64
	MaxRecsPerRequest = 20
)

// maxContextLength bounds the catalog context embedded in the prompt. The
// aggressive cut keeps the request inside a small token budget for fast
// completions.
const maxContextLength = 800

// maxCartItems bounds how many cart SKUs are surfaced to the model.
const maxCartItems = 3

// DefaultSeason seeds seasonal relevance in the rendered prompt.
const DefaultSeason = "spring/summer"

// CartItem is one item already in the customer's cart, surfaced to the
// model so it can avoid recommending duplicates.
type CartItem struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Factory renders recommendation prompts for one query SKU against a
// product-catalog context.
type Factory struct {
	sku     string
	context string
	numRecs int
	persona string
	cart    []CartItem
	season  string
}

// Option configures a [Factory].
type Option func(*Factory)

// WithCount sets the number of recommendations to request (default 5).
func WithCount(n int) Option {
	return func(f *Factory) { f.numRecs = n }
}

// WithPersona selects the prompt persona. Unknown names silently resolve to
// [DefaultPersona].
func WithPersona(name string) Option {
	return func(f *Factory) { f.persona, _ = ResolvePersona(name) }
}

// WithCart attaches the customer's cart.
func WithCart(items []CartItem) Option {
	return func(f *Factory) { f.cart = items }
}

// WithSeason overrides the default season.
func WithSeason(season string) Option {
	return func(f *Factory) { f.season = season }
}

// New validates the query inputs and returns a prompt factory.
func New(sku, catalogContext string, opts ...Option) (*Factory, error) {
	if len(sku) < MinQueryLength || len(sku) > MaxQueryLength {
		return nil, fmt.Errorf("sku must be between %d and %d characters long", MinQueryLength, MaxQueryLength)
	}

	f := &Factory{
		sku:     sku,
		context: catalogContext,
		numRecs: 5,
		persona: DefaultPersona,
		season:  DefaultSeason,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.numRecs < 1 || f.numRecs > MaxRecsPerRequest {
		return nil, fmt.Errorf("recommendation count must be between 1 and %d", MaxRecsPerRequest)
	}
	return f, nil
}

// Persona returns the resolved persona name used for rendering.
func (f *Factory) Persona() string {
	return f.persona
}

// Generate renders the recommendation prompt. The catalog context is
// truncated to keep the request fast, the persona supplies tone and
// priorities, and the output rules demand a bare JSON array so well-formed
// responses parse on the recovery cascade's first stage.
func (f *Factory) Generate(ctx context.Context) string {
	_, persona := ResolvePersona(f.persona)

	contextStr := f.context
	if len(contextStr) > maxContextLength {
		contextStr = contextStr[:maxContextLength] + "..."
	}

	priorities := persona.Priorities
	if len(priorities) > 3 {
		priorities = priorities[:3]
	}

	cartContext := ""
	if len(f.cart) > 0 {
		items := f.cart
		if len(items) > maxCartItems {
			items = items[:maxCartItems]
		}
		skus := make([]string, 0, len(items))
		for _, item := range items {
			skus = append(skus, item.SKU)
		}
		cartContext = fmt.Sprintf("\nCustomer Cart: %s", strings.Join(skus, ", "))
	}

	prompt := fmt.Sprintf(`You are %s recommending %d complementary products for %s in %s.

Customer Profile: Values %s%s
Available Products: %s

CRITICAL RULES:
- Return JSON array only, exactly %d items
- NO duplicates, NO %s in results
- Exact recommendation number
- The response should not be malformed
- Return items MUST exist in context.
- Return items must NOT exist in the cart.
- Each item: {"sku": "...", "name": "Full Product Name - Category|Subcategory", "price": "...", "reason": "Detailed reason why this complements the query product"}

Output requirements:
- Each item must be valid JSON with: "sku": "...", "name": "...", "price": "...", "reason": "..."
- Please consider gender of Query SKU when recommending products.

Example: [{"sku": "ABC", "name": "Product Name - Category | Subcategory", "price": "99", "reason": "This product perfectly complements because it provides..."}]`,
		persona.Description, f.numRecs, f.sku, f.season,
		strings.Join(priorities, ", "), cartContext, contextStr,
		f.numRecs, f.sku)

	if span := observability.SpanFromContext(ctx); span != nil {
		span.SetAttributes(
			observability.Int(observability.AttrRecPromptLength, len(prompt)),
			observability.Int(observability.AttrRecPromptTokens, EstimateTokens(prompt)),
		)
	}
	return prompt
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// EstimateTokens approximates the token count of s at four characters per
// token. It is a budgeting heuristic, not a tokenizer.
func EstimateTokens(s string) int {
	return (len(s) + 3) / 4
}
