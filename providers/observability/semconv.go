package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "openai")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gpt-4o-mini")
	AttrLLMModel = "llm.model"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMResponseLength is the raw response length in characters
	AttrLLMResponseLength = "llm.response.length"
)

// --- Recovery Parser Attributes ---

const (
	// AttrParseStage is the cascade stage that produced the result
	AttrParseStage = "parse.stage"

	// AttrParseInputLength is the raw input length in characters
	AttrParseInputLength = "parse.input.length"

	// AttrParseInputPreview is a truncated preview of the input
	AttrParseInputPreview = "parse.input.preview"

	// AttrParseRecordCount is the number of records recovered
	AttrParseRecordCount = "parse.record.count"
)

// --- Cache Attributes ---

const (
	// AttrCacheKey is the derived cache key
	AttrCacheKey = "cache.key"

	// AttrCacheEntryAge is the age of the entry at read time
	AttrCacheEntryAge = "cache.entry.age"

	// AttrCacheRecordCount is the number of records in the entry
	AttrCacheRecordCount = "cache.record.count"
)

// --- Recommendation Attributes ---

const (
	// AttrRecSKU is the query SKU recommendations are generated for
	AttrRecSKU = "rec.sku"

	// AttrRecCount is the requested number of recommendations
	AttrRecCount = "rec.count"

	// AttrRecPersona is the persona used to render the prompt
	AttrRecPersona = "rec.persona"

	// AttrRecPromptLength is the rendered prompt length in characters
	AttrRecPromptLength = "rec.prompt.length"

	// AttrRecPromptTokens is the estimated prompt token count
	AttrRecPromptTokens = "rec.prompt.tokens" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Span Names ---

const (
	// SpanRecommend is the top-level recommendation operation
	SpanRecommend = "recommend"

	// SpanProviderCall is the outbound model call
	SpanProviderCall = "provider.call"
)

// --- Event Names ---

const (
	// EventParseRejected fires when input is below the minimum viable size
	EventParseRejected = "parse.rejected"

	// EventParseRecovered fires when a cascade stage yields records
	EventParseRecovered = "parse.recovered"

	// EventParseExhausted fires when every cascade stage failed
	EventParseExhausted = "parse.exhausted"

	// EventCacheHit fires when a fresh entry is found
	EventCacheHit = "cache.hit"

	// EventCacheMiss fires when no usable entry is found
	EventCacheMiss = "cache.miss"

	// EventCacheEvicted fires when a read removes an expired entry
	EventCacheEvicted = "cache.evicted"

	// EventCacheStore fires when an entry is written
	EventCacheStore = "cache.store"
)

// --- Status Attributes ---

const (
	// AttrStatus is the span status (ok, error, unset)
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status.description"
)
