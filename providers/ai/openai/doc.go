// Package openai implements the [ai.Provider] interface against the OpenAI
// chat-completions API. Requests default to deterministic low-temperature
// sampling suited to structured recommendation output; use the With*
// builder methods to point the provider at any API-compatible endpoint.
package openai
