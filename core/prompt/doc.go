// Package prompt builds the outbound recommendation prompts sent to the
// language model. A [Factory] validates the query inputs, selects one of
// the built-in personas, bounds the catalog context and cart detail to a
// small token budget, and renders the instruction text demanding a bare
// JSON array. [NormalizeContext] converts HTML catalog feeds to markdown
// before they enter a prompt.
package prompt
