// Package recommend orchestrates the recommendation pipeline: derive a
// similarity cache key, serve a fresh cached result when one exists, and
// otherwise render the persona prompt, call the language model, and recover
// records from whatever text comes back. The main entry point is [New];
// [Engine.Recommend] runs one query end to end.
package recommend
