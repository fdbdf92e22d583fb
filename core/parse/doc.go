// Package parse recovers structured recommendation records from raw LLM
// text output. Models instructed to return a JSON array routinely wrap it in
// prose or markdown fences, truncate it mid-element, or emit loose objects
// instead of an array, so this package applies a fixed cascade of
// independent extraction strategies — direct parse, bracket extraction,
// object scanning, automatic JSON repair, and line-level salvage — stopping
// at the first one that yields records.
//
// The main entry point is [Records]. It never fails: an empty slice is the
// explicit terminal value for unrecoverable input, and stage-local parse
// failures are absorbed silently. Calls are pure and stateless, safe for
// unlimited concurrent use.
package parse
