// Package utils contains small shared helpers for log-safe string handling.
// [TruncateString] bounds diagnostic previews of raw model output and
// [JSONToString] serialises values for logging without error handling at the
// call site.
package utils
