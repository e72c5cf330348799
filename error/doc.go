// Package error provides the immutable failure record carried by results.
//
// It exposes a single concrete type Error that implements contract.Error and integrates
// with the standard library's errors helpers (Is/As) via Unwrap.
//
// Key characteristics:
//   - Machine-facing Code and human-readable Description, stored as given
//   - Optional underlying cause preserved for errors.Is / errors.As
//   - errors.Is matches two Errors sharing the same non-empty Code
//   - slog.LogValuer for structured logging
//
// Errors have no setters; once New returns, the value never changes and may be
// shared freely between goroutines.
package error
