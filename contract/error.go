// Package contract exposes the minimal interfaces used by other packages.
//
// Implementations must be immutable once constructed and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Error is the minimal, stable surface of a single failure record.
//
// Implementations must:
//   - Never change Code, Description or Cause after construction.
//   - Support errors.Unwrap via Unwrap(), returning the originating fault.
//
// The interface intentionally contains only getters and Unwrap to keep
// the API surface minimal and transport-agnostic.
type Error interface {
	error
	Code() string
	Description() string
	// Cause returns the fault the error was derived from, nil when none.
	Cause() error
	Unwrap() error
}

// Outcome is the payload-independent view of a result.
//
// Exactly one of IsError and IsSuccess reports true. Err returns nil on
// success and a non-nil error aggregating every failure otherwise.
type Outcome interface {
	IsError() bool
	IsSuccess() bool
	Err() error
}
