// Package error provides the immutable failure record carried by results.
//
// It defines a single concrete type Error holding a machine-facing code, a
// human-readable description and the optional fault it was derived from,
// with support for errors.Is / errors.As via Unwrap.
package error

import (
	"errors"
	"log/slog"

	"github.com/next-trace/scg-result/contract"
)

// Error is one failure of an operation.
//
// Fields:
//   - Code:        machine-facing code (e.g. "NotFound", "Repo.Load")
//   - Description: human-readable message
//   - Cause:       the fault the error was derived from, if any
type Error struct {
	code        string
	description string
	cause       error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.description == "" {
		return e.code
	}

	return e.code + ": " + e.description
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Is reports whether target is an *Error with the same, non-empty code.
// It lets callers match failures by code through errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}

	return e.code != "" && e.code == t.code
}

// ------ contract.Error getters (a nil *Error reads as empty)

func (e *Error) Code() string {
	if e == nil {
		return ""
	}

	return e.code
}

func (e *Error) Description() string {
	if e == nil {
		return ""
	}

	return e.description
}

func (e *Error) Cause() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}

	attrs := []slog.Attr{
		slog.String("code", e.code),
		slog.String("description", e.description),
	}
	if e.cause != nil {
		attrs = append(attrs, slog.String("cause", e.cause.Error()))
	}

	return slog.GroupValue(attrs...)
}

// ------ core constructors

// New creates a new Error with the provided fields.
// No validation is performed: empty code and description are legal.
// The optional cause parameter (if provided) is stored and exposed via Unwrap().
func New(code, description string, cause ...error) *Error {
	e := &Error{
		code:        code,
		description: description,
	}
	if len(cause) > 0 {
		e.cause = cause[0]
	}

	return e
}
