package result

import (
	"context"
	"fmt"
	"log/slog"

	pkgerrors "github.com/pkg/errors"

	"github.com/next-trace/scg-result/contract"
	apiError "github.com/next-trace/scg-result/error"
)

// Of is the outcome of an operation producing a T: either a success carrying
// the value, or a failure carrying one or more Errors in order. It's named
// "Of" so the qualified name reads result.Of[T].
//
// The zero value is a success holding T's zero value. An Of never changes
// after construction.
type Of[T any] struct {
	value T                 // valid iff errs is empty
	errs  []*apiError.Error // empty iff success
}

var _ contract.Outcome = Of[struct{}]{}

// FromValue returns a success carrying v. Success does not depend on v: a
// false, zero or nil payload is still a success.
func FromValue[T any](v T) Of[T] { return Of[T]{value: v} }

// ErrorOf returns a failed Of holding e.
// It panics with ErrNilError if e is nil.
func ErrorOf[T any](e *apiError.Error) Of[T] {
	return Of[T]{errs: failureOf([]*apiError.Error{e})}
}

// ErrorsOf returns a failed Of holding a copy of errs, order preserved.
// It panics with ErrNoErrors if errs is empty and with ErrNilError if any
// element is nil.
func ErrorsOf[T any](errs ...*apiError.Error) Of[T] {
	return Of[T]{errs: failureOf(errs)}
}

// FaultOf returns a failed Of holding one Error per fault in err's chain,
// outermost first. It panics with ErrNilFault if err is nil.
func FaultOf[T any](err error) Of[T] {
	return Of[T]{errs: failureOfFault(err)}
}

// Try converts a Go (value, error) pair: a nil err gives FromValue(v),
// anything else FaultOf(err) and v is dropped.
func Try[T any](v T, err error) Of[T] {
	if err != nil {
		return FaultOf[T](err)
	}

	return FromValue(v)
}

func (r Of[T]) IsError() bool   { return len(r.errs) > 0 }
func (r Of[T]) IsSuccess() bool { return len(r.errs) == 0 }

// Value returns the stored value. Reading the value of a failed result is a
// programming error: Value panics with an error wrapping ErrInvalidOperation.
func (r Of[T]) Value() T {
	if r.IsError() {
		panic(pkgerrors.Wrapf(ErrInvalidOperation, "Value of failed result (%v)", r.Err()))
	}

	return r.value
}

// Get returns the stored value and true on success, or T's zero value and
// false on failure.
func (r Of[T]) Get() (T, bool) {
	if r.IsError() {
		var zero T
		return zero, false
	}

	return r.value, true
}

// Errors returns a copy of the error list; it is empty, never nil, on success.
func (r Of[T]) Errors() []*apiError.Error { return cloneErrors(r.errs) }

// ErrorList returns a copy of the error list and true on failure, or nil and
// false on success.
func (r Of[T]) ErrorList() ([]*apiError.Error, bool) { return errorList(r.errs) }

// Err returns nil on success, otherwise a *multierror.Error holding every
// Error.
func (r Of[T]) Err() error { return aggregate(r.errs) }

// Void drops the payload.
func (r Of[T]) Void() Result { return Result{errs: r.errs} }

// Switch calls onSuccess with the value or onError with the errors, never both.
func (r Of[T]) Switch(onSuccess func(T), onError func([]*apiError.Error)) {
	if r.IsError() {
		onError(cloneErrors(r.errs))
		return
	}

	onSuccess(r.value)
}

// SwitchAsync is Switch for branches that block: exactly one branch runs with
// ctx and its error is returned.
func (r Of[T]) SwitchAsync(
	ctx context.Context,
	onSuccess func(context.Context, T) error,
	onError func(context.Context, []*apiError.Error) error,
) error {
	if r.IsError() {
		return onError(ctx, cloneErrors(r.errs))
	}

	return onSuccess(ctx, r.value)
}

func (r Of[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("success(%v)", r.value)
	}

	return r.Err().Error()
}

// LogValue implements slog.LogValuer.
func (r Of[T]) LogValue() slog.Value {
	if r.IsSuccess() {
		return slog.GroupValue(slog.String("status", "success"), slog.Any("value", r.value))
	}

	return errorsLogValue(r.errs)
}
