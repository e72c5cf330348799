package result

import (
	"context"
	"log/slog"

	"github.com/next-trace/scg-result/contract"
	apiError "github.com/next-trace/scg-result/error"
)

// Result is the outcome of an operation that produces no value: either a
// success, or a failure carrying one or more Errors in order.
//
// The zero value is a success. A Result never changes after construction.
type Result struct {
	errs []*apiError.Error // empty iff success
}

var _ contract.Outcome = Result{}

// Success returns a successful Result.
func Success() Result { return Result{} }

// FromError returns a failed Result holding e.
// It panics with ErrNilError if e is nil.
func FromError(e *apiError.Error) Result {
	return Result{errs: failureOf([]*apiError.Error{e})}
}

// FromErrors returns a failed Result holding a copy of errs, order preserved.
// It panics with ErrNoErrors if errs is empty and with ErrNilError if any
// element is nil.
func FromErrors(errs ...*apiError.Error) Result {
	return Result{errs: failureOf(errs)}
}

// FromFault returns a failed Result holding one Error per fault in err's
// chain, outermost first (see fault.MapChain).
// It panics with ErrNilFault if err is nil; use Check to treat nil as success.
func FromFault(err error) Result {
	return Result{errs: failureOfFault(err)}
}

// Check converts a Go error return into a Result: nil is a success, anything
// else is FromFault(err).
func Check(err error) Result {
	if err == nil {
		return Success()
	}

	return FromFault(err)
}

func (r Result) IsError() bool   { return len(r.errs) > 0 }
func (r Result) IsSuccess() bool { return len(r.errs) == 0 }

// Errors returns a copy of the error list; it is empty, never nil, on success.
func (r Result) Errors() []*apiError.Error { return cloneErrors(r.errs) }

// ErrorList returns a copy of the error list and true on failure, or nil and
// false on success.
func (r Result) ErrorList() ([]*apiError.Error, bool) { return errorList(r.errs) }

// Err returns nil on success, otherwise a *multierror.Error holding every
// Error. errors.Is and errors.As reach each Error and its cause.
func (r Result) Err() error { return aggregate(r.errs) }

// Switch calls onSuccess or onError, never both.
func (r Result) Switch(onSuccess func(), onError func([]*apiError.Error)) {
	if r.IsError() {
		onError(cloneErrors(r.errs))
		return
	}

	onSuccess()
}

// SwitchAsync calls onSuccess or onError with ctx, never both, and returns the
// error of the branch that ran. The branch is chosen before it starts and ctx
// is passed through untouched.
func (r Result) SwitchAsync(
	ctx context.Context,
	onSuccess func(context.Context) error,
	onError func(context.Context, []*apiError.Error) error,
) error {
	if r.IsError() {
		return onError(ctx, cloneErrors(r.errs))
	}

	return onSuccess(ctx)
}

// MatchErrors returns onError(errors) on failure. On success onError is not
// called and an empty list is returned.
func (r Result) MatchErrors(onError func([]*apiError.Error) []*apiError.Error) []*apiError.Error {
	if r.IsError() {
		return onError(cloneErrors(r.errs))
	}

	return []*apiError.Error{}
}

// MatchErrorsAsync is MatchErrors for a context-bound handler: on failure it
// returns onError(ctx, errors), on success an empty list and a nil error
// without calling onError.
func (r Result) MatchErrorsAsync(
	ctx context.Context,
	onError func(context.Context, []*apiError.Error) ([]*apiError.Error, error),
) ([]*apiError.Error, error) {
	if r.IsError() {
		return onError(ctx, cloneErrors(r.errs))
	}

	return []*apiError.Error{}, nil
}

func (r Result) String() string {
	if r.IsSuccess() {
		return "success"
	}

	return r.Err().Error()
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	if r.IsSuccess() {
		return slog.GroupValue(slog.String("status", "success"))
	}

	return errorsLogValue(r.errs)
}
