package result

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	pkgerrors "github.com/pkg/errors"

	apiError "github.com/next-trace/scg-result/error"
	"github.com/next-trace/scg-result/fault"
)

// Contract violations. They are raised with panic, wrapped with a stack, and
// never returned.
var (
	// ErrInvalidOperation is raised when the value of a failed result is read.
	ErrInvalidOperation = errors.New("result: invalid operation")

	// ErrNoErrors is raised when a failure is built from an empty error list.
	ErrNoErrors = errors.New("result: failure without errors")

	// ErrNilError is raised when a nil *Error is handed to a constructor.
	ErrNilError = errors.New("result: nil error")

	// ErrNilFault is raised when a nil fault is handed to FromFault or FaultOf.
	ErrNilFault = errors.New("result: nil fault")
)

// failureOf validates and copies errs for storage in a failed result.
func failureOf(errs []*apiError.Error) []*apiError.Error {
	if len(errs) == 0 {
		panic(pkgerrors.Wrap(ErrNoErrors, "building failure"))
	}

	for i, e := range errs {
		if e == nil {
			panic(pkgerrors.Wrapf(ErrNilError, "building failure: errors[%d]", i))
		}
	}

	return cloneErrors(errs)
}

func failureOfFault(err error) []*apiError.Error {
	if err == nil {
		panic(pkgerrors.Wrap(ErrNilFault, "building failure"))
	}

	return fault.MapChain(err)
}

// cloneErrors always returns a non-nil slice so callers can range and index
// without nil checks.
func cloneErrors(in []*apiError.Error) []*apiError.Error {
	out := make([]*apiError.Error, len(in))
	copy(out, in)

	return out
}

func errorList(errs []*apiError.Error) ([]*apiError.Error, bool) {
	if len(errs) == 0 {
		return nil, false
	}

	return cloneErrors(errs), true
}

// aggregate folds errs into a single Go error, nil when errs is empty.
func aggregate(errs []*apiError.Error) error {
	if len(errs) == 0 {
		return nil
	}

	merr := &multierror.Error{ErrorFormat: formatErrors}
	for _, e := range errs {
		merr.Errors = append(merr.Errors, e)
	}

	return merr
}

func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%d errors occurred:", len(errs))

	for _, e := range errs {
		b.WriteString("\n\t* ")
		b.WriteString(e.Error())
	}

	return b.String()
}

func errorsLogValue(errs []*apiError.Error) slog.Value {
	attrs := make([]slog.Attr, 0, len(errs))
	for i, e := range errs {
		attrs = append(attrs, slog.Any(strconv.Itoa(i), e))
	}

	return slog.GroupValue(
		slog.String("status", "error"),
		slog.Attr{Key: "errors", Value: slog.GroupValue(attrs...)},
	)
}
