package result

import (
	"context"

	apiError "github.com/next-trace/scg-result/error"
)

// Match returns onSuccess(value) or onError(errors), whichever matches r.
// Exactly one function is called.
func Match[T, R any](r Of[T], onSuccess func(T) R, onError func([]*apiError.Error) R) R {
	if r.IsError() {
		return onError(cloneErrors(r.errs))
	}

	return onSuccess(r.value)
}

// MatchAsync is Match for branches that block. The branch is selected before
// it starts, runs once on the caller's goroutine with ctx, and its outcome is
// returned as is. Cancellation and timeouts are up to the branches.
func MatchAsync[T, R any](
	ctx context.Context,
	r Of[T],
	onSuccess func(context.Context, T) (R, error),
	onError func(context.Context, []*apiError.Error) (R, error),
) (R, error) {
	if r.IsError() {
		return onError(ctx, cloneErrors(r.errs))
	}

	return onSuccess(ctx, r.value)
}
