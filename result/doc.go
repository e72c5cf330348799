// Package result provides value-based outcomes that replace panics and
// ad-hoc (value, error) plumbing for reporting success or failure.
//
// Two types share one protocol:
//   - Result: success, or failure with one or more Errors
//   - Of[T]: success with a T, or failure with one or more Errors
//
// # Producing
//
// Each input kind has its own constructor:
//
//	result.Success()                  // Result
//	result.FromValue(article)         // Of[Article]
//	result.FromError(e)               // e is *apiError.Error
//	result.ErrorOf[Article](e)
//	result.FromErrors(e1, e2)         // order preserved
//	result.ErrorsOf[Article](e1, e2)
//	result.FromFault(err)             // err and its causes, see fault.MapChain
//	result.FaultOf[Article](err)
//	result.Check(err)                 // nil error means success
//	result.Try(repo.Load(ctx, id))    // (T, error) pair
//
// # Consuming
//
//	if res.IsSuccess() {
//	    use(res.Value())
//	}
//
//	msg := result.Match(res,
//	    func(a Article) string { return a.Title },
//	    func(errs []*apiError.Error) string { return errs[0].Code() },
//	)
//
// Value panics on a failed result; Get is the comma-ok alternative. Errors
// never returns nil. Err folds the errors into a single Go error for callers
// that only speak error.
//
// # Contract violations
//
// Reading the value of a failure, building a failure from no errors, and
// passing nil errors or faults to constructors are programming errors. They
// panic with errors wrapping ErrInvalidOperation, ErrNoErrors, ErrNilError
// and ErrNilFault respectively.
//
// Results are immutable: every slice passed in or handed out is a copy, so a
// result may be shared between goroutines without synchronization.
package result
