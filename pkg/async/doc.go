// Package async runs a computation in its own goroutine and hands back a
// Future for its result.
//
// Async starts fn immediately and returns a *Future. The caller waits with
// Await, selects on Done, or polls with IsComplete. Resolved wraps a result
// that is already known, such as an error raised before any work started.
//
// A context canceled before fn starts completes the future with the context
// error without calling fn. A panic inside fn is recovered and reported as an
// error wrapping ErrPanic, so a misbehaving callback can never leave a Future
// unsettled.
//
// # Usage
//
//	future := async.Async(ctx, payload, func(ctx context.Context, p form.Payload) (submission.Outcome, error) {
//	    return strategy.Send(ctx, p), nil
//	})
//
//	outcome, err := future.Await()
package async
