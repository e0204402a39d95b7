// Package async runs independent computations on their own goroutines and
// collects their results in submission order.
//
// Async starts a function and returns a *Future; Await blocks until it
// completes. WaitAll awaits a batch of futures and returns results indexed
// like the input regardless of completion order, which is what callers need
// when merging per-item outcomes deterministically.
//
// # Usage
//
//	futures := make([]*async.Future[bool], len(items))
//	for i, item := range items {
//	    futures[i] = async.Async(ctx, item, check)
//	}
//	results, err := async.WaitAll(futures...)
//
// # Error Handling
//
// A future completes with the error returned by its function, or with the
// context error when the context was already cancelled before it started.
// WaitAll waits for every future and returns the first error by index.
package async
