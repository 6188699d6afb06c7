// Package fanout runs a function over a slice of items on a bounded pool of
// worker goroutines. Results come back in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for one item. Err is non-nil on failure.
type Result[R any] struct {
	Value R
	Err   error
}

// Map calls fn for every item using at most workers goroutines and returns
// one Result per item, indexed like items.
//
// Items not yet handed to a worker when ctx is done are recorded with
// ctx.Err() and fn is not called for them. A call already running is left to
// observe ctx itself. Map blocks until every worker has returned; an empty
// input yields an empty non-nil slice. Values of workers below one are
// treated as one.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = max(1, min(workers, len(items)))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	dispatched := 0
	for dispatched < len(items) {
		if ctx.Err() != nil {
			break
		}
		select {
		case next <- dispatched:
			dispatched++
		case <-ctx.Done():
		}
	}
	close(next)
	wg.Wait()

	for idx := dispatched; idx < len(items); idx++ {
		results[idx] = Result[R]{Err: ctx.Err()}
	}
	return results
}
