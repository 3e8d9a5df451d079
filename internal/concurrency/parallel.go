package concurrency

import (
	"context"
	"sync"
)

// Options configures bounded-parallel processing.
type Options struct {
	MaxWorkers int
}

// DefaultOptions keeps the fan-out polite: the portal is a shared production
// system and more than a handful of concurrent page fetches gets throttled.
func DefaultOptions() Options {
	return Options{MaxWorkers: 4}
}

type indexed[R any] struct {
	index  int
	result R
	err    error
}

// Map processes items with a bounded worker pool and returns the results in
// input order. Errors are collected per item rather than short-circuiting,
// so one failed fetch does not discard the pages already scraped; the caller
// decides whether any error is fatal.
func Map[T any, R any](
	ctx context.Context,
	items []T,
	opts Options,
	fn func(ctx context.Context, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	workers := opts.MaxWorkers
	if workers <= 0 {
		workers = DefaultOptions().MaxWorkers
	}
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan int, len(items))
	out := make(chan indexed[R], len(items))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					out <- indexed[R]{index: i, err: ctx.Err()}
				default:
					r, err := fn(ctx, items[i])
					out <- indexed[R]{index: i, result: r, err: err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]R, len(items))
	var errs []error
	for res := range out {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		results[res.index] = res.result
	}
	return results, errs
}
