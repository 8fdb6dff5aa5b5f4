// Package workerpool runs bounded concurrent work over a slice.
package workerpool

import (
	"context"
	"fmt"
	"sync"
)

type job[T any] struct {
	index int
	item  T
}

// Map applies fn to every item using at most workers goroutines and returns
// the results in input order. The first error cancels the remaining work and
// is returned together with the index of the item that produced it.
func Map[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]R, len(items))
	jobs := make(chan job[T])

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}
				r, err := fn(ctx, j.item)
				if err != nil {
					fail(fmt.Errorf("item %d: %w", j.index, err))
					continue
				}
				results[j.index] = r
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job[T]{index: i, item: item}:
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
