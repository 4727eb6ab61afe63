package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Parallel executes fns concurrently and returns their results in order.
// The shared context is canceled as soon as any function fails.
func Parallel[T any](ctx context.Context, fns ...func(context.Context) (T, error)) ([]T, error) {
	return ParallelMap(ctx, 0, fns, func(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
		return fn(ctx)
	})
}

// ParallelMap applies fn to every item with at most limit goroutines in
// flight (limit <= 0 means unbounded). Results keep the order of items.
func ParallelMap[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	results := make([]R, len(items))
	for i, item := range items {
		g.Go(func() error {
			r, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parallel execution failed: %w", err)
	}
	return results, nil
}
