// Package fanout runs independent loads concurrently with a worker limit.
// The board uses it to read the group and todo collections in parallel
// during start-up; results come back in input order so callers can pair
// them with the request that produced them.
package fanout

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns one Result per item in input order. A failing item does not stop
// the others. Items not yet started when ctx is canceled record ctx.Err()
// without calling fn.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			results[i] = Result[R]{Err: err}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Task is a named unit of work for All.
type Task[R any] struct {
	Name string
	Fn   func(context.Context) (R, error)
}

// TaskError reports which task failed.
type TaskError struct {
	Name string
	Err  error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// All runs every task concurrently and returns their values in order. When
// one or more tasks fail, the first failure in input order is returned as a
// *TaskError and the values are nil.
func All[R any](ctx context.Context, tasks []Task[R]) ([]R, error) {
	results := Run(ctx, len(tasks), tasks, func(ctx context.Context, t Task[R]) (R, error) {
		return t.Fn(ctx)
	})

	values := make([]R, len(results))
	for i, r := range results {
		if r.Err != nil {
			return nil, &TaskError{Name: tasks[i].Name, Err: r.Err}
		}
		values[i] = r.Value
	}
	return values, nil
}
