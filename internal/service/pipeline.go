package service

import "context"

// Step is one stage of a fetch pipeline: a function from the previous
// stage's success value to the next result-or-error. Composing steps keeps
// the then-chain shape explicit instead of burying it in nested callbacks.
type Step[A, B any] func(ctx context.Context, in A) (B, error)

// Then sequences two steps. The second runs only if the first succeeded;
// the first error short-circuits the rest of the chain.
func Then[A, B, C any](first Step[A, B], next Step[B, C]) Step[A, C] {
	return func(ctx context.Context, in A) (C, error) {
		mid, err := first(ctx, in)
		if err != nil {
			var zero C
			return zero, err
		}
		return next(ctx, mid)
	}
}

// Finally attaches a hook that runs after the step regardless of outcome,
// before the result propagates. Used for cleanup such as re-enabling the
// trigger control.
func Finally[A, B any](step Step[A, B], hook func()) Step[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		defer hook()
		return step(ctx, in)
	}
}
