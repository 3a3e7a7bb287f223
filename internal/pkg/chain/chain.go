// Package chain runs an ordered list of alternative attempts at the same
// conversation until one succeeds. The backend gateways use it to express
// their retry-across-shape policy (alternative SOAP operation names,
// alternative REST endpoint templates) as data instead of nested error
// handling.
//
// A chain is not a retry loop: each attempt is a different request shape,
// tried exactly once, in order. Backoff and repetition are deliberately
// out of scope.
package chain

import (
	"context"
	"errors"
)

// Attempt performs one conversation and either produces a value or signals
// that the next attempt in the chain should run.
type Attempt[T any] func(ctx context.Context) (T, error)

// First runs the attempts in order and returns the first successful result.
// If every attempt fails, the zero value and the last error are returned.
// A cancelled context stops the chain between attempts.
func First[T any](ctx context.Context, attempts ...Attempt[T]) (T, error) {
	var (
		zero    T
		lastErr error
	)
	for _, attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		v, err := attempt(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("chain: no attempts")
	}
	return zero, lastErr
}

// FirstOr runs the attempts in order and returns the first successful
// result, or fallback when every attempt fails. This is the
// "never hard-fail" variant used by status queries.
func FirstOr[T any](ctx context.Context, fallback T, attempts ...Attempt[T]) T {
	v, err := First(ctx, attempts...)
	if err != nil {
		return fallback
	}
	return v
}
