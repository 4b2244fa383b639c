package integrations

import (
	"context"
	"errors"
	"time"
)

// Feed endpoints fail in short bursts more often than they stay down, so the
// base client retries transient failures a few times before giving up on a
// render.
const (
	fetchAttempts     = 3
	fetchInitialDelay = time.Second
)

// RetryableError marks a fetch failure as transient. The base client wraps
// connection errors and 5xx statuses with it; any other error aborts the
// fetch on the first attempt.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// retryFetch runs fetch under the client's backoff policy.
func retryFetch(ctx context.Context, fetch func() error) error {
	return retry(ctx, fetchAttempts, fetchInitialDelay, fetch)
}

// retry runs fn up to attempts times, doubling delay between tries. Only
// errors wrapped in [RetryableError] are retried; the last of them is
// returned once the attempts are spent. Cancelling ctx ends the wait early
// with ctx.Err().
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.As(err, new(*RetryableError)) || attempt >= attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
