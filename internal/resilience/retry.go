// Package resilience retries filesystem operations that fail while another
// process still holds the files, such as removing a project right after
// the build tool exited.
package resilience

import (
	"context"
	"errors"
	"time"
)

// RetryPolicy defines the retry behavior of an operation.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	// BaseDelay is the delay before the first retry. It doubles per retry.
	BaseDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Retryable reports whether err is worth another attempt. Nil retries
	// every error except context errors.
	Retryable func(err error) bool
}

// DefaultRemovePolicy is used for exit-time removal of generated output.
var DefaultRemovePolicy = RetryPolicy{
	MaxRetries: 4,
	BaseDelay:  50 * time.Millisecond,
	MaxDelay:   time.Second,
}

// Retry calls fn until it succeeds, returns a non-retryable error, the
// retries are exhausted or ctx is done. It returns the last error.
func Retry(ctx context.Context, policy RetryPolicy, fn func() error) error {
	var lastErr error

	attempts := max(policy.MaxRetries, 0) + 1
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !policy.retryable(err) {
			return err
		}

		if attempt < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(Backoff(attempt, policy.BaseDelay, policy.MaxDelay)):
			}
		}
	}

	return lastErr
}

// Backoff returns the delay before retry number attempt (zero based):
// baseDelay * 2^attempt, capped at maxDelay.
func Backoff(attempt int, baseDelay, maxDelay time.Duration) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 50 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay >= maxDelay {
			return maxDelay
		}
	}
	return min(delay, maxDelay)
}

func (p RetryPolicy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if p.Retryable == nil {
		return true
	}
	return p.Retryable(err)
}
