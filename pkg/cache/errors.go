package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared by the cache backends.
var (
	// ErrNotFound reports that a backend has no entry for the key.
	ErrNotFound = errors.New("cache entry not found")

	// ErrNetwork reports a transport failure talking to a remote backend.
	// The Redis backend wraps timeouts and connection errors in it.
	ErrNetwork = errors.New("cache backend unreachable")
)

// RetryableError marks an error as transient: a retry may succeed.
type RetryableError struct{ Err error }

// Retryable marks err as transient. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err carries a RetryableError mark.
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// RetryWithBackoff runs fn up to three times, doubling the delay between
// attempts. Only errors marked with [Retryable] trigger another attempt;
// the Redis backend marks transient transport failures that way so a blip
// does not fail a render.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
