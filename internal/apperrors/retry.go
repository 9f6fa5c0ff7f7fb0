package apperrors

import (
	"context"
	"errors"
	"time"
)

// Backoff returns the pause before retry attempt n (1-based). The pause
// widens linearly so a struggling service gets progressively more room.
func Backoff(attempt int) time.Duration {
	return time.Duration(attempt) * time.Second
}

// WithRetry runs fn and retries it up to retries extra times while the error
// is retryable, pausing Backoff between attempts. A nil sleep means
// time.Sleep; tests inject their own to keep runs instant.
func WithRetry(ctx context.Context, retries int, sleep func(time.Duration), fn func() error) error {
	if fn == nil {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			sleep(Backoff(attempt))
		}

		err = fn()
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}
	}

	return err
}

// IsRetryable reports whether err is an AppError marked retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if errors.As(err, &appErr) && appErr != nil {
		return appErr.Retryable
	}

	return false
}
