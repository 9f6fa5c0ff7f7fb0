// Package ratelimit implements the flood limiter applied to incoming
// Telegram updates, per sender and per heavy command.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

// Result reports one flood-limit evaluation.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter counts hits for a key inside a sliding window.
type Limiter interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}

// ErrLimitExceeded is returned once a key has spent its window allowance.
var ErrLimitExceeded = errors.New("rate limit exceeded")
