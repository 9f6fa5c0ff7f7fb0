package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_BlocksWhenExceeded(t *testing.T) {
	limiter := NewMemoryLimiter(testLogger())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := limiter.Check(ctx, "user:7:gen", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}

	result, err := limiter.Check(ctx, "user:7:gen", 2, time.Minute)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.False(t, result.Allowed)
	assert.Zero(t, result.Remaining)
}

func TestMemoryLimiter_CleanupDropsIdleWindows(t *testing.T) {
	limiter := NewMemoryLimiter(testLogger())
	ctx := context.Background()

	_, err := limiter.Check(ctx, "user:7:gen", 5, time.Minute)
	require.NoError(t, err)
	_, err = limiter.Check(ctx, "user:8:gen", 5, time.Minute)
	require.NoError(t, err)

	limiter.mu.Lock()
	limiter.windows["user:7:gen"].hits = []time.Time{time.Now().Add(-2 * time.Hour)}
	limiter.mu.Unlock()

	limiter.Cleanup(time.Hour)

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.NotContains(t, limiter.windows, "user:7:gen")
	assert.Contains(t, limiter.windows, "user:8:gen")
}
