package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStorage_SetAndGet(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())
	ctx := context.Background()

	err := storage.Set(ctx, 123, &PendingInput{UserID: 123, Step: StepUIText})
	require.NoError(t, err)

	result, err := storage.Get(ctx, 123)
	require.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, int64(123), result.UserID)
		assert.Equal(t, StepUIText, result.Step)
		assert.False(t, result.UpdatedAt.IsZero())
	}
}

func TestRedisStorage_GetNotFound(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())

	pending, err := storage.Get(context.Background(), 999)
	assert.Nil(t, pending)
	assert.ErrorIs(t, err, ErrNoPending)
}

func TestRedisStorage_Clear(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())
	ctx := context.Background()

	require.NoError(t, storage.Set(ctx, 5, &PendingInput{UserID: 5, Step: StepAddJoin}))
	require.NoError(t, storage.Clear(ctx, 5))

	_, err := storage.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrNoPending)
}
