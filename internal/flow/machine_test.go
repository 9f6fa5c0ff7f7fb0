package flow

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStorageFailure = errors.New("storage error")

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Get(ctx context.Context, userID int64) (*PendingInput, error) {
	args := m.Called(ctx, userID)
	pending, _ := args.Get(0).(*PendingInput)
	return pending, args.Error(1)
}

func (m *mockStorage) Set(ctx context.Context, userID int64, pending *PendingInput) error {
	args := m.Called(ctx, userID, pending)
	return args.Error(0)
}

func (m *mockStorage) Clear(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestMachine_BeginOverwritesPrevious(t *testing.T) {
	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	require.NoError(t, machine.Begin(ctx, 42, StepCooldown))
	require.NoError(t, machine.Begin(ctx, 42, StepBroadcast))

	step, ok, err := machine.Take(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepBroadcast, step)
}

func TestMachine_TakeConsumesOnce(t *testing.T) {
	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	require.NoError(t, machine.Begin(ctx, 42, StepDaily))

	step, ok, err := machine.Take(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepDaily, step)

	step, ok, err = machine.Take(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, step)
}

func TestMachine_TakeWithoutPending(t *testing.T) {
	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	step, ok, err := machine.Take(ctx, 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, step)
}

func TestMachine_PendingIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	require.NoError(t, machine.Begin(ctx, 1, StepModels))

	_, ok, err := machine.Take(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	step, ok, err := machine.Take(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StepModels, step)
}

func TestMachine_Clear(t *testing.T) {
	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	require.NoError(t, machine.Begin(ctx, 42, StepBanUnban))
	require.NoError(t, machine.Clear(ctx, 42))

	_, ok, err := machine.Take(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMachine_TakePropagatesStorageError(t *testing.T) {
	ctx := context.Background()

	ms := new(mockStorage)
	ms.On("Get", mock.Anything, int64(42)).
		Return((*PendingInput)(nil), errStorageFailure).Once()

	machine := NewMachine(ms, testLogger())

	_, ok, err := machine.Take(ctx, 42)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errStorageFailure)
	ms.AssertExpectations(t)
}

func TestMachine_TakeClearsBeforeReturning(t *testing.T) {
	ctx := context.Background()

	ms := new(mockStorage)
	ms.On("Get", mock.Anything, int64(42)).
		Return(&PendingInput{UserID: 42, Step: StepResetUser}, nil).Once()
	ms.On("Clear", mock.Anything, int64(42)).
		Return(errStorageFailure).Once()

	machine := NewMachine(ms, testLogger())

	_, ok, err := machine.Take(ctx, 42)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errStorageFailure)
	ms.AssertExpectations(t)
}

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, cleanup
}

func TestMachine_StepRecorderObservesArmAndConsume(t *testing.T) {
	var events []string
	RegisterStepRecorder(func(step, outcome string) {
		events = append(events, step+"/"+outcome)
	})
	t.Cleanup(func() { RegisterStepRecorder(nil) })

	ctx := context.Background()
	machine := NewMachine(NewMemoryStorage(), testLogger())

	require.NoError(t, machine.Begin(ctx, 1, StepBroadcast))

	_, ok, err := machine.Take(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []string{"broadcast/armed", "broadcast/consumed"}, events)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
