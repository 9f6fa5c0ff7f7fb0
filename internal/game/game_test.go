package game

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/user"
)

func newTestService(t *testing.T) (*Service, *user.Service) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	usersRepo, err := storage.NewUserRepository(store, log)
	require.NoError(t, err)

	settings, err := storage.NewSettingsRepository(store, log)
	require.NoError(t, err)

	users := user.NewService(usersRepo, settings, log)

	return NewService(users, log), users
}

func TestService_StartPicksFromPool(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetPicker(func(n int) int { return 0 })

	round := svc.Start(42)
	assert.Equal(t, "Jugadu", round.Word)
	assert.Contains(t, round.Meaning, "Smart solution")
}

func TestService_RevealWithoutRound(t *testing.T) {
	svc, _ := newTestService(t)

	_, ok := svc.Reveal(42)
	assert.False(t, ok)
}

func TestService_RevealAwardsPointOnce(t *testing.T) {
	svc, users := newTestService(t)
	svc.SetPicker(func(n int) int { return 2 })

	started := svc.Start(42)

	round, ok := svc.Reveal(42)
	require.True(t, ok)
	assert.Equal(t, started, round)

	// Showing the meaning again does not farm points.
	_, ok = svc.Reveal(42)
	require.True(t, ok)

	profile, err := users.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.GameScore)
}

func TestService_NewRoundResetsReveal(t *testing.T) {
	svc, users := newTestService(t)
	svc.SetPicker(func(n int) int { return 1 })

	svc.Start(42)
	_, ok := svc.Reveal(42)
	require.True(t, ok)

	svc.Start(42)
	_, ok = svc.Reveal(42)
	require.True(t, ok)

	profile, err := users.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.GameScore)
}
