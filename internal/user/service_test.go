package user

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	users, err := storage.NewUserRepository(store, log)
	require.NoError(t, err)

	settings, err := storage.NewSettingsRepository(store, log)
	require.NoError(t, err)

	return NewService(users, settings, log)
}

func TestService_GetOrCreateSnapshotsDefaults(t *testing.T) {
	svc := newTestService(t)

	profile, err := svc.GetOrCreate(42)
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.DefaultStyle, profile.Style)
	assert.Equal(t, defaults.DefaultModel, profile.Model)
	assert.Equal(t, defaults.EnhanceDefault, profile.Enhance)
	assert.Empty(t, profile.History)

	again, err := svc.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, profile.CreatedTS, again.CreatedTS)
}

func TestService_RecordPromptCapsHistory(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < domain.HistoryLimit+5; i++ {
		require.NoError(t, svc.RecordPrompt(42, "prompt"))
	}

	profile, err := svc.GetOrCreate(42)
	require.NoError(t, err)
	assert.Len(t, profile.History, domain.HistoryLimit)
}

func TestService_ToggleEnhance(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetOrCreate(42)
	require.NoError(t, err)

	enhance, err := svc.ToggleEnhance(42)
	require.NoError(t, err)
	assert.False(t, enhance)

	enhance, err = svc.ToggleEnhance(42)
	require.NoError(t, err)
	assert.True(t, enhance)
}

func TestService_MutateCreatesMissingProfile(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetStyle(7, "Cyberpunk"))

	profile, err := svc.GetOrCreate(7)
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk", profile.Style)
}

func TestService_ConsumeDaily(t *testing.T) {
	svc := newTestService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return base })

	_, err := svc.GetOrCreate(42)
	require.NoError(t, err)

	limit := domain.DefaultSettings().DailyLimit
	for i := 1; i <= limit; i++ {
		allowed, used, _, err := svc.ConsumeDaily(42)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i, used)
	}

	allowed, used, gotLimit, err := svc.ConsumeDaily(42)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, limit, used)
	assert.Equal(t, limit, gotLimit)

	// Next day the counter resets.
	svc.SetClock(func() time.Time { return base.Add(24 * time.Hour) })

	allowed, used, _, err = svc.ConsumeDaily(42)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, used)
}

func TestService_ConsumeDailyRollsOverAtLocalMidnight(t *testing.T) {
	svc := newTestService(t)

	prev := time.Local
	time.Local = time.FixedZone("UTC+10", 10*60*60)
	t.Cleanup(func() { time.Local = prev })

	// 23:30 local on March 1st and 00:10 local on March 2nd fall on the
	// same UTC calendar day, but the quota bucket follows local midnight.
	evening := time.Date(2026, 3, 1, 23, 30, 0, 0, time.Local)
	svc.SetClock(func() time.Time { return evening })

	_, used, _, err := svc.ConsumeDaily(42)
	require.NoError(t, err)
	assert.Equal(t, 1, used)

	svc.SetClock(func() time.Time { return evening.Add(40 * time.Minute) })

	_, used, _, err = svc.ConsumeDaily(42)
	require.NoError(t, err)
	assert.Equal(t, 1, used, "counter resets when the local date changes")

	profile, err := svc.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", profile.DailyDate)
}

func TestService_ReserveCooldown(t *testing.T) {
	svc := newTestService(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return base })

	_, err := svc.GetOrCreate(42)
	require.NoError(t, err)

	allowed, _, err := svc.ReserveCooldown(42)
	require.NoError(t, err)
	assert.True(t, allowed, "first generation never waits")

	svc.SetClock(func() time.Time { return base.Add(3 * time.Second) })

	allowed, wait, err := svc.ReserveCooldown(42)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 5, wait)

	svc.SetClock(func() time.Time { return base.Add(9 * time.Second) })

	allowed, _, err = svc.ReserveCooldown(42)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestService_Reset(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.SetStyle(42, "Baroque"))
	require.NoError(t, svc.RecordPrompt(42, "a castle"))

	ok, err := svc.Reset(42)
	require.NoError(t, err)
	assert.True(t, ok)

	profile, err := svc.GetOrCreate(42)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings().DefaultStyle, profile.Style)
	assert.Empty(t, profile.History)

	ok, err = svc.Reset(999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_ResetAll(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetOrCreate(1)
	require.NoError(t, err)
	_, err = svc.GetOrCreate(2)
	require.NoError(t, err)
	require.Equal(t, 2, svc.Count())

	require.NoError(t, svc.ResetAll())
	assert.Zero(t, svc.Count())
}
