package storage

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/domain"
)

func testLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestUserRepository_Persistence(t *testing.T) {
	dir := t.TempDir()
	log := testLog()

	store, err := NewStore(dir, log)
	require.NoError(t, err)

	users, err := NewUserRepository(store, log)
	require.NoError(t, err)

	profile := domain.NewUserProfile(domain.DefaultSettings(), time.Now().Unix())
	profile.Style = "anime"
	require.NoError(t, users.Put(7, profile))

	changed, err := users.Mutate(7, func(p *domain.UserProfile) {
		p.DailyUsed = 3
	})
	require.NoError(t, err)
	assert.True(t, changed)

	// a fresh store over the same directory sees the flushed state
	reopened, err := NewStore(dir, log)
	require.NoError(t, err)
	users2, err := NewUserRepository(reopened, log)
	require.NoError(t, err)

	got, ok := users2.Find(7)
	require.True(t, ok)
	assert.Equal(t, "anime", got.Style)
	assert.Equal(t, 3, got.DailyUsed)
	assert.Equal(t, 1, users2.Count())
	assert.Equal(t, []int64{7}, users2.IDs())
}

func TestUserRepository_DeleteAndDeleteAll(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLog())
	require.NoError(t, err)
	users, err := NewUserRepository(store, testLog())
	require.NoError(t, err)

	defaults := domain.DefaultSettings()
	now := time.Now().Unix()
	require.NoError(t, users.Put(1, domain.NewUserProfile(defaults, now)))
	require.NoError(t, users.Put(2, domain.NewUserProfile(defaults, now)))

	existed, err := users.Delete(1)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = users.Delete(1)
	require.NoError(t, err)
	assert.False(t, existed)

	require.NoError(t, users.DeleteAll())
	assert.Zero(t, users.Count())
}

func TestBanRepository(t *testing.T) {
	dir := t.TempDir()
	log := testLog()

	store, err := NewStore(dir, log)
	require.NoError(t, err)
	bans, err := NewBanRepository(store, log)
	require.NoError(t, err)

	assert.False(t, bans.IsBanned(5))
	require.NoError(t, bans.Ban(5))
	assert.True(t, bans.IsBanned(5))
	assert.Equal(t, 1, bans.Count())

	// banning twice keeps a single entry
	require.NoError(t, bans.Ban(5))
	assert.Equal(t, 1, bans.Count())

	reopened, err := NewStore(dir, log)
	require.NoError(t, err)
	bans2, err := NewBanRepository(reopened, log)
	require.NoError(t, err)
	assert.True(t, bans2.IsBanned(5))

	require.NoError(t, bans2.Unban(5))
	assert.False(t, bans2.IsBanned(5))
}

func TestSettingsRepository_Update(t *testing.T) {
	dir := t.TempDir()
	log := testLog()

	store, err := NewStore(dir, log)
	require.NoError(t, err)
	settings, err := NewSettingsRepository(store, log)
	require.NoError(t, err)

	require.NoError(t, settings.Update(func(s *domain.Settings) {
		s.CooldownSeconds = 45
		s.JoinTargets = append(s.JoinTargets, domain.JoinTarget{
			Chat:   "@raoart",
			Invite: "https://t.me/raoart",
		})
	}))

	reopened, err := NewStore(dir, log)
	require.NoError(t, err)
	settings2, err := NewSettingsRepository(reopened, log)
	require.NoError(t, err)

	snap := settings2.Snapshot()
	assert.Equal(t, 45, snap.CooldownSeconds)
	require.Len(t, snap.JoinTargets, 1)
	assert.Equal(t, "@raoart", snap.JoinTargets[0].Chat)
}

func TestSettingsRepository_SnapshotIsolation(t *testing.T) {
	store, err := NewStore(t.TempDir(), testLog())
	require.NoError(t, err)
	settings, err := NewSettingsRepository(store, testLog())
	require.NoError(t, err)

	snap := settings.Snapshot()
	snap.Models = append(snap.Models, "mutated")

	assert.NotContains(t, settings.Snapshot().Models, "mutated")
}
