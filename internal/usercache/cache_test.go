package usercache

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/storage"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	repo, err := storage.NewUsernameRepository(store, log)
	require.NoError(t, err)

	return NewCache(repo, log)
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "raosahab", NormalizeHandle("@RaoSahab"))
	assert.Equal(t, "raosahab", NormalizeHandle("  raosahab  "))
	assert.Equal(t, "raosahab", NormalizeHandle("RAOSAHAB"))
}

func TestCache_ObserveAndResolve(t *testing.T) {
	cache := newTestCache(t)

	cache.Observe(&telebot.User{
		ID:        42,
		Username:  "Alice_W",
		FirstName: "Alice",
		LastName:  "Wonder",
	})

	entry, ok := cache.Resolve("@alice_w")
	require.True(t, ok)
	assert.Equal(t, int64(42), entry.ID)
	assert.Equal(t, "Alice Wonder", entry.Name)
	assert.NotZero(t, entry.TS)
}

func TestCache_ObserveSkipsMissingUsername(t *testing.T) {
	cache := newTestCache(t)

	cache.Observe(&telebot.User{ID: 42, FirstName: "NoHandle"})
	cache.Observe(nil)

	_, ok := cache.Resolve("nohandle")
	assert.False(t, ok)
}

func TestCache_ResolveUnknown(t *testing.T) {
	cache := newTestCache(t)

	_, ok := cache.Resolve("ghost")
	assert.False(t, ok)
}
