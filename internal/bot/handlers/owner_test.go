package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/usercache"
)

func TestParseJoinLine(t *testing.T) {
	target, ok := parseJoinLine("@raoart | https://t.me/raoart")
	require.True(t, ok)
	assert.Equal(t, "@raoart", target.Chat)
	assert.Equal(t, "https://t.me/raoart", target.Invite)

	target, ok = parseJoinLine("-1001234567890|http://t.me/+abcdef")
	require.True(t, ok)
	assert.Equal(t, "-1001234567890", target.Chat)

	for _, bad := range []string{
		"@raoart https://t.me/raoart",      // no separator
		"raoart | https://t.me/raoart",     // chat lacks @ or -100 prefix
		"@raoart | t.me/raoart",            // invite not a t.me link
		"@raoart | https://example.com/ch", // invite not a t.me link
		"| https://t.me/raoart",
		"@raoart |",
	} {
		_, ok := parseJoinLine(bad)
		assert.False(t, ok, "expected %q to be rejected", bad)
	}
}

func TestSplitModels(t *testing.T) {
	assert.Equal(t, []string{"flux", "sdxl", "turbo"}, splitModels("flux, sdxl ,turbo"))
	assert.Equal(t, []string{"flux"}, splitModels(",flux,,"))
	assert.Empty(t, splitModels("  ,  "))
}

func TestResolveUserRef(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)
	repo, err := storage.NewUsernameRepository(store, log)
	require.NoError(t, err)

	names := usercache.NewCache(repo, log)
	names.Observe(&telebot.User{ID: 99, Username: "Rao_Sahab", FirstName: "Rao"})

	d := &Deps{Names: names}

	id, ok := d.resolveUserRef("12345")
	require.True(t, ok)
	assert.Equal(t, int64(12345), id)

	id, ok = d.resolveUserRef("@Rao_Sahab")
	require.True(t, ok)
	assert.Equal(t, int64(99), id)

	_, ok = d.resolveUserRef("@nobody")
	assert.False(t, ok)

	_, ok = d.resolveUserRef("not-a-number")
	assert.False(t, ok)
}
