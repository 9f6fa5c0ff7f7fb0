package texts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/domain"
)

func TestStore_GetDefaults(t *testing.T) {
	store := NewStore()

	assert.Contains(t, store.Get("help.body"), "Help & Support")
	assert.Equal(t, "no.such.key", store.Get("no.such.key"))
}

func TestLoadFromDir_Overrides(t *testing.T) {
	dir := t.TempDir()
	yaml := "gen:\n  usage: \"custom usage\"\nowner:\n  denied: \"go away\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.yaml"), []byte(yaml), 0o644))

	store, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "custom usage", store.Get("gen.usage"))
	assert.Equal(t, "go away", store.Get("owner.denied"))
	// Untouched keys keep their defaults.
	assert.Contains(t, store.Get("tts.missing"), "/tts")
}

func TestLoadFromDir_MissingDirUsesDefaults(t *testing.T) {
	store, err := LoadFromDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Contains(t, store.Get("help.body"), "Help & Support")
}

func TestStore_Panel(t *testing.T) {
	store := NewStore()
	settings := domain.DefaultSettings()
	profile := domain.UserProfile{Style: "Manga", Model: "flux", Enhance: true}

	panel := store.Panel(settings, profile)
	assert.Contains(t, panel, settings.UITitle)
	assert.Contains(t, panel, "Manga")
	assert.Contains(t, panel, "ON ✅")
	assert.Contains(t, panel, settings.Footer)
}

func TestStore_JoinRequired(t *testing.T) {
	store := NewStore()

	msg := store.JoinRequired(
		[]domain.JoinTarget{{Chat: "@one"}},
		[]domain.JoinTarget{{Chat: "-100555"}},
	)

	assert.Contains(t, msg, "@one")
	assert.Contains(t, msg, "-100555")
	assert.Contains(t, msg, "Missing Join")
	assert.Contains(t, msg, "Verify not possible")
}

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "0s", HumanDuration(0))
	assert.Equal(t, "45s", HumanDuration(45))
	assert.Equal(t, "2m 5s", HumanDuration(125))
}

func TestDailyLimitLabel(t *testing.T) {
	assert.Equal(t, "∞", DailyLimitLabel(0))
	assert.Equal(t, "40", DailyLimitLabel(40))
}
