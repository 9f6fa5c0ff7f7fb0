package handlers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/flow"
	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/texts"
)

// textContext fakes the few context methods the owner text handler touches.
// Calls to anything else panic through the embedded nil interface.
type textContext struct {
	telebot.Context
	sender *telebot.User
	text   string
	sent   []string
}

func (c *textContext) Sender() *telebot.User { return c.sender }
func (c *textContext) Text() string          { return c.text }

func (c *textContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func newFlowDeps(t *testing.T, ownerID int64) *Deps {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)
	settings, err := storage.NewSettingsRepository(store, log)
	require.NoError(t, err)

	return &Deps{
		Log:      log,
		Texts:    texts.NewStore(),
		Settings: settings,
		Flow:     flow.NewMachine(flow.NewMemoryStorage(), log),
		OwnerID:  ownerID,
	}
}

func TestOwnerTextHandler_NonOwnerTextLeavesSlotArmed(t *testing.T) {
	const ownerID = int64(1000)
	d := newFlowDeps(t, ownerID)
	ctx := context.Background()

	require.NoError(t, d.Flow.Begin(ctx, ownerID, flow.StepCooldown))

	handler := NewOwnerTextHandler(d)
	stranger := &textContext{sender: &telebot.User{ID: 42}, text: "15"}
	require.NoError(t, handler(stranger))

	// The stranger's text is ignored and nothing was sent back.
	assert.Empty(t, stranger.sent)

	// The owner's pending step is still armed and consumable.
	step, ok, err := d.Flow.Take(ctx, ownerID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, flow.StepCooldown, step)
}

func TestOwnerTextHandler_OwnerTextConsumesSlot(t *testing.T) {
	const ownerID = int64(1000)
	d := newFlowDeps(t, ownerID)
	ctx := context.Background()

	require.NoError(t, d.Flow.Begin(ctx, ownerID, flow.StepCooldown))

	handler := NewOwnerTextHandler(d)
	owner := &textContext{sender: &telebot.User{ID: ownerID}, text: "15"}
	require.NoError(t, handler(owner))

	assert.Equal(t, 15, d.Settings.Snapshot().CooldownSeconds)

	// The slot is spent; a second message is plain text again.
	_, ok, err := d.Flow.Take(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, ok)
}
