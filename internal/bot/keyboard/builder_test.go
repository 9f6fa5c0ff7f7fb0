package keyboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raolabs/raobot/internal/domain"
)

func TestMainMenu(t *testing.T) {
	b := NewBuilder(nil)

	markup := b.MainMenu(false, true)
	require.Len(t, markup.InlineKeyboard, 5)
	assert.Equal(t, CallbackMenuStyle, markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, CallbackMenuModel, markup.InlineKeyboard[0][1].Data)
	assert.Equal(t, "✨ Enhance: ✅ ON", markup.InlineKeyboard[2][0].Text)

	markup = b.MainMenu(true, false)
	require.Len(t, markup.InlineKeyboard, 6)
	assert.Equal(t, "✨ Enhance: ❌ OFF", markup.InlineKeyboard[2][0].Text)
	assert.Equal(t, CallbackOwnerPanel, markup.InlineKeyboard[5][0].Data)
}

func TestGateMenu(t *testing.T) {
	b := NewBuilder(nil)

	targets := make([]domain.JoinTarget, 0, 12)
	for i := 0; i < 12; i++ {
		targets = append(targets, domain.JoinTarget{
			Chat:   fmt.Sprintf("@chan%d", i),
			Invite: fmt.Sprintf("https://t.me/chan%d", i),
		})
	}

	markup := b.GateMenu(targets)

	// 10 join links plus recheck and help rows.
	require.Len(t, markup.InlineKeyboard, 12)
	assert.Equal(t, "https://t.me/chan0", markup.InlineKeyboard[0][0].URL)
	assert.Equal(t, CallbackGateRecheck, markup.InlineKeyboard[10][0].Data)
	assert.Equal(t, CallbackMenuHelp, markup.InlineKeyboard[11][0].Data)
}

func TestGateMenu_SkipsTargetsWithoutInvite(t *testing.T) {
	b := NewBuilder(nil)

	markup := b.GateMenu([]domain.JoinTarget{
		{Chat: "@visible", Invite: "https://t.me/visible"},
		{Chat: "@hidden"},
	})

	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "✅ Join @visible", markup.InlineKeyboard[0][0].Text)
}

func TestStyleMenu_Pagination(t *testing.T) {
	b := NewBuilder(nil)

	names := make([]string, 23)
	for i := range names {
		names[i] = fmt.Sprintf("Style %d", i)
	}

	markup := b.StyleMenu(names, 1)

	// 10 styles, nav row, random row, back row.
	require.Len(t, markup.InlineKeyboard, 13)
	assert.Equal(t, "setstyle:10", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "setstyle:19", markup.InlineKeyboard[9][0].Data)

	nav := markup.InlineKeyboard[10]
	require.Len(t, nav, 3)
	assert.Equal(t, "stylepage:0", nav[0].Data)
	assert.Equal(t, "📄 2/3", nav[1].Text)
	assert.Equal(t, CallbackNoop, nav[1].Data)
	assert.Equal(t, "stylepage:2", nav[2].Data)

	assert.Equal(t, CallbackRandStyle, markup.InlineKeyboard[11][0].Data)
	assert.Equal(t, CallbackBackMain, markup.InlineKeyboard[12][0].Data)
}

func TestStyleMenu_ClampsPage(t *testing.T) {
	b := NewBuilder(nil)

	markup := b.StyleMenu([]string{"One", "Two"}, 99)

	// Single page: styles, nav, random, back.
	require.Len(t, markup.InlineKeyboard, 5)
	nav := markup.InlineKeyboard[2]
	require.Len(t, nav, 1)
	assert.Equal(t, "📄 1/1", nav[0].Text)
}

func TestModelMenu(t *testing.T) {
	b := NewBuilder(nil)

	markup := b.ModelMenu([]string{"flux", "sdxl", "turbo"})
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "setmodel:flux", markup.InlineKeyboard[0][0].Data)
	assert.Equal(t, "setmodel:turbo", markup.InlineKeyboard[2][0].Data)

	markup = b.ModelMenu(nil)
	require.Len(t, markup.InlineKeyboard, 3)
	assert.Equal(t, "setmodel:flux", markup.InlineKeyboard[0][0].Data)
}

func TestOwnerMenu_ToggleLabels(t *testing.T) {
	b := NewBuilder(nil)

	s := domain.DefaultSettings()
	s.BotEnabled = false
	s.JoinGateEnabled = true
	s.JoinGateStrict = false

	markup := b.OwnerMenu(s)

	assert.Equal(t, "🤖 Bot: ❌ OFF", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "🔒 Gate: ✅ ON", markup.InlineKeyboard[2][0].Text)
	assert.Equal(t, "🛡 Strict: ❌", markup.InlineKeyboard[2][1].Text)
	assert.Equal(t, CallbackOwnerResetAll, markup.InlineKeyboard[7][1].Data)
}
