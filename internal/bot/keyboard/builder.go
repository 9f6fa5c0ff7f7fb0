package keyboard

import (
	"log/slog"
	"strconv"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/domain"
)

const stylesPerPage = 10

// gateTargetCap bounds the join buttons shown on the gate keyboard.
const gateTargetCap = 10

// Builder creates the bot's inline keyboards.
type Builder struct {
	log *slog.Logger
}

// NewBuilder returns a new Builder instance.
func NewBuilder(log *slog.Logger) *Builder {
	if log == nil {
		log = slog.Default()
	}
	return &Builder{log: log}
}

// MainMenu builds the control panel keyboard. The owner row appears only for
// the owner; the enhance toggle shows its current state.
func (b *Builder) MainMenu(isOwner, enhanceOn bool) *telebot.ReplyMarkup {
	enhanceLabel := "✨ Enhance: ❌ OFF"
	if enhanceOn {
		enhanceLabel = "✨ Enhance: ✅ ON"
	}

	kb := NewInlineKeyboard().
		AddRow(
			InlineButton{Text: "🎨 Styles", Data: CallbackMenuStyle},
			InlineButton{Text: "🧠 Models", Data: CallbackMenuModel},
		).
		AddRow(
			InlineButton{Text: "☠️ Generate", Data: CallbackGenAsk},
			InlineButton{Text: "📜 History", Data: CallbackMenuHistory},
		).
		AddRow(
			InlineButton{Text: enhanceLabel, Data: CallbackToggleEnhance},
			InlineButton{Text: "🎮 Word Game", Data: CallbackGameStart},
		).
		AddRow(
			InlineButton{Text: "🎙 TTS", Data: CallbackTTSAsk},
			InlineButton{Text: "🔎 Search AI", Data: CallbackSearchAsk},
		).
		AddRow(
			InlineButton{Text: "ℹ️ Help", Data: CallbackMenuHelp},
			InlineButton{Text: "📌 Current", Data: CallbackMenuCurrent},
		)

	if isOwner {
		kb.AddRow(InlineButton{Text: "🧬 Owner Control Room (Root)", Data: CallbackOwnerPanel})
	}

	return kb.Build()
}

// BackMenu builds a single back-to-panel button.
func (b *Builder) BackMenu() *telebot.ReplyMarkup {
	return NewInlineKeyboard().
		AddRow(InlineButton{Text: "🔙 Back", Data: CallbackBackMain}).
		Build()
}

// GateMenu builds the join-gate keyboard: one join link per target, then the
// recheck and help buttons.
func (b *Builder) GateMenu(targets []domain.JoinTarget) *telebot.ReplyMarkup {
	kb := NewInlineKeyboard()

	shown := targets
	if len(shown) > gateTargetCap {
		shown = shown[:gateTargetCap]
	}
	for _, target := range shown {
		if target.Invite == "" {
			continue
		}
		kb.AddRow(InlineButton{Text: "✅ Join " + target.Chat, URL: target.Invite})
	}

	kb.AddRow(InlineButton{Text: "🔄 I Joined (Recheck)", Data: CallbackGateRecheck})
	kb.AddRow(InlineButton{Text: "ℹ️ Help", Data: CallbackMenuHelp})

	return kb.Build()
}

// GameMenu builds the word game keyboard.
func (b *Builder) GameMenu() *telebot.ReplyMarkup {
	return NewInlineKeyboard().
		AddRow(InlineButton{Text: "👀 Show Meaning", Data: CallbackGameShow}).
		AddRow(InlineButton{Text: "🔁 New Word", Data: CallbackGameStart}).
		AddRow(InlineButton{Text: "🔙 Back", Data: CallbackBackMain}).
		Build()
}

// StyleMenu builds one page of the style picker. Style buttons carry the
// index into the full display-name list, so the payload stays short no
// matter how long the style name is.
func (b *Builder) StyleMenu(styleNames []string, page int) *telebot.ReplyMarkup {
	total := len(styleNames)
	pages := (total + stylesPerPage - 1) / stylesPerPage
	if pages < 1 {
		pages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > pages-1 {
		page = pages - 1
	}

	start := page * stylesPerPage
	end := start + stylesPerPage
	if end > total {
		end = total
	}

	kb := NewInlineKeyboard()
	for i := start; i < end; i++ {
		data, err := EncodeCallback(ActionSetStyle, strconv.Itoa(i))
		if err != nil {
			b.log.Warn("style button skipped", slog.Int("index", i), slog.Any("error", err))
			continue
		}
		kb.AddRow(InlineButton{Text: styleNames[i], Data: data})
	}

	kb.AddRow(PaginationButtons(ActionStylePage, page, pages)...)
	kb.AddRow(InlineButton{Text: "🎲 Random Style", Data: CallbackRandStyle})
	kb.AddRow(InlineButton{Text: "🔙 Back", Data: CallbackBackMain})

	return kb.Build()
}

// ModelMenu builds the model picker from the configured model list.
func (b *Builder) ModelMenu(models []string) *telebot.ReplyMarkup {
	if len(models) == 0 {
		models = []string{"flux", "sdxl"}
	}

	kb := NewInlineKeyboard()
	for _, model := range models {
		data, err := EncodeCallback(ActionSetModel, model)
		if err != nil {
			b.log.Warn("model button skipped", slog.String("model", model), slog.Any("error", err))
			continue
		}
		kb.AddRow(InlineButton{Text: model, Data: data})
	}
	kb.AddRow(InlineButton{Text: "🔙 Back", Data: CallbackBackMain})

	return kb.Build()
}

// OwnerMenu builds the owner console keyboard with live toggle labels.
func (b *Builder) OwnerMenu(s domain.Settings) *telebot.ReplyMarkup {
	botLabel := "🤖 Bot: ❌ OFF"
	if s.BotEnabled {
		botLabel = "🤖 Bot: ✅ ON"
	}
	gateLabel := "🔒 Gate: ❌ OFF"
	if s.JoinGateEnabled {
		gateLabel = "🔒 Gate: ✅ ON"
	}
	strictLabel := "🛡 Strict: ❌"
	if s.JoinGateStrict {
		strictLabel = "🛡 Strict: ✅"
	}

	return NewInlineKeyboard().
		AddRow(
			InlineButton{Text: botLabel, Data: CallbackOwnerToggleBot},
			InlineButton{Text: "⏱ Cooldown", Data: CallbackOwnerSetCooldown},
		).
		AddRow(
			InlineButton{Text: "📅 Daily Limit", Data: CallbackOwnerSetDaily},
			InlineButton{Text: "📊 Stats", Data: CallbackOwnerStats},
		).
		AddRow(
			InlineButton{Text: gateLabel, Data: CallbackOwnerToggleGate},
			InlineButton{Text: strictLabel, Data: CallbackOwnerToggleStrict},
		).
		AddRow(
			InlineButton{Text: "➕ Add Join", Data: CallbackOwnerAddJoin},
			InlineButton{Text: "➖ Remove Join", Data: CallbackOwnerRemoveJoin},
		).
		AddRow(
			InlineButton{Text: "📋 List Joins", Data: CallbackOwnerListJoin},
			InlineButton{Text: "🧠 Models", Data: CallbackOwnerModels},
		).
		AddRow(
			InlineButton{Text: "📝 UI Text", Data: CallbackOwnerUIText},
			InlineButton{Text: "🔄 Refresh Styles", Data: CallbackOwnerRefreshStyles},
		).
		AddRow(
			InlineButton{Text: "📢 Broadcast", Data: CallbackOwnerBroadcast},
			InlineButton{Text: "🚫 Ban/Unban", Data: CallbackOwnerBanUnban},
		).
		AddRow(
			InlineButton{Text: "♻️ Reset User", Data: CallbackOwnerResetUser},
			InlineButton{Text: "🧨 Reset ALL", Data: CallbackOwnerResetAll},
		).
		AddRow(InlineButton{Text: "🔙 Back", Data: CallbackBackMain}).
		Build()
}
