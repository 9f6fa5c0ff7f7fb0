package handlers

import (
	"log/slog"
	"strings"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/access"
	"github.com/raolabs/raobot/internal/bot/keyboard"
	"github.com/raolabs/raobot/internal/clients"
	"github.com/raolabs/raobot/internal/flow"
	"github.com/raolabs/raobot/internal/game"
	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/styles"
	"github.com/raolabs/raobot/internal/texts"
	"github.com/raolabs/raobot/internal/user"
	"github.com/raolabs/raobot/internal/usercache"
)

// Deps bundles the services every handler draws from.
type Deps struct {
	Log      *slog.Logger
	Texts    *texts.Store
	Keyboard *keyboard.Builder

	Users    *user.Service
	Settings *storage.SettingsRepository
	Bans     *storage.BanRepository
	Gate     *access.Gatekeeper
	Flow     *flow.Machine
	Styles   *styles.Catalog
	Game     *game.Service
	Names    *usercache.Cache

	Images *clients.ImageClient
	TTS    *clients.TTSClient
	Search *clients.SearchClient

	BotName   string
	OwnerID   int64
	Owner     texts.OwnerInfo
	StartedAt time.Time
}

// htmlOpts is the send option set every outgoing message uses.
var htmlOpts = &telebot.SendOptions{
	ParseMode:             telebot.ModeHTML,
	DisableWebPagePreview: true,
}

func (d *Deps) isOwner(id int64) bool {
	return id == d.OwnerID
}

// commandArgs returns everything after the command token, trimmed.
func commandArgs(c telebot.Context) string {
	text := c.Text()
	if idx := strings.IndexAny(text, " \n"); idx != -1 {
		return strings.TrimSpace(text[idx+1:])
	}
	return ""
}
