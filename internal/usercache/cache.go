// Package usercache resolves Telegram handles to user ids. The bot only
// learns a handle when its owner talks to the bot, so lookups cover users who
// interacted at least once.
package usercache

import (
	"log/slog"
	"strings"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
)

// Cache records the handle → id mapping for every user seen.
type Cache struct {
	repo *storage.UsernameRepository
	log  *slog.Logger
	now  func() time.Time
}

// NewCache constructs a Cache over the username repository.
func NewCache(repo *storage.UsernameRepository, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}

	return &Cache{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// Observe records the sender's handle. Users without a public username are
// skipped. Failures are logged and swallowed so capture never blocks a
// command.
func (c *Cache) Observe(sender *telebot.User) {
	if sender == nil || sender.Username == "" {
		return
	}

	name := strings.TrimSpace(sender.FirstName)
	if sender.LastName != "" {
		name = strings.TrimSpace(name + " " + sender.LastName)
	}

	entry := domain.UsernameEntry{
		ID:   sender.ID,
		Name: name,
		TS:   c.now().Unix(),
	}

	if err := c.repo.Put(NormalizeHandle(sender.Username), entry); err != nil {
		c.log.Warn("failed to cache username",
			slog.Int64("user_id", sender.ID),
			slog.Any("error", err),
		)
	}
}

// Resolve looks up a handle recorded by Observe.
func (c *Cache) Resolve(handle string) (domain.UsernameEntry, bool) {
	return c.repo.Get(NormalizeHandle(handle))
}

// NormalizeHandle lowercases a handle and strips any @ prefix.
func NormalizeHandle(handle string) string {
	h := strings.TrimSpace(handle)
	h = strings.ReplaceAll(h, "@", "")
	return strings.ToLower(strings.TrimSpace(h))
}
