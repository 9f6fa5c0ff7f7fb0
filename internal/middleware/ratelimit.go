// Package middleware holds cross-cutting wrappers applied around bot
// handlers: flood limiting, metrics, and duplicate-update suppression.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/ratelimit"
)

// RateLimitMiddleware enforces flood limits for incoming Telegram updates.
// It is the bot's guard against hammering, separate from the owner-tunable
// cooldown and daily quota.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	rules   *ratelimit.Rules
	log     *slog.Logger
}

// NewRateLimitMiddleware constructs a rate-limit middleware component.
func NewRateLimitMiddleware(limiter ratelimit.Limiter, rules *ratelimit.Rules, log *slog.Logger) *RateLimitMiddleware {
	if log == nil {
		log = slog.Default()
	}

	return &RateLimitMiddleware{
		limiter: limiter,
		rules:   rules,
		log:     log,
	}
}

// Handle returns a telebot middleware enforcing the per-user flood limit.
func (m *RateLimitMiddleware) Handle(next telebot.HandlerFunc) telebot.HandlerFunc {
	return m.wrap(next, "")
}

// ForCommand returns a telebot middleware enforcing a dedicated flood rule
// for one command, e.g. the image generation endpoint.
func (m *RateLimitMiddleware) ForCommand(command string) func(telebot.HandlerFunc) telebot.HandlerFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return m.wrap(next, command)
	}
}

func (m *RateLimitMiddleware) wrap(next telebot.HandlerFunc, command string) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		if m.limiter == nil || m.rules == nil {
			return next(c)
		}

		sender := c.Sender()
		if sender == nil {
			return next(c)
		}

		userID := sender.ID
		if m.rules.IsWhitelisted(userID) {
			return next(c)
		}

		limit, window, err := m.limitFor(command)
		if err != nil {
			m.log.Error("failed to load rate limit rule",
				slog.Int64("user_id", userID),
				slog.String("command", command),
				slog.Any("error", err),
			)
			return next(c)
		}

		key := m.keyFor(command, userID)
		result, err := m.limiter.Check(context.Background(), key, limit, window)
		if err != nil {
			m.log.Warn("rate limiter error", slog.Int64("user_id", userID), slog.Any("error", err))
			return next(c)
		}

		if !result.Allowed {
			m.log.Warn("rate limit exceeded",
				slog.Int64("user_id", userID),
				slog.String("command", command),
			)
			return c.Send("⏳ Too many requests. Try again later.")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) limitFor(command string) (int, time.Duration, error) {
	if command == "" {
		return m.rules.GetPerUserLimit()
	}
	return m.rules.GetCommandLimit(command)
}

func (m *RateLimitMiddleware) keyFor(command string, userID int64) string {
	if command == "" {
		return fmt.Sprintf("user:%d", userID)
	}
	return fmt.Sprintf("cmd:%s:%d", command, userID)
}
