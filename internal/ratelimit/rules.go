package ratelimit

import (
	"errors"
	"time"

	"github.com/raolabs/raobot/pkg/config"
)

// Rules maps commands to their configured flood limits. Flood limits are an
// infrastructure guard and are independent of the owner-tunable cooldown and
// daily quota.
type Rules struct {
	config config.RateLimitConfig
}

// NewRules constructs rate limiting rules from configuration settings.
func NewRules(cfg config.RateLimitConfig) *Rules {
	return &Rules{config: cfg}
}

// IsWhitelisted returns true if the userID bypasses rate limits.
func (r *Rules) IsWhitelisted(userID int64) bool {
	for _, id := range r.config.Whitelist {
		if id == userID {
			return true
		}
	}
	return false
}

// GetCommandLimit returns the limit and window for a specific command. Only
// the commands that call out to external AI services carry dedicated rules.
func (r *Rules) GetCommandLimit(command string) (int, time.Duration, error) {
	switch command {
	case "gen":
		return parseRule(r.config.Commands.Gen)
	case "tts":
		return parseRule(r.config.Commands.TTS)
	case "search":
		return parseRule(r.config.Commands.Search)
	default:
		return 0, 0, errors.New("unsupported command")
	}
}

// GetPerUserLimit returns the per-user rate limiting rule.
func (r *Rules) GetPerUserLimit() (int, time.Duration, error) {
	return parseRule(r.config.PerUser)
}

func parseRule(rule config.RateLimitRule) (int, time.Duration, error) {
	if rule.Window == "" {
		return rule.Limit, 0, errors.New("window duration is not set")
	}
	window, err := time.ParseDuration(rule.Window)
	if err != nil {
		return 0, 0, err
	}
	return rule.Limit, window, nil
}
