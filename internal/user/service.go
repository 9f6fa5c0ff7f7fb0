// Package user provides business operations over user profiles.
package user

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
)

// DailyDateLayout formats the day bucket used for quota rollover.
const DailyDateLayout = "2006-01-02"

// Service provides business operations over user profiles. Profiles are
// created lazily with defaults snapshotted from the current settings.
type Service struct {
	users    *storage.UserRepository
	settings *storage.SettingsRepository
	log      *slog.Logger
	now      func() time.Time
}

// NewService constructs a new Service instance.
func NewService(users *storage.UserRepository, settings *storage.SettingsRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	return &Service{
		users:    users,
		settings: settings,
		log:      log,
		now:      time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// GetOrCreate fetches the profile for id or creates a fresh one when missing.
func (s *Service) GetOrCreate(id int64) (*domain.UserProfile, error) {
	if p, ok := s.users.Find(id); ok {
		return p, nil
	}

	settings := s.settings.Snapshot()
	profile := domain.NewUserProfile(settings, s.now().Unix())

	if err := s.users.Put(id, profile); err != nil {
		s.logError("get_or_create", id, err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	return profile, nil
}

// SetStyle updates the preferred image style for the user.
func (s *Service) SetStyle(id int64, style string) error {
	return s.mutate("set_style", id, func(p *domain.UserProfile) {
		p.Style = style
	})
}

// SetModel updates the preferred image model for the user.
func (s *Service) SetModel(id int64, model string) error {
	return s.mutate("set_model", id, func(p *domain.UserProfile) {
		p.Model = model
	})
}

// ToggleEnhance flips the prompt-enhancement flag and returns the new value.
func (s *Service) ToggleEnhance(id int64) (bool, error) {
	var enhance bool
	err := s.mutate("toggle_enhance", id, func(p *domain.UserProfile) {
		p.Enhance = !p.Enhance
		enhance = p.Enhance
	})

	return enhance, err
}

// SetVoice updates the preferred TTS voice for the user.
func (s *Service) SetVoice(id int64, voice string) error {
	return s.mutate("set_voice", id, func(p *domain.UserProfile) {
		p.TTSVoice = voice
	})
}

// RecordPrompt appends a prompt to the user's bounded history.
func (s *Service) RecordPrompt(id int64, prompt string) error {
	return s.mutate("record_prompt", id, func(p *domain.UserProfile) {
		p.AppendHistory(prompt)
	})
}

// AddGamePoints adds delta to the user's word-game score and returns the new
// total.
func (s *Service) AddGamePoints(id int64, delta int) (int, error) {
	var score int
	err := s.mutate("add_game_points", id, func(p *domain.UserProfile) {
		p.GameScore += delta
		if p.GameScore < 0 {
			p.GameScore = 0
		}
		score = p.GameScore
	})

	return score, err
}

// ConsumeDaily charges one generation against the user's daily quota. The
// day bucket rolls over on first use of a new calendar day. When the quota is
// exhausted it reports allowed=false and leaves the counter untouched; a
// limit of zero means unlimited. The charge is not refunded if a later check
// denies the request.
func (s *Service) ConsumeDaily(id int64) (allowed bool, used, limit int, err error) {
	limit = s.settings.Snapshot().DailyLimit
	// The day bucket follows process-local time, so rollover tracks the
	// host's midnight rather than UTC.
	today := s.now().Local().Format(DailyDateLayout)

	err = s.mutate("consume_daily", id, func(p *domain.UserProfile) {
		if p.DailyDate != today {
			p.DailyDate = today
			p.DailyUsed = 0
		}

		if limit > 0 && p.DailyUsed >= limit {
			allowed = false
			used = p.DailyUsed
			return
		}

		p.DailyUsed++
		allowed = true
		used = p.DailyUsed
	})

	return allowed, used, limit, err
}

// ReserveCooldown enforces the inter-generation cooldown. When the user is
// still cooling down it reports allowed=false with the remaining wait in
// seconds; otherwise it stamps the generation time and allows.
func (s *Service) ReserveCooldown(id int64) (allowed bool, wait int, err error) {
	cooldown := s.settings.Snapshot().CooldownSeconds
	now := s.now().Unix()

	err = s.mutate("reserve_cooldown", id, func(p *domain.UserProfile) {
		elapsed := now - p.LastGenTS
		if cooldown > 0 && p.LastGenTS > 0 && elapsed < int64(cooldown) {
			allowed = false
			wait = cooldown - int(elapsed)
			return
		}

		p.LastGenTS = now
		allowed = true
	})

	return allowed, wait, err
}

// Reset deletes the user's profile; the next interaction recreates it with
// fresh defaults. It reports whether a profile existed.
func (s *Service) Reset(id int64) (bool, error) {
	existed, err := s.users.Delete(id)
	if err != nil {
		s.logError("reset", id, err)
		return false, err
	}

	return existed, nil
}

// ResetAll drops every profile.
func (s *Service) ResetAll() error {
	if err := s.users.DeleteAll(); err != nil {
		s.logError("reset_all", 0, err)
		return err
	}

	return nil
}

// IDs returns every known user id in ascending order.
func (s *Service) IDs() []int64 {
	return s.users.IDs()
}

// Count returns the number of known users.
func (s *Service) Count() int {
	return s.users.Count()
}

func (s *Service) mutate(operation string, id int64, fn func(*domain.UserProfile)) error {
	ok, err := s.users.Mutate(id, fn)
	if err != nil {
		s.logError(operation, id, err)
		return err
	}

	if !ok {
		if _, err := s.GetOrCreate(id); err != nil {
			return err
		}

		if _, err := s.users.Mutate(id, fn); err != nil {
			s.logError(operation, id, err)
			return err
		}
	}

	return nil
}

func (s *Service) logError(operation string, id int64, err error) {
	if err == nil {
		return
	}

	s.log.Error("user service operation failed",
		slog.String("operation", operation),
		slog.Int64("user_id", id),
		slog.Any("error", err),
	)
}
