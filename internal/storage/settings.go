package storage

import (
	"log/slog"
	"sync"

	"github.com/raolabs/raobot/internal/domain"
)

// SettingsRepository owns the singleton settings document.
type SettingsRepository struct {
	mu      sync.RWMutex
	store   *Store
	log     *slog.Logger
	current domain.Settings
}

// NewSettingsRepository loads settings from disk, merging over defaults.
func NewSettingsRepository(store *Store, log *slog.Logger) (*SettingsRepository, error) {
	if log == nil {
		log = slog.Default()
	}

	r := &SettingsRepository{
		store:   store,
		log:     log,
		current: domain.DefaultSettings(),
	}

	if err := store.Load(SettingsFile, &r.current); err != nil {
		return nil, err
	}

	return r, nil
}

// Snapshot returns a deep copy of the current settings.
func (r *SettingsRepository) Snapshot() domain.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySettings(r.current)
}

// Update applies fn to the settings under the lock and flushes to disk. The
// in-memory state only advances when the flush succeeds.
func (r *SettingsRepository) Update(fn func(*domain.Settings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := copySettings(r.current)
	fn(&next)

	if err := r.store.Save(SettingsFile, next); err != nil {
		r.log.Error("failed to persist settings", slog.Any("error", err))
		return err
	}

	r.current = next
	return nil
}

func copySettings(s domain.Settings) domain.Settings {
	out := s
	out.Models = append([]string(nil), s.Models...)
	out.JoinTargets = append([]domain.JoinTarget(nil), s.JoinTargets...)
	return out
}
