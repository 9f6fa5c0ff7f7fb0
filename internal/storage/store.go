// Package storage persists the bot's state as JSON documents in a single
// directory. Each document is guarded by its owning repository and flushed
// synchronously on every mutation.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Document file names inside the data directory.
const (
	SettingsFile      = "settings.json"
	UsersFile         = "users.json"
	BansFile          = "bans.json"
	StyleCacheFile    = "styles_cache.json"
	UsernameCacheFile = "username_cache.json"
)

// Store reads and writes JSON documents under a data directory.
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore creates the data directory if needed and returns a Store.
func NewStore(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return &Store{dir: dir, log: log}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Load decodes the named document into v. A missing file leaves v untouched
// so callers keep their defaults; an unreadable file is logged and likewise
// ignored, matching the defaults-on-failure policy of the original data files.
func (s *Store) Load(name string, v any) error {
	path := filepath.Join(s.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		s.log.Warn("failed to read document, using defaults", slog.String("file", name), slog.Any("error", err))
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("failed to decode document, using defaults", slog.String("file", name), slog.Any("error", err))
		return nil
	}

	return nil
}

// Save writes v as indented JSON. The write goes to a temp file first and is
// renamed into place so a failure never truncates the previous document.
func (s *Store) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}

	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}

	return nil
}

// HealthCheck verifies that the data directory is writable.
func (s *Store) HealthCheck() error {
	probe := filepath.Join(s.dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	return os.Remove(probe)
}
