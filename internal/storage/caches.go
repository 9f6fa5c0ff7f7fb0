package storage

import (
	"log/slog"
	"sync"

	"github.com/raolabs/raobot/internal/domain"
)

// StyleCacheRepository owns the style catalog cache document.
type StyleCacheRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *slog.Logger
	doc   domain.StyleCacheDocument
}

// NewStyleCacheRepository loads the style cache from disk.
func NewStyleCacheRepository(store *Store, log *slog.Logger) (*StyleCacheRepository, error) {
	if log == nil {
		log = slog.Default()
	}

	r := &StyleCacheRepository{
		store: store,
		log:   log,
		doc:   domain.StyleCacheDocument{Styles: []string{}},
	}

	if err := store.Load(StyleCacheFile, &r.doc); err != nil {
		return nil, err
	}

	return r, nil
}

// Get returns a copy of the cached document.
func (r *StyleCacheRepository) Get() domain.StyleCacheDocument {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.doc
	out.Styles = append([]string(nil), r.doc.Styles...)
	return out
}

// Put replaces the cached document and flushes.
func (r *StyleCacheRepository) Put(doc domain.StyleCacheDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Save(StyleCacheFile, doc); err != nil {
		r.log.Error("failed to persist style cache", slog.Any("error", err))
		return err
	}

	r.doc = doc
	r.doc.Styles = append([]string(nil), doc.Styles...)
	return nil
}

// Clear empties the cache so the next load refetches the catalog.
func (r *StyleCacheRepository) Clear() error {
	return r.Put(domain.StyleCacheDocument{Styles: []string{}})
}

// UsernameRepository owns the handle → user id lookup document.
type UsernameRepository struct {
	mu      sync.RWMutex
	store   *Store
	log     *slog.Logger
	entries map[string]domain.UsernameEntry
}

// NewUsernameRepository loads the username cache from disk.
func NewUsernameRepository(store *Store, log *slog.Logger) (*UsernameRepository, error) {
	if log == nil {
		log = slog.Default()
	}

	r := &UsernameRepository{
		store:   store,
		log:     log,
		entries: make(map[string]domain.UsernameEntry),
	}

	if err := store.Load(UsernameCacheFile, &r.entries); err != nil {
		return nil, err
	}

	return r, nil
}

// Get returns the entry for a normalized handle, if present.
func (r *UsernameRepository) Get(handle string) (domain.UsernameEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[handle]
	return e, ok
}

// Put stores the entry for a normalized handle and flushes.
func (r *UsernameRepository) Put(handle string, entry domain.UsernameEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[handle] = entry

	if err := r.store.Save(UsernameCacheFile, r.entries); err != nil {
		r.log.Error("failed to persist username cache", slog.Any("error", err))
		return err
	}
	return nil
}
