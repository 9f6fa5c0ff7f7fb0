package storage

import (
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/raolabs/raobot/internal/domain"
)

// BanRepository owns the ban list document.
type BanRepository struct {
	mu     sync.RWMutex
	store  *Store
	log    *slog.Logger
	banned map[string]struct{}
}

// NewBanRepository loads the ban list from disk.
func NewBanRepository(store *Store, log *slog.Logger) (*BanRepository, error) {
	if log == nil {
		log = slog.Default()
	}

	doc := domain.BanDocument{Banned: []string{}}
	if err := store.Load(BansFile, &doc); err != nil {
		return nil, err
	}

	banned := make(map[string]struct{}, len(doc.Banned))
	for _, id := range doc.Banned {
		banned[id] = struct{}{}
	}

	return &BanRepository{store: store, log: log, banned: banned}, nil
}

// IsBanned reports whether id is on the ban list.
func (r *BanRepository) IsBanned(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.banned[userKey(id)]
	return ok
}

// Ban adds id to the list. Idempotent.
func (r *BanRepository) Ban(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.banned[userKey(id)] = struct{}{}
	return r.flushLocked()
}

// Unban removes id from the list. Idempotent.
func (r *BanRepository) Unban(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.banned, userKey(id))
	return r.flushLocked()
}

// Count returns the number of banned users.
func (r *BanRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.banned)
}

func (r *BanRepository) flushLocked() error {
	ids := make([]string, 0, len(r.banned))
	for id := range r.banned {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.ParseInt(ids[i], 10, 64)
		b, _ := strconv.ParseInt(ids[j], 10, 64)
		return a < b
	})

	if err := r.store.Save(BansFile, domain.BanDocument{Banned: ids}); err != nil {
		r.log.Error("failed to persist ban list", slog.Any("error", err))
		return err
	}
	return nil
}
