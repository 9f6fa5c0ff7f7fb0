package storage

import (
	"log/slog"
	"sort"
	"strconv"
	"sync"

	"github.com/raolabs/raobot/internal/domain"
)

// UserRepository owns the users document: user id (decimal string) → profile.
type UserRepository struct {
	mu    sync.RWMutex
	store *Store
	log   *slog.Logger
	users map[string]*domain.UserProfile
}

// NewUserRepository loads the users document from disk.
func NewUserRepository(store *Store, log *slog.Logger) (*UserRepository, error) {
	if log == nil {
		log = slog.Default()
	}

	r := &UserRepository{
		store: store,
		log:   log,
		users: make(map[string]*domain.UserProfile),
	}

	if err := store.Load(UsersFile, &r.users); err != nil {
		return nil, err
	}

	return r, nil
}

// Find returns a copy of the profile for id, if present.
func (r *UserRepository) Find(id int64) (*domain.UserProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.users[userKey(id)]
	if !ok {
		return nil, false
	}

	cp := copyProfile(p)
	return &cp, true
}

// Put stores the profile for id and flushes the document.
func (r *UserRepository) Put(id int64, profile *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := copyProfile(profile)
	r.users[userKey(id)] = &cp

	return r.flushLocked()
}

// Mutate applies fn to the stored profile under the repository lock, then
// flushes. It reports false without error when the profile does not exist.
func (r *UserRepository) Mutate(id int64, fn func(*domain.UserProfile)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.users[userKey(id)]
	if !ok {
		return false, nil
	}

	fn(p)
	return true, r.flushLocked()
}

// Delete removes the profile for id. It reports whether an entry was removed.
func (r *UserRepository) Delete(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userKey(id)
	if _, ok := r.users[key]; !ok {
		return false, nil
	}

	delete(r.users, key)
	return true, r.flushLocked()
}

// DeleteAll clears every profile.
func (r *UserRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = make(map[string]*domain.UserProfile)
	return r.flushLocked()
}

// IDs returns every known user id in ascending order.
func (r *UserRepository) IDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.users))
	for key := range r.users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of known users.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

func (r *UserRepository) flushLocked() error {
	if err := r.store.Save(UsersFile, r.users); err != nil {
		r.log.Error("failed to persist users", slog.Any("error", err))
		return err
	}
	return nil
}

func userKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func copyProfile(p *domain.UserProfile) domain.UserProfile {
	cp := *p
	cp.History = append([]string(nil), p.History...)
	return cp
}
