package flow

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps staged input in process memory. It is the default
// backend when Redis is not configured.
type MemoryStorage struct {
	mu      sync.RWMutex
	pending map[int64]*PendingInput
}

// NewMemoryStorage constructs an in-memory Storage implementation.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		pending: make(map[int64]*PendingInput),
	}
}

// Get returns the pending input or ErrNoPending when absent.
func (s *MemoryStorage) Get(_ context.Context, userID int64) (*PendingInput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pending[userID]
	if !ok {
		return nil, ErrNoPending
	}

	clone := *p

	return &clone, nil
}

// Set replaces the pending input for the user.
func (s *MemoryStorage) Set(_ context.Context, userID int64, pending *PendingInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *pending
	clone.UpdatedAt = time.Now().UTC()
	s.pending[userID] = &clone

	return nil
}

// Clear removes the pending input for the user.
func (s *MemoryStorage) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, userID)

	return nil
}
