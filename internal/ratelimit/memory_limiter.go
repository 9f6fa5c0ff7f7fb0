package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type window struct {
	hits []time.Time
}

// MemoryLimiter keeps sliding windows in process memory. It backs the
// adaptive limiter when Redis is down and is the sole limiter when Redis is
// not configured at all.
type MemoryLimiter struct {
	mu      sync.RWMutex
	windows map[string]*window
	log     *slog.Logger
}

// NewMemoryLimiter returns an in-memory Limiter.
func NewMemoryLimiter(log *slog.Logger) *MemoryLimiter {
	if log == nil {
		log = slog.Default()
	}

	return &MemoryLimiter{
		windows: make(map[string]*window),
		log:     log,
	}
}

// Check enforces a sliding-window limit for the key.
func (m *MemoryLimiter) Check(ctx context.Context, key string, limit int, windowSize time.Duration) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-windowSize)

	w := m.loadOrCreateWindow(key)

	m.mu.Lock()
	defer m.mu.Unlock()

	// Cleanup may have dropped the window between locks.
	if w == nil {
		w = m.ensureWindowLocked(key)
	}

	w.hits = pruneBefore(w.hits, windowStart)
	count := len(w.hits)

	allowed := count < limit
	if allowed {
		w.hits = append(w.hits, now)
		count++
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   allowed,
		Remaining: remaining,
		ResetAt:   windowStart.Add(windowSize),
	}

	if !allowed {
		return result, ErrLimitExceeded
	}

	return result, nil
}

// Janitor calls Cleanup on every interval tick until the context is
// cancelled, so idle senders do not accumulate windows forever.
func (m *MemoryLimiter) Janitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Cleanup(interval)
		}
	}
}

// Cleanup drops windows whose last hit is older than maxAge.
func (m *MemoryLimiter) Cleanup(maxAge time.Duration) {
	if maxAge <= 0 {
		return
	}

	cutoff := time.Now().Add(-maxAge)

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, w := range m.windows {
		if len(w.hits) == 0 {
			delete(m.windows, key)
			continue
		}

		if w.hits[len(w.hits)-1].Before(cutoff) {
			delete(m.windows, key)
		}
	}
}

func (m *MemoryLimiter) loadOrCreateWindow(key string) *window {
	m.mu.RLock()
	w := m.windows[key]
	m.mu.RUnlock()

	if w != nil {
		return w
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if w = m.windows[key]; w == nil {
		w = &window{hits: make([]time.Time, 0, 8)}
		m.windows[key] = w
	}

	return w
}

func (m *MemoryLimiter) ensureWindowLocked(key string) *window {
	if w, ok := m.windows[key]; ok {
		return w
	}

	w := &window{hits: make([]time.Time, 0, 8)}
	m.windows[key] = w
	return w
}

func pruneBefore(hits []time.Time, windowStart time.Time) []time.Time {
	first := 0
	for first < len(hits) && hits[first].Before(windowStart) {
		first++
	}

	if first == 0 {
		return hits
	}

	if first >= len(hits) {
		return hits[:0]
	}

	copy(hits, hits[first:])
	return hits[:len(hits)-first]
}
