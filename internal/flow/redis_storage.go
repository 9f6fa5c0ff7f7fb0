package flow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pendingKeyPattern = "owner:pending:%d"
	pendingTTL        = time.Hour
)

// RedisStorage persists staged owner input in Redis so a restart does not
// drop an armed step.
type RedisStorage struct {
	client *redis.Client
	log    *slog.Logger
}

// NewRedisStorage initializes a Redis-backed Storage implementation.
func NewRedisStorage(client *redis.Client, log *slog.Logger) *RedisStorage {
	if log == nil {
		log = slog.Default()
	}

	return &RedisStorage{
		client: client,
		log:    log,
	}
}

// Get returns the pending input or ErrNoPending when absent.
func (s *RedisStorage) Get(ctx context.Context, userID int64) (*PendingInput, error) {
	key := pendingKey(userID)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoPending
		}

		s.log.Error("failed to get pending input from redis", "user_id", userID, "error", err)
		return nil, err
	}

	var pending PendingInput
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		s.log.Error("failed to decode pending input", "user_id", userID, "error", err)
		return nil, err
	}

	return &pending, nil
}

// Set saves the pending input with a one-hour TTL.
func (s *RedisStorage) Set(ctx context.Context, userID int64, pending *PendingInput) error {
	pending.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(pending)
	if err != nil {
		s.log.Error("failed to encode pending input", "user_id", userID, "error", err)
		return err
	}

	if err := s.client.Set(ctx, pendingKey(userID), data, pendingTTL).Err(); err != nil {
		s.log.Error("failed to save pending input in redis", "user_id", userID, "error", err)
		return err
	}

	return nil
}

// Clear removes the pending input for the given user.
func (s *RedisStorage) Clear(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, pendingKey(userID)).Err(); err != nil {
		s.log.Error("failed to clear pending input", "user_id", userID, "error", err)
		return err
	}

	return nil
}

func pendingKey(userID int64) string {
	return fmt.Sprintf(pendingKeyPattern, userID)
}
