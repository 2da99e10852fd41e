package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"techblog/internal/apperr"

	"github.com/redis/go-redis/v9"
)

// CapStore tracks how much capped reputation a user has been credited
// within a daily bucket.
type CapStore interface {
	// Consume credits up to amount points against the user's remaining
	// headroom for the bucket and returns the portion that fits. A
	// negative amount releases headroom (an upvote was revoked) and is
	// always applied in full.
	Consume(ctx context.Context, userID uint, bucket string, amount, limit int) (int, error)
}

// RedisCapStore keeps per-day counters in redis with an expiry well past
// the bucket's end.
type RedisCapStore struct {
	client *redis.Client
}

func NewRedisCapStore(client *redis.Client) *RedisCapStore {
	return &RedisCapStore{client: client}
}

func capKey(userID uint, bucket string) string {
	return fmt.Sprintf("rep:cap:%d:%s", userID, bucket)
}

func (s *RedisCapStore) Consume(ctx context.Context, userID uint, bucket string, amount, limit int) (int, error) {
	key := capKey(userID, bucket)

	newVal, err := s.client.IncrBy(ctx, key, int64(amount)).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: cap counter: %v", apperr.ErrStorage, err)
	}
	s.client.Expire(ctx, key, 48*time.Hour)

	if amount < 0 {
		// Headroom release; clamp the counter at zero.
		if newVal < 0 {
			s.client.IncrBy(ctx, key, -newVal)
		}
		return amount, nil
	}

	if newVal > int64(limit) {
		over := newVal - int64(limit)
		if over > int64(amount) {
			over = int64(amount)
		}
		s.client.DecrBy(ctx, key, over)
		return amount - int(over), nil
	}
	return amount, nil
}

// MemoryCapStore is the in-process CapStore used by tests and the seeder.
type MemoryCapStore struct {
	mu   sync.Mutex
	used map[string]int
}

func NewMemoryCapStore() *MemoryCapStore {
	return &MemoryCapStore{used: make(map[string]int)}
}

func (s *MemoryCapStore) Consume(_ context.Context, userID uint, bucket string, amount, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := capKey(userID, bucket)
	used := s.used[key]

	if amount < 0 {
		used += amount
		if used < 0 {
			used = 0
		}
		s.used[key] = used
		return amount, nil
	}

	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	applied := amount
	if applied > remaining {
		applied = remaining
	}
	s.used[key] = used + applied
	return applied, nil
}
