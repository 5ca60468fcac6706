package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// Store is a redis-backed day payload cache. TTL handling is delegated to
// redis key expiry, so a Get on a lapsed entry is a plain miss.
type Store struct {
	client *redis.Client
}

// NewStore creates a new redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Get retrieves a cached day payload
func (s *Store) Get(ctx context.Context, key string) (domain.DayPayload, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.DayPayload{}, false, nil // Cache miss
		}
		return domain.DayPayload{}, false, fmt.Errorf("failed to get cached day: %w", err)
	}

	var payload domain.DayPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.DayPayload{}, false, fmt.Errorf("failed to unmarshal cached day: %w", err)
	}

	return payload, true, nil
}

// Set stores a day payload with the given TTL
func (s *Store) Set(ctx context.Context, key string, payload domain.DayPayload, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal day payload: %w", err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache day payload: %w", err)
	}
	return nil
}
