package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// Cache is the contract the day service caches normalized payloads behind.
// A Get on an expired or absent key reports a miss, never an error.
type Cache interface {
	Get(ctx context.Context, key string) (domain.DayPayload, bool, error)
	Set(ctx context.Context, key string, payload domain.DayPayload, ttl time.Duration) error
}

// DayKey builds the composite cache key for one venue/date pair.
func DayKey(venueID, date string) string {
	return fmt.Sprintf("day:%s:%s", venueID, date)
}
