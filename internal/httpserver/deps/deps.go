package deps

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/index"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/scanner"
)

// DayLookup is the proxy/cache core as seen by the day handler.
type DayLookup interface {
	Lookup(ctx context.Context, venueID, date string) (domain.DayPayload, error)
}

// ScanController is the orchestrator surface exposed over HTTP.
type ScanController interface {
	Start(venueID string) error
	Cancel()
	Snapshot() scanner.Snapshot
}

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	BuildDate     string
	GoVersion     string
	DayService    DayLookup
	Scanner       ScanController
	VenueIndex    *index.VenueIndex
	RedisClient   *redis.Client // nil when the in-memory cache is used
	CacheBackend  string        // "memory" | "redis"
	ReloadTrigger chan struct{} // Channel to trigger manual venue reload
}
