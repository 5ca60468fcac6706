package dayservice

import (
	"context"
	"strings"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/metrics"
	"github.com/MrSnakeDoc/courtscan/internal/store"
)

// Gateway is the upstream availability source the service shields.
type Gateway interface {
	FetchDay(ctx context.Context, venueID, date string) (domain.DayPayload, error)
}

// Service is the proxy/cache core: it validates requests, serves fresh
// cache entries, and otherwise fetches, normalizes and caches one day of
// availability. Upstream failures are propagated and never cached.
type Service struct {
	cache   store.Cache
	gateway Gateway
	ttl     time.Duration
	logger  logger.Logger
	metrics *metrics.Metrics // optional
}

// New creates a day service. metrics may be nil.
func New(cache store.Cache, gateway Gateway, ttl time.Duration, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		cache:   cache,
		gateway: gateway,
		ttl:     ttl,
		logger:  log,
		metrics: m,
	}
}

// Lookup returns the normalized availability for one venue/date pair.
// Returns domain.ErrInvalidRequest for a bad pair (no upstream call is made)
// and *domain.UpstreamError when the gateway call fails.
func (s *Service) Lookup(ctx context.Context, venueID, date string) (domain.DayPayload, error) {
	venueID = strings.TrimSpace(venueID)
	date = strings.TrimSpace(date)

	if venueID == "" {
		return domain.DayPayload{}, domain.InvalidRequestf("venueId must not be empty")
	}
	if !domain.ValidDateKey(date) {
		return domain.DayPayload{}, domain.InvalidRequestf("date %q is not YYYY-MM-DD", date)
	}

	key := store.DayKey(venueID, date)

	if payload, ok, err := s.cache.Get(ctx, key); err != nil {
		// A broken cache must not take lookups down; fall through to upstream.
		s.logger.Warn("cache read failed",
			logger.String("key", key),
			logger.Error(err))
	} else if ok {
		s.logger.Debug("cache hit",
			logger.String("key", key))
		if s.metrics != nil {
			s.metrics.CacheHits.Inc()
		}
		return payload, nil
	}

	if s.metrics != nil {
		s.metrics.CacheMisses.Inc()
	}

	start := time.Now()
	payload, err := s.gateway.FetchDay(ctx, venueID, date)
	if s.metrics != nil {
		s.metrics.UpstreamSeconds.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.UpstreamRequests.WithLabelValues("error").Inc()
		}
		return domain.DayPayload{}, err
	}
	if s.metrics != nil {
		s.metrics.UpstreamRequests.WithLabelValues("ok").Inc()
	}

	s.logger.Info("day fetched from upstream",
		logger.String("venue_id", venueID),
		logger.String("date", date),
		logger.Int("courts", len(payload.Courts)))

	// Best effort: a failed write only costs us the next lookup.
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		s.logger.Warn("cache write failed",
			logger.String("key", key),
			logger.Error(err))
	}

	return payload, nil
}
