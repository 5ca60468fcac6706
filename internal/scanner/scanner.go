package scanner

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/index"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/metrics"
)

// Fetcher is the day endpoint client the scanner drives, one date at a time.
type Fetcher interface {
	FetchDay(ctx context.Context, venueID, date string) (domain.DayPayload, error)
}

// Options tunes the scan cadence. The defaults exist to be polite to a
// rate-sensitive upstream: one fetch in flight at a time, a fixed pause
// between days, and a single spaced retry when the upstream pushes back.
type Options struct {
	ItemDelay  time.Duration // pause after each processed date
	RetryDelay time.Duration // pause before the single 429/5xx retry
}

// Snapshot is a point-in-time view of the current run, safe to hand to any
// observer. Version increases on every record mutation so consumers can
// detect change without comparing records.
type Snapshot struct {
	VenueID string             `json:"venueId"`
	Running bool               `json:"running"`
	Version uint64             `json:"version"`
	Days    []domain.DayRecord `json:"days"`
}

// Scanner walks all future dates of one venue sequentially and tracks a
// per-date state machine (idle -> loading -> success|empty|error). At most
// one run is active; starting a new run cancels and supersedes the old one.
type Scanner struct {
	fetcher Fetcher
	venues  *index.VenueIndex
	logger  logger.Logger
	metrics *metrics.Metrics // optional
	opts    Options

	mu      sync.Mutex
	gen     uint64 // run generation; stale goroutines must not touch state
	cancel  context.CancelFunc
	running bool
	venueID string
	version uint64
	records []domain.DayRecord
	now     func() time.Time
}

// New creates a scanner. metrics may be nil.
func New(fetcher Fetcher, venues *index.VenueIndex, log logger.Logger, m *metrics.Metrics, opts Options) *Scanner {
	return &Scanner{
		fetcher: fetcher,
		venues:  venues,
		logger:  log,
		metrics: m,
		opts:    opts,
		now:     time.Now,
	}
}

// Start begins a run for the venue, superseding any run in flight. The
// whole date range is materialized as idle records before the first fetch,
// so observers see the full expected day count immediately. An empty venue
// id is rejected and nothing is created.
func (s *Scanner) Start(venueID string) error {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return domain.InvalidRequestf("venueId must not be empty")
	}

	limit := s.venues.LimitDays(venueID)

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.gen++
	gen := s.gen

	dates := domain.NextDates(s.now(), limit)
	records := make([]domain.DayRecord, len(dates))
	for i, d := range dates {
		records[i] = domain.DayRecord{Date: d, State: domain.DayIdle}
	}
	s.records = records
	s.venueID = venueID
	s.running = true
	s.version++
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ScanRuns.Inc()
	}
	s.logger.Info("scan started",
		logger.String("venue_id", venueID),
		logger.Int("days", len(dates)))

	go s.run(ctx, gen, venueID, dates)
	return nil
}

// Cancel requests cooperative cancellation of the active run, if any.
// Safe to call repeatedly or with no run in flight. The running flag drops
// immediately; the run goroutine unwinds at its next suspension point.
func (s *Scanner) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.running {
		s.running = false
		s.version++
		s.logger.Info("scan cancelled",
			logger.String("venue_id", s.venueID))
	}
}

// Snapshot returns a copy of the current run state.
func (s *Scanner) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make([]domain.DayRecord, len(s.records))
	copy(days, s.records)

	return Snapshot{
		VenueID: s.venueID,
		Running: s.running,
		Version: s.version,
		Days:    days,
	}
}

// Running reports whether a run is in progress.
func (s *Scanner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

func (s *Scanner) run(ctx context.Context, gen uint64, venueID string, dates []string) {
	defer s.finish(gen, venueID)

	for i, date := range dates {
		if ctx.Err() != nil {
			return
		}
		s.setState(gen, i, domain.DayLoading, nil)

		payload, err := s.fetchWithRetry(ctx, venueID, date)
		switch {
		case ctx.Err() != nil:
			// Cancelled at a suspension point; leave the record as it is and
			// abandon the rest of the run silently.
			return
		case err != nil:
			s.setState(gen, i, domain.DayError, nil)
			s.countDay(domain.DayError)
			s.logger.Warn("day fetch failed",
				logger.String("venue_id", venueID),
				logger.String("date", date),
				logger.Error(err))
		case len(payload.Courts) > 0:
			s.setState(gen, i, domain.DaySuccess, payload.Courts)
			s.countDay(domain.DaySuccess)
		default:
			s.setState(gen, i, domain.DayEmpty, payload.Courts)
			s.countDay(domain.DayEmpty)
		}

		if err := sleepCtx(ctx, s.opts.ItemDelay); err != nil {
			return
		}
	}
}

// fetchWithRetry attempts one fetch, and exactly one more when the first
// attempt failed with 429 or a 5xx. Transport errors are not retried.
func (s *Scanner) fetchWithRetry(ctx context.Context, venueID, date string) (domain.DayPayload, error) {
	payload, err := s.fetcher.FetchDay(ctx, venueID, date)

	var statusErr *domain.StatusError
	if err == nil || !errors.As(err, &statusErr) || !statusErr.Retryable() {
		return payload, err
	}

	s.logger.Debug("retrying day fetch",
		logger.String("venue_id", venueID),
		logger.String("date", date),
		logger.Int("status", statusErr.Status))

	if derr := sleepCtx(ctx, s.opts.RetryDelay); derr != nil {
		return domain.DayPayload{}, derr
	}
	return s.fetcher.FetchDay(ctx, venueID, date)
}

func (s *Scanner) setState(gen uint64, i int, state domain.DayState, courts []domain.CourtAvailability) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return // superseded by a newer run
	}
	s.records[i].State = state
	s.records[i].Courts = courts
	s.version++
}

func (s *Scanner) finish(gen uint64, venueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.running {
		return
	}
	s.running = false
	s.version++
	s.logger.Info("scan finished",
		logger.String("venue_id", venueID))
}

func (s *Scanner) countDay(state domain.DayState) {
	if s.metrics != nil {
		s.metrics.ScanDays.WithLabelValues(string(state)).Inc()
	}
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
