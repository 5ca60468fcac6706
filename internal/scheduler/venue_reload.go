package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/index"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/sources/venues"
)

// VenueReloader handles periodic reloading of the venue file
type VenueReloader struct {
	loader        *venues.Loader
	mapper        *venues.Mapper
	index         *index.VenueIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewVenueReloader creates a new venue reloader
func NewVenueReloader(
	venueFile string,
	idx *index.VenueIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *VenueReloader {
	return &VenueReloader{
		loader:        venues.NewLoader(venueFile),
		mapper:        venues.NewMapper(),
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start begins the periodic reload process
func (vr *VenueReloader) Start(ctx context.Context) error {
	// Load immediately on start
	if err := vr.Reload(ctx); err != nil {
		return fmt.Errorf("initial venue load failed: %w", err)
	}

	// Start periodic reload
	ticker := time.NewTicker(vr.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := vr.Reload(ctx); err != nil {
					vr.logger.Error("failed to reload venues",
						logger.Error(err))
				}
			case <-vr.manualTrigger:
				vr.logger.Info("manual venue reload triggered")
				if err := vr.Reload(ctx); err != nil {
					vr.logger.Error("failed to reload venues",
						logger.Error(err))
				}
			case <-vr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader
func (vr *VenueReloader) Stop() {
	close(vr.stopCh)
}

// Reload loads the venue file and replaces the index contents.
// A load or mapping failure leaves the previous index untouched.
func (vr *VenueReloader) Reload(ctx context.Context) error {
	_ = ctx

	f, err := vr.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load venues: %w", err)
	}

	newVenues, err := vr.mapper.MapVenues(f)
	if err != nil {
		return fmt.Errorf("failed to map venues: %w", err)
	}

	vr.index.UpdateVenues(newVenues)

	vr.logger.Info("venues loaded",
		logger.Int("count", len(newVenues)))

	return nil
}
