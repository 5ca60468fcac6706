package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// VenueIndex provides in-memory storage and lookup for venues loaded from
// the venue file. The scanner reads from it on every run start.
type VenueIndex struct {
	mu         sync.RWMutex
	venues     map[string]*domain.Venue // ID -> Venue
	lastReload time.Time                // Timestamp of last venues reload
}

// NewVenueIndex creates a new venue index
func NewVenueIndex() *VenueIndex {
	return &VenueIndex{
		venues: make(map[string]*domain.Venue),
	}
}

// UpdateVenues replaces all venues in the index
func (idx *VenueIndex) UpdateVenues(venues []*domain.Venue) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	// Clear and rebuild
	idx.venues = make(map[string]*domain.Venue, len(venues))
	for _, v := range venues {
		idx.venues[v.ID] = v
	}
	idx.lastReload = time.Now()
}

// Get retrieves a venue by ID
func (idx *VenueIndex) Get(id string) (*domain.Venue, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	v, ok := idx.venues[id]
	return v, ok
}

// LimitDays returns the look-ahead window for a venue id, falling back to
// domain.DefaultLimitDays when the venue is unknown.
func (idx *VenueIndex) LimitDays(id string) int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if v, ok := idx.venues[id]; ok && v.LimitDays > 0 {
		return v.LimitDays
	}
	return domain.DefaultLimitDays
}

// All returns all venues
func (idx *VenueIndex) All() []*domain.Venue {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]*domain.Venue, 0, len(idx.venues))
	for _, v := range idx.venues {
		out = append(out, v)
	}
	return out
}

// Count returns the number of venues in the index
func (idx *VenueIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.venues)
}

// LastReload returns the timestamp of the last venues reload
func (idx *VenueIndex) LastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
