package venues

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// Mapper converts venues.yaml entries to domain.Venue entities
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapVenues converts a parsed venue file to []*domain.Venue.
// Entries without an id are skipped; a missing or non-positive limit_days
// falls back to domain.DefaultLimitDays.
func (m *Mapper) MapVenues(f File) ([]*domain.Venue, error) {
	var out []*domain.Venue

	for _, e := range f.Venues {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			continue
		}

		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = id
		}

		limit := e.LimitDays
		if limit <= 0 {
			limit = domain.DefaultLimitDays
		}

		out = append(out, &domain.Venue{
			ID:        id,
			Name:      name,
			LimitDays: limit,
		})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no valid venues found in venue file")
	}

	return out, nil
}
