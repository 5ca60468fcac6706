package handlers

import (
	"net/http"
	"sort"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
)

type venuesResponse struct {
	Venues []*domain.Venue `json:"venues"`
}

// Venues lists the configured venues, sorted by display name.
func Venues(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venues := d.VenueIndex.All()
		sort.Slice(venues, func(i, j int) bool {
			return venues[i].Name < venues[j].Name
		})

		writeJSON(w, http.StatusOK, venuesResponse{Venues: venues})
	}
}
