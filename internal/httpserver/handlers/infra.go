package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
)

type componentStatus struct {
	OK           bool   `json:"ok"`
	VenuesLoaded *int   `json:"venues_loaded,omitempty"`
	LastReload   string `json:"last_reload,omitempty"`
	Mode         string `json:"mode,omitempty"`
	Error        string `json:"error,omitempty"`
}

type infraResponse struct {
	Status     string                     `json:"status"`
	Components map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		venueCount := d.VenueIndex.Count()
		lastReload := d.VenueIndex.LastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		scannerMode := "idle"
		if d.Scanner.Snapshot().Running {
			scannerMode = "running"
		}

		components := map[string]componentStatus{
			"venues": {
				OK:           venueCount > 0,
				VenuesLoaded: &venueCount,
				LastReload:   lastReloadStr,
			},
			"cache": checkCache(d),
			"scanner": {
				OK:   true,
				Mode: scannerMode,
			},
		}

		writeJSON(w, http.StatusOK, infraResponse{
			Status:     overallStatus(components),
			Components: components,
		})
	}
}

func overallStatus(components map[string]componentStatus) string {
	if venues, exists := components["venues"]; exists && !venues.OK {
		return "critical" // nothing to scan without venues
	}
	if cache, exists := components["cache"]; exists && !cache.OK {
		return "degraded" // every lookup hits upstream
	}
	return "ok"
}

func checkCache(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:   true,
			Mode: d.CacheBackend,
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:    false,
			Mode:  d.CacheBackend,
			Error: "redis unreachable",
		}
	}

	return componentStatus{
		OK:   true,
		Mode: d.CacheBackend,
	}
}
