package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
)

const maxRequestBytes = 1 << 20

type dayRequest struct {
	VenueID string `json:"venueId"`
	Date    string `json:"date"`
}

// Day serves one venue/date availability lookup through the cache.
func Day(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dayRequest
		// A malformed body decodes to the zero value and fails validation
		// below, matching the contract of one 400 for every bad request.
		_ = json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req)

		payload, err := d.DayService.Lookup(r.Context(), req.VenueID, req.Date)
		if err != nil {
			writeDayError(w, d, err)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}

func writeDayError(w http.ResponseWriter, d deps.Deps, err error) {
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest,
			"invalid body, expect { venueId: string, date: 'YYYY-MM-DD' }")

	case errors.As(err, &upstreamErr):
		// Mirror the upstream status when we have one.
		status := upstreamErr.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		d.Logger.Warn("upstream lookup failed",
			logger.Int("status", upstreamErr.Status),
			logger.Error(err))
		writeError(w, status, fmt.Sprintf("upstream error: %d", status))

	default:
		d.Logger.Error("day lookup failed",
			logger.Error(err))
		writeError(w, http.StatusInternalServerError, "unexpected server error")
	}
}
