package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
)

type scanRequest struct {
	VenueID string `json:"venueId"`
}

// ScanStart begins a scan run for a venue, superseding any run in flight.
func ScanStart(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scanRequest
		_ = json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes)).Decode(&req)

		if err := d.Scanner.Start(req.VenueID); err != nil {
			d.Logger.Debug("scan start rejected",
				logger.Error(err))
			writeError(w, http.StatusBadRequest, "invalid body, expect { venueId: string }")
			return
		}

		writeJSON(w, http.StatusAccepted, d.Scanner.Snapshot())
	}
}

// ScanCancel stops the active run, if any. Idempotent.
func ScanCancel(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Scanner.Cancel()
		w.WriteHeader(http.StatusNoContent)
	}
}

// ScanStatus returns the current run snapshot.
func ScanStatus(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Scanner.Snapshot())
	}
}
