package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
	"github.com/MrSnakeDoc/courtscan/internal/httpserver/deps"
	"github.com/MrSnakeDoc/courtscan/internal/logger"
	"github.com/MrSnakeDoc/courtscan/internal/scanner"
)

type stubScanner struct {
	startErr  error
	snapshot  scanner.Snapshot
	started   []string
	cancelled int
}

func (s *stubScanner) Start(venueID string) error {
	s.started = append(s.started, venueID)
	return s.startErr
}

func (s *stubScanner) Cancel() { s.cancelled++ }

func (s *stubScanner) Snapshot() scanner.Snapshot { return s.snapshot }

func scanDeps(sc deps.ScanController) deps.Deps {
	return deps.Deps{
		Logger:  logger.New("error", false),
		Scanner: sc,
	}
}

func TestScanStartAccepted(t *testing.T) {
	stub := &stubScanner{snapshot: scanner.Snapshot{
		VenueID: "1476",
		Running: true,
		Version: 1,
		Days: []domain.DayRecord{
			{Date: "2026-08-30", State: domain.DayIdle},
			{Date: "2026-08-31", State: domain.DayIdle},
		},
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"venueId":"1476"}`))
	rec := httptest.NewRecorder()
	ScanStart(scanDeps(stub))(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	if len(stub.started) != 1 || stub.started[0] != "1476" {
		t.Errorf("started = %v", stub.started)
	}

	var snap scanner.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if !snap.Running || len(snap.Days) != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestScanStartRejected(t *testing.T) {
	stub := &stubScanner{startErr: domain.InvalidRequestf("venueId must not be empty")}

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	ScanStart(scanDeps(stub))(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error != "invalid body, expect { venueId: string }" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestScanCancel(t *testing.T) {
	stub := &stubScanner{}

	req := httptest.NewRequest(http.MethodPost, "/api/scan/cancel", nil)
	rec := httptest.NewRecorder()
	ScanCancel(scanDeps(stub))(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if stub.cancelled != 1 {
		t.Errorf("cancelled = %d, want 1", stub.cancelled)
	}
}

func TestScanStatus(t *testing.T) {
	stub := &stubScanner{snapshot: scanner.Snapshot{
		VenueID: "1476",
		Version: 7,
		Days: []domain.DayRecord{
			{Date: "2026-08-30", State: domain.DaySuccess, Courts: []domain.CourtAvailability{
				{Court: "Court 1", Times: []string{"09:00"}},
			}},
			{Date: "2026-08-31", State: domain.DayEmpty},
		},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/scan", nil)
	rec := httptest.NewRecorder()
	ScanStatus(scanDeps(stub))(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var snap scanner.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Version != 7 || len(snap.Days) != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Days[0].State != domain.DaySuccess {
		t.Errorf("day[0].State = %q", snap.Days[0].State)
	}
}
