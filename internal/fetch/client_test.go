package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

func TestClientFetchDay(t *testing.T) {
	var gotBody dayRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"venueId":"1476","date":"2025-01-30","courts":[{"court":"Court 1","times":["09:00","10:00"]}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	payload, err := c.FetchDay(context.Background(), "1476", "2025-01-30")
	if err != nil {
		t.Fatalf("FetchDay() error = %v", err)
	}

	if gotBody.VenueID != "1476" || gotBody.Date != "2025-01-30" {
		t.Errorf("request body = %+v", gotBody)
	}
	if payload.VenueID != "1476" || payload.Date != "2025-01-30" {
		t.Errorf("payload identity = %+v", payload)
	}
	if len(payload.Courts) != 1 || len(payload.Courts[0].Times) != 2 {
		t.Errorf("payload courts = %+v", payload.Courts)
	}
}

func TestClientFetchDayStatusError(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantRetryable bool
	}{
		{"rate limited", http.StatusTooManyRequests, true},
		{"server error", http.StatusInternalServerError, true},
		{"bad request", http.StatusBadRequest, false},
		{"not found", http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := New(srv.URL, 5*time.Second)

			_, err := c.FetchDay(context.Background(), "1476", "2025-01-30")
			var statusErr *domain.StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("FetchDay() error = %v, want *domain.StatusError", err)
			}
			if statusErr.Status != tt.status {
				t.Errorf("status = %d, want %d", statusErr.Status, tt.status)
			}
			if statusErr.Retryable() != tt.wantRetryable {
				t.Errorf("Retryable() = %v, want %v", statusErr.Retryable(), tt.wantRetryable)
			}
		})
	}
}

func TestClientFetchDayTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, time.Second)

	_, err := c.FetchDay(context.Background(), "1476", "2025-01-30")
	if err == nil {
		t.Fatal("FetchDay() against a closed server should fail")
	}
	// A transport failure carries no HTTP status, so it must not look
	// retryable to the scanner.
	var statusErr *domain.StatusError
	if errors.As(err, &statusErr) {
		t.Errorf("FetchDay() error = %v, must not be a *domain.StatusError", err)
	}
}

func TestClientFetchDayMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{`))
	}))
	defer srv.Close()

	c := New(srv.URL, 5*time.Second)

	if _, err := c.FetchDay(context.Background(), "1476", "2025-01-30"); err == nil {
		t.Fatal("FetchDay() with a truncated body should fail")
	}
}
