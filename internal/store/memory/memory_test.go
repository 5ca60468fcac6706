package memory

import (
	"context"
	"testing"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

func payload(venueID, date string) domain.DayPayload {
	return domain.DayPayload{
		VenueID: venueID,
		Date:    date,
		Courts: []domain.CourtAvailability{
			{Court: "Court 1", Times: []string{"09:00", "10:00"}},
		},
	}
}

func TestStoreGetMiss(t *testing.T) {
	s := New()

	_, ok, err := s.Get(context.Background(), "day:1476:2025-01-30")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() on empty store should be a miss")
	}
}

func TestStoreSetGet(t *testing.T) {
	s := New()
	ctx := context.Background()
	key := "day:1476:2025-01-30"

	if err := s.Set(ctx, key, payload("1476", "2025-01-30"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := s.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() should hit after Set")
	}
	if got.VenueID != "1476" || len(got.Courts) != 1 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestStoreLazyExpiry(t *testing.T) {
	now := time.Date(2025, 1, 30, 12, 0, 0, 0, time.UTC)
	s := NewWithClock(func() time.Time { return now })
	ctx := context.Background()
	key := "day:1476:2025-01-30"

	if err := s.Set(ctx, key, payload("1476", "2025-01-30"), 60*time.Second); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// Still fresh just before the deadline.
	now = now.Add(59 * time.Second)
	if _, ok, _ := s.Get(ctx, key); !ok {
		t.Error("entry should still be fresh at 59s")
	}

	// Expired exactly at the deadline; entry is removed on read.
	now = now.Add(time.Second)
	if _, ok, _ := s.Get(ctx, key); ok {
		t.Error("entry should be expired at 60s")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after lazy expiry, want 0", s.Len())
	}
}

func TestStoreOverwrite(t *testing.T) {
	s := New()
	ctx := context.Background()
	key := "day:1476:2025-01-30"

	_ = s.Set(ctx, key, payload("1476", "2025-01-30"), time.Minute)

	updated := domain.DayPayload{VenueID: "1476", Date: "2025-01-30", Courts: nil}
	_ = s.Set(ctx, key, updated, time.Minute)

	got, ok, _ := s.Get(ctx, key)
	if !ok {
		t.Fatal("Get() should hit")
	}
	if len(got.Courts) != 0 {
		t.Errorf("overwrite did not take effect: %+v", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
