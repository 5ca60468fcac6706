package domain

import (
	"regexp"
	"time"
)

// DateLayout is the wire format for calendar dates (local time).
const DateLayout = "2006-01-02"

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// FormatDate renders t as a YYYY-MM-DD date key in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDateKey reports whether s is a strict YYYY-MM-DD date key.
// Calendar validity (month/day ranges) is intentionally not checked;
// upstream simply returns no fields for nonsense dates.
func ValidDateKey(s string) bool {
	return dateKeyRe.MatchString(s)
}

// NextDates returns n consecutive date keys in ascending order, starting at
// now's local calendar date.
func NextDates(now time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, FormatDate(now.AddDate(0, 0, i)))
	}
	return out
}

// CourtAvailability is one court with its bookable start times (HH:MM).
// Only times flagged available upstream are kept.
type CourtAvailability struct {
	Court string   `json:"court"`
	Times []string `json:"times"`
}

// DayPayload is the normalized availability for one venue on one date.
// Courts never contains a court with zero available times.
type DayPayload struct {
	VenueID string              `json:"venueId"`
	Date    string              `json:"date"`
	Courts  []CourtAvailability `json:"courts"`
}

// DayState is the per-date lifecycle within one scan run.
type DayState string

const (
	DayIdle    DayState = "idle"
	DayLoading DayState = "loading"
	DaySuccess DayState = "success"
	DayEmpty   DayState = "empty"
	DayError   DayState = "error"
)

// Terminal reports whether the state can no longer change within a run.
func (s DayState) Terminal() bool {
	return s == DaySuccess || s == DayEmpty || s == DayError
}

// DayRecord tracks one date through a scan run.
type DayRecord struct {
	Date   string              `json:"date"`
	State  DayState            `json:"state"`
	Courts []CourtAvailability `json:"courts,omitempty"`
}
