package upstream

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// The gateway's schema is loosely typed: availability flags arrive as the
// numeral 1, the string "1" or a boolean, field names and start times move
// between alternate keys, and the fields array is sometimes nested under
// "data". Decoding is therefore tolerant end to end: anything that does not
// match an accepted shape degrades to "no availability", never to an error.

type envelope struct {
	Fields []field `json:"fields"`
	Data   *struct {
		Fields []field `json:"fields"`
	} `json:"data"`
}

type field struct {
	FieldName flexString `json:"field_name"`
	Name      flexString `json:"name"`
	Slots     []slot     `json:"slots"`
}

type slot struct {
	IsAvailable flexFlag   `json:"is_available"`
	Available   flexFlag   `json:"available"`
	StartTime   flexString `json:"start_time"`
	Time        flexString `json:"time"`
}

// flexFlag is an availability flag that may arrive as 1, "1" or true.
// Any other token, or absence, reads as false.
type flexFlag struct {
	set bool
	on  bool
}

func (f *flexFlag) UnmarshalJSON(b []byte) error {
	switch string(bytes.TrimSpace(b)) {
	case "null":
		// An explicit null reads as absent, so the alternate key can win.
		return nil
	case "1", `"1"`, "true":
		f.set = true
		f.on = true
	default:
		f.set = true
		f.on = false
	}
	return nil
}

// flexString accepts a JSON string or number; everything else reads as "".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*s = ""
		return nil
	}
	switch t := v.(type) {
	case string:
		*s = flexString(t)
	case float64:
		*s = flexString(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		*s = ""
	}
	return nil
}

func (f field) courtName() string {
	if f.FieldName != "" {
		return string(f.FieldName)
	}
	if f.Name != "" {
		return string(f.Name)
	}
	return "Court"
}

func (s slot) available() bool {
	if s.IsAvailable.set {
		return s.IsAvailable.on
	}
	return s.Available.set && s.Available.on
}

func (s slot) startTime() string {
	t := string(s.StartTime)
	if t == "" {
		t = string(s.Time)
	}
	// "09:00:00" -> "09:00"
	if len(t) > 5 {
		t = t[:5]
	}
	return t
}

// decodeCourts normalizes a raw gateway body into court availability.
// Courts with zero available times are dropped. A malformed body yields an
// empty (non-nil) court list.
func decodeCourts(body []byte) []domain.CourtAvailability {
	var env envelope
	_ = json.Unmarshal(body, &env)

	fields := env.Fields
	if fields == nil && env.Data != nil {
		fields = env.Data.Fields
	}

	courts := make([]domain.CourtAvailability, 0, len(fields))
	for _, f := range fields {
		times := make([]string, 0, len(f.Slots))
		for _, s := range f.Slots {
			if !s.available() {
				continue
			}
			if t := s.startTime(); t != "" {
				times = append(times, t)
			}
		}
		if len(times) == 0 {
			continue
		}
		courts = append(courts, domain.CourtAvailability{
			Court: f.courtName(),
			Times: times,
		})
	}
	return courts
}
