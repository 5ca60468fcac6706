package domain

// DefaultLimitDays is the look-ahead window used when a venue is not in the
// index or does not declare its own limit. Upstream serves at most this many
// future days for most venues.
const DefaultLimitDays = 30

// Venue is a bookable facility known to the scanner.
type Venue struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	LimitDays int    `json:"limitDays" yaml:"limit_days"`
}
