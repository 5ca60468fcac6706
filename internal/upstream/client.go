package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

// availabilityPath is the gateway endpoint serving per-day slot data.
const availabilityPath = "/venues-ajax/op-times-and-fields"

// maxBodyBytes bounds how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// Client calls the third-party availability gateway.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a gateway client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchDay fetches and normalizes one venue/date. Transport failures and
// non-2xx statuses come back as *domain.UpstreamError; the body itself can
// never fail (see decodeCourts).
func (c *Client) FetchDay(ctx context.Context, venueID, date string) (domain.DayPayload, error) {
	q := url.Values{}
	q.Set("venue_id", venueID)
	q.Set("date", date)
	endpoint := c.baseURL + availabilityPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.DayPayload{}, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json, */*")
	// This call must always hit the gateway live; never let an intermediary
	// serve it from cache.
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.DayPayload{}, &domain.UpstreamError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.DayPayload{}, &domain.UpstreamError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.DayPayload{}, &domain.UpstreamError{Err: fmt.Errorf("failed to read upstream body: %w", err)}
	}

	return domain.DayPayload{
		VenueID: venueID,
		Date:    date,
		Courts:  decodeCourts(body),
	}, nil
}
