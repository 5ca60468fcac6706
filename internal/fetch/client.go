package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/courtscan/internal/domain"
)

const maxBodyBytes = 4 << 20

// Client posts one venue/date pair at a time to the day endpoint. The
// scanner decides the retry policy; this client maps a non-2xx response to
// *domain.StatusError so the scanner can tell retryable statuses apart.
type Client struct {
	endpoint string
	http     *http.Client
}

type dayRequest struct {
	VenueID string `json:"venueId"`
	Date    string `json:"date"`
}

// New creates a fetch client for the given day endpoint URL.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// FetchDay performs a single attempt against the day endpoint.
func (c *Client) FetchDay(ctx context.Context, venueID, date string) (domain.DayPayload, error) {
	body, err := json.Marshal(dayRequest{VenueID: venueID, Date: date})
	if err != nil {
		return domain.DayPayload{}, fmt.Errorf("failed to marshal day request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.DayPayload{}, fmt.Errorf("failed to build day request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.DayPayload{}, fmt.Errorf("day request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.DayPayload{}, &domain.StatusError{Status: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.DayPayload{}, fmt.Errorf("failed to read day response: %w", err)
	}

	var payload domain.DayPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.DayPayload{}, fmt.Errorf("failed to decode day response: %w", err)
	}

	return payload, nil
}
