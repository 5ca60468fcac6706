package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidRequest marks a lookup rejected before any upstream call
// (empty venue id or malformed date key). Maps to 400 at the HTTP layer.
var ErrInvalidRequest = errors.New("invalid request")

// InvalidRequestf wraps ErrInvalidRequest with detail.
func InvalidRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidRequest}, args...)...)
}

// UpstreamError is a failed call to the availability gateway.
// Status is 0 when the failure happened at the transport level; otherwise it
// carries the upstream HTTP status.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream error: %v", e.Err)
	}
	return fmt.Sprintf("upstream error: status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// StatusError is a non-2xx response from the day endpoint, as seen by the
// scanner's fetch client.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("day endpoint: status %d", e.Status)
}

// Retryable reports whether the status signals rate limiting or a transient
// server-side failure, the only cases the scanner retries.
func (e *StatusError) Retryable() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}
