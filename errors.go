package fclient

import (
	"errors"
	"fmt"
)

// RequestError represents a non-success response from fAPI. The Message is
// the raw response body, which the API uses for human-readable diagnostics.
type RequestError struct {
	StatusCode int
	Message    string
	Request    *Request
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("fapi: request failed: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates an unknown endpoint or resource.
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsServerError checks if the error originated inside the service.
func (e *RequestError) IsServerError() bool {
	return e.StatusCode >= 500
}

// RateLimitError is returned when fAPI responds with status 429. Reset is
// the value of the rate limit reset header, or 0 when that header was
// missing or not numeric. Backoff and retry are the caller's responsibility.
type RateLimitError struct {
	Reset   int
	Request *Request
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("fapi: rate limited: resets at %d", e.Reset)
}

// IsRateLimited reports whether err is a RateLimitError.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
