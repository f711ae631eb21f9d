package fclient

import (
	"net/http"
	"strconv"
	"sync"
)

// Rate limit headers recognized on every fAPI response.
const (
	headerRateLimitLimit     = "x-rate-limit-limit"
	headerRateLimitRemaining = "x-rate-limit-remaining"
	headerRateLimitReset     = "x-rate-limit-reset"
)

// RateLimit is a snapshot of the most recently observed rate limit headers.
// Each field is nil until the corresponding header has been seen. Fields are
// tracked independently, so a snapshot may mix values from different
// responses.
type RateLimit struct {
	Limit     *int
	Remaining *int
	Reset     *int
}

// rateLimitTracker holds the per-client rate limit record. The mutex guards
// only the field swap and is never held across a network call.
type rateLimitTracker struct {
	mu      sync.Mutex
	current RateLimit
}

// update overwrites each field for which the response carries a numeric
// header. Absent or malformed headers leave the prior value untouched.
func (t *rateLimitTracker) update(h http.Header) {
	limit := parseIntHeader(h, headerRateLimitLimit)
	remaining := parseIntHeader(h, headerRateLimitRemaining)
	reset := parseIntHeader(h, headerRateLimitReset)

	t.mu.Lock()
	defer t.mu.Unlock()
	if limit != nil {
		t.current.Limit = limit
	}
	if remaining != nil {
		t.current.Remaining = remaining
	}
	if reset != nil {
		t.current.Reset = reset
	}
}

func (t *rateLimitTracker) snapshot() RateLimit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func parseIntHeader(h http.Header, key string) *int {
	val := h.Get(key)
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}

// resetValue extracts the reset header for a 429 response, defaulting to 0
// when the header is missing or not numeric.
func resetValue(h http.Header) int {
	if v := parseIntHeader(h, headerRateLimitReset); v != nil {
		return *v
	}
	return 0
}
