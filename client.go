package fclient

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Version is the client library version reported in the User-Agent header.
const Version = "2.0.0"

// DefaultBaseURL is the canonical fAPI endpoint.
const DefaultBaseURL = "https://fapi.wrecked.club/v2"

// DefaultTimeout is the per-request timeout applied when none is configured.
const DefaultTimeout = 15 * time.Second

// Client wraps the fAPI image manipulation and utility API.
//
// A Client is safe for concurrent use. State shared across calls is limited
// to the last-observed rate limit snapshot, which is advisory only.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     zerolog.Logger

	limits rateLimitTracker
	hooks  hookRegistry
}

// NewClient creates a new fAPI client authenticated with the given token.
// A bare token is sent as a Bearer credential; a token that already carries
// a scheme prefix is passed through unchanged.
func NewClient(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("fAPI token is required")
	}

	client := &Client{
		baseURL: DefaultBaseURL,
		token:   normalizeToken(token),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// SetTimeout changes the per-request timeout for subsequent calls.
// In-flight requests keep the timeout they started with.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// Timeout returns the currently configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// RateLimit returns a copy of the most recently observed rate limit headers.
// Fields are nil until the corresponding header has been seen at least once,
// and individual fields may be stale relative to each other.
func (c *Client) RateLimit() RateLimit {
	return c.limits.snapshot()
}

// normalizeToken prepends the Bearer scheme when the token carries no scheme
// prefix of its own.
func normalizeToken(token string) string {
	if strings.Contains(token, " ") {
		return token
	}
	return "Bearer " + token
}

func userAgent() string {
	return fmt.Sprintf("fclient/%s (%s; %s)", Version, runtime.GOOS, runtime.GOARCH)
}
