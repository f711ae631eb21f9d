package fclient

import "sync"

// RateLimitEvent carries the context of a 429 response delivered to
// OnRateLimit subscribers.
type RateLimitEvent struct {
	Request  *Request
	Response *Response
	Reset    int
}

// hookRegistry holds ordered lifecycle callbacks. Hooks run synchronously in
// registration order; a panicking hook is recovered so that observers can
// never change the outcome of a dispatch.
type hookRegistry struct {
	mu        sync.Mutex
	request   []func(*Request)
	response  []func(*Response)
	ratelimit []func(*RateLimitEvent)
}

// OnRequest registers a callback invoked before each request is sent.
func (c *Client) OnRequest(fn func(*Request)) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.request = append(c.hooks.request, fn)
}

// OnResponse registers a callback invoked after each non-rate-limited
// response, including responses that will be converted to a RequestError.
func (c *Client) OnResponse(fn func(*Response)) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.response = append(c.hooks.response, fn)
}

// OnRateLimit registers a callback invoked instead of OnResponse when the
// service responds with status 429.
func (c *Client) OnRateLimit(fn func(*RateLimitEvent)) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.ratelimit = append(c.hooks.ratelimit, fn)
}

func (c *Client) emitRequest(req *Request) {
	c.hooks.mu.Lock()
	fns := append(([]func(*Request))(nil), c.hooks.request...)
	c.hooks.mu.Unlock()
	for _, fn := range fns {
		c.safeInvoke("request", func() { fn(req) })
	}
}

func (c *Client) emitResponse(resp *Response) {
	c.hooks.mu.Lock()
	fns := append(([]func(*Response))(nil), c.hooks.response...)
	c.hooks.mu.Unlock()
	for _, fn := range fns {
		c.safeInvoke("response", func() { fn(resp) })
	}
}

func (c *Client) emitRateLimit(event *RateLimitEvent) {
	c.hooks.mu.Lock()
	fns := append(([]func(*RateLimitEvent))(nil), c.hooks.ratelimit...)
	c.hooks.mu.Unlock()
	for _, fn := range fns {
		c.safeInvoke("ratelimit", func() { fn(event) })
	}
}

func (c *Client) safeInvoke(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("hook", kind).
				Interface("panic", r).
				Msg("recovered panic in lifecycle hook")
		}
	}()
	fn()
}
