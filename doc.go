// Package fclient provides a typed client for the fAPI image manipulation
// and utility API.
//
// fAPI renders image filters, overlays, and text-on-image effects, and
// exposes a handful of utility endpoints (web search, dictionary lookup,
// script execution). This package wraps every endpoint with a typed method
// and exposes the shared request machinery for endpoints it does not wrap.
//
// # Architecture
//
//   - Client: construction, authentication, and configuration
//   - Do: the shared request dispatcher every endpoint method delegates to
//   - RateLimit: the last-observed rate limit headers, tracked per client
//   - Errors: RequestError and RateLimitError for the two API failure modes
//   - Hooks: OnRequest / OnResponse / OnRateLimit lifecycle callbacks
//
// # Usage
//
// Create a client with your API token:
//
//	client, err := fclient.NewClient(
//		"your-token",
//		fclient.WithTimeout(30*time.Second),
//		fclient.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	img, err := client.Deepfry(ctx, "https://example.com/cat.png")
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("cat.png", img, 0o644)
//
// Endpoints not wrapped by a method can be called through Do:
//
//	resp, err := client.Do(ctx, &fclient.Request{
//		Method: http.MethodPost,
//		Path:   "/somefilter",
//		Body:   map[string]any{"images": []string{url}},
//		Return: fclient.ReturnBuffer,
//	})
//
// # Error Handling
//
// A non-200 response fails with *RequestError carrying the status code and
// the raw response body. A 429 response fails with *RateLimitError carrying
// the parsed reset value; backoff is the caller's responsibility:
//
//	var rle *fclient.RateLimitError
//	if errors.As(err, &rle) {
//		// wait until rle.Reset
//	}
//
// Transport failures (network errors, timeouts) are returned as-is and are
// never converted into either typed error.
//
// # Rate Limits
//
// Every response updates the client's rate limit snapshot, readable through
// RateLimit(). The snapshot is advisory: concurrent requests update it
// without ordering guarantees, and fields may be stale relative to each
// other. The client never throttles or retries on its own.
package fclient
