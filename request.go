package fclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// ReturnKind declares how a response body should be decoded.
type ReturnKind int

const (
	// ReturnBuffer returns the response body as raw bytes.
	ReturnBuffer ReturnKind = iota
	// ReturnJSON parses the response body as JSON, falling back to the raw
	// bytes when the body is not valid JSON.
	ReturnJSON
)

// Request describes a single outbound fAPI call. Endpoint methods construct
// these internally; Do accepts them directly for endpoints this library does
// not wrap.
type Request struct {
	// ID correlates the request across lifecycle hooks and debug logs.
	// Assigned automatically when left zero.
	ID uuid.UUID

	Method      string
	Path        string
	Query       url.Values
	Body        any
	ContentType string
	Return      ReturnKind
}

// Response is a completed fAPI response with its decoded payload.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte

	value any
}

// Value returns the decoded payload: the parsed JSON document for ReturnJSON
// requests, or the raw body for ReturnBuffer requests and for JSON bodies
// that failed to parse.
func (r *Response) Value() any {
	return r.value
}

// Do sends a single request to fAPI and decodes the response.
//
// The rate limit record is updated from the response headers on every call,
// success or failure. A 429 response fails with *RateLimitError, any other
// non-200 response fails with *RequestError carrying the body as its
// message, and transport errors propagate wrapped but untyped. Nothing is
// retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}

	var bodyReader io.Reader
	contentType := ""
	if req.Method != http.MethodGet && req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
		contentType = req.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
	}

	c.emitRequest(req)

	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", c.token)
	httpReq.Header.Set("User-Agent", userAgent())
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug().
		Str("request_id", req.ID.String()).
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("sending fAPI request")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Headers are tracked before classification so the snapshot stays
	// current even for failed calls.
	c.limits.update(httpResp.Header)

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode == http.StatusTooManyRequests {
		reset := resetValue(httpResp.Header)
		c.logger.Debug().
			Str("request_id", req.ID.String()).
			Int("reset", reset).
			Msg("fAPI rate limit hit")
		c.emitRateLimit(&RateLimitEvent{Request: req, Response: resp, Reset: reset})
		return nil, &RateLimitError{Reset: reset, Request: req}
	}

	c.emitResponse(resp)

	if httpResp.StatusCode != http.StatusOK {
		return nil, &RequestError{
			StatusCode: httpResp.StatusCode,
			Message:    string(body),
			Request:    req,
		}
	}

	resp.value = c.decodePayload(req, body)

	return resp, nil
}

// decodePayload applies the declared return kind. A JSON parse failure
// degrades to the raw body instead of failing the call; callers that need
// malformed bodies depend on this.
func (c *Client) decodePayload(req *Request, body []byte) any {
	if req.Return != ReturnJSON {
		return body
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		c.logger.Debug().
			Str("request_id", req.ID.String()).
			Err(err).
			Msg("response body is not valid JSON, returning raw bytes")
		return body
	}
	return value
}
