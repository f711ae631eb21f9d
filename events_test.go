package fclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooksSuccessPath(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	var order []string
	client.OnRequest(func(req *Request) {
		order = append(order, "request-1")
		assert.Equal(t, "/image", req.Path)
	})
	client.OnRequest(func(req *Request) {
		order = append(order, "request-2")
	})
	client.OnResponse(func(resp *Response) {
		order = append(order, "response")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
	client.OnRateLimit(func(event *RateLimitEvent) {
		order = append(order, "ratelimit")
	})

	_, err := client.Do(context.Background(), &Request{
		Method: http.MethodGet,
		Path:   "/image",
		Return: ReturnBuffer,
	})
	require.NoError(t, err)

	// Hooks fire synchronously in registration order; the rate limit hook
	// stays silent on a successful call.
	assert.Equal(t, []string{"request-1", "request-2", "response"}, order)
}

func TestHooksRateLimitPath(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("x-rate-limit-reset", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	responseFired := false
	var event *RateLimitEvent
	client.OnResponse(func(resp *Response) { responseFired = true })
	client.OnRateLimit(func(e *RateLimitEvent) { event = e })

	_, err := client.Do(context.Background(), &Request{
		Method: http.MethodGet,
		Path:   "/image",
		Return: ReturnBuffer,
	})
	require.Error(t, err)

	assert.False(t, responseFired, "response hook must not fire on 429")
	require.NotNil(t, event)
	assert.Equal(t, 30, event.Reset)
	assert.Equal(t, "/image", event.Request.Path)
	assert.Equal(t, http.StatusTooManyRequests, event.Response.StatusCode)
}

func TestHooksFireOnFailedResponse(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("bad input"))
	})

	var got *Response
	client.OnResponse(func(resp *Response) { got = resp })

	_, err := client.Do(context.Background(), &Request{
		Method: http.MethodGet,
		Path:   "/image",
		Return: ReturnBuffer,
	})
	require.Error(t, err)

	// Non-429 failures still deliver the response to observers before the
	// call is converted into a RequestError.
	require.NotNil(t, got)
	assert.Equal(t, http.StatusBadRequest, got.StatusCode)
	assert.Equal(t, []byte("bad input"), got.Body)
}

func TestHookPanicDoesNotAffectDispatch(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.Write(pngSignature)
	})

	client.OnRequest(func(req *Request) { panic("observer bug") })
	secondFired := false
	client.OnRequest(func(req *Request) { secondFired = true })

	resp, err := client.Do(context.Background(), &Request{
		Method: http.MethodGet,
		Path:   "/image",
		Return: ReturnBuffer,
	})
	require.NoError(t, err)
	assert.Equal(t, pngSignature, resp.Body)
	assert.True(t, secondFired, "later hooks still run after a panic")
}
