package fclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at a mock server. The server is
// closed automatically when the test ends.
func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(token, WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantErr   bool
		wantToken string
	}{
		{
			name:      "bare token gets Bearer prefix",
			token:     "abc123",
			wantToken: "Bearer abc123",
		},
		{
			name:      "prefixed token passes through",
			token:     "Bearer abc123",
			wantToken: "Bearer abc123",
		},
		{
			name:      "non-bearer scheme passes through",
			token:     "Basic dXNlcjpwYXNz",
			wantToken: "Basic dXNlcjpwYXNz",
		},
		{
			name:    "missing token",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "token is required")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, client.token)
			assert.Equal(t, DefaultBaseURL, client.baseURL)
			assert.Equal(t, DefaultTimeout, client.Timeout())
		})
	}
}

func TestClientOptions(t *testing.T) {
	t.Run("with base url", func(t *testing.T) {
		client, err := NewClient("key", WithBaseURL("http://localhost:3030/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:3030", client.baseURL)
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("key", WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.Timeout())
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("key", WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Equal(t, customClient, client.httpClient)
	})

	t.Run("with logger", func(t *testing.T) {
		logger := zerolog.New(zerolog.NewTestWriter(t))
		client, err := NewClient("key", WithLogger(logger))
		require.NoError(t, err)
		assert.Equal(t, logger, client.logger)
	})
}

func TestSetTimeout(t *testing.T) {
	client, err := NewClient("key")
	require.NoError(t, err)

	client.SetTimeout(2 * time.Second)
	assert.Equal(t, 2*time.Second, client.Timeout())
}

func TestUserAgent(t *testing.T) {
	assert.Contains(t, userAgent(), "fclient/"+Version)
}
