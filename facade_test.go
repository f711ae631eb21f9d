package fclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBody reads the request body into a generic map for shape assertions.
func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func TestImageFromImageShape(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/deepfry", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body := decodeBody(t, r)
		assert.Equal(t, []any{"https://example.com/cat.png"}, body["images"])
		assert.NotContains(t, body, "args")

		w.Write(pngSignature)
	})

	img, err := client.Deepfry(context.Background(), "https://example.com/cat.png")
	require.NoError(t, err)
	assert.Equal(t, pngSignature, img)
}

func TestImageFromTextShape(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/changemymind", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, map[string]any{"text": "tabs > spaces"}, body["args"])
		assert.NotContains(t, body, "images")

		w.Write(pngSignature)
	})

	img, err := client.Changemymind(context.Background(), "tabs > spaces")
	require.NoError(t, err)
	assert.Equal(t, pngSignature, img)
}

func TestImageFromBothShape(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/caption", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, []any{"https://example.com/dog.png"}, body["images"])
		assert.Equal(t, map[string]any{"text": "good boy"}, body["args"])

		w.Write(pngSignature)
	})

	img, err := client.Caption(context.Background(), "https://example.com/dog.png", "good boy")
	require.NoError(t, err)
	assert.Equal(t, pngSignature, img)
}

func TestFacadeSurfacesErrors(t *testing.T) {
	client := newTestClient(t, "key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("invalid image url"))
	})

	_, err := client.Invert(context.Background(), "not a url")
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Equal(t, "invalid image url", reqErr.Message)
}
