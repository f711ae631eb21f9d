package fclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitTrackerUpdate(t *testing.T) {
	var tracker rateLimitTracker

	t.Run("fields update independently", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-rate-limit-limit", "100")
		tracker.update(h)

		snap := tracker.snapshot()
		require.NotNil(t, snap.Limit)
		assert.Equal(t, 100, *snap.Limit)
		assert.Nil(t, snap.Remaining)
		assert.Nil(t, snap.Reset)
	})

	t.Run("absent headers keep prior values", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-rate-limit-remaining", "7")
		tracker.update(h)

		snap := tracker.snapshot()
		require.NotNil(t, snap.Limit)
		assert.Equal(t, 100, *snap.Limit)
		require.NotNil(t, snap.Remaining)
		assert.Equal(t, 7, *snap.Remaining)
	})

	t.Run("malformed headers keep prior values", func(t *testing.T) {
		h := http.Header{}
		h.Set("x-rate-limit-remaining", "plenty")
		tracker.update(h)

		snap := tracker.snapshot()
		require.NotNil(t, snap.Remaining)
		assert.Equal(t, 7, *snap.Remaining)
	})

	t.Run("snapshots are stable across later updates", func(t *testing.T) {
		before := tracker.snapshot()

		h := http.Header{}
		h.Set("x-rate-limit-remaining", "3")
		tracker.update(h)

		assert.Equal(t, 7, *before.Remaining)
		assert.Equal(t, 3, *tracker.snapshot().Remaining)
	})
}

func TestResetValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "numeric", value: "17", want: 17},
		{name: "non-numeric", value: "soon", want: 0},
		{name: "missing", value: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set("x-rate-limit-reset", tt.value)
			}
			assert.Equal(t, tt.want, resetValue(h))
		})
	}
}
