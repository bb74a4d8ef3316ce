package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain day", func(t *testing.T) {
		got, err := ParseDate("2024-01-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rfc3339", func(t *testing.T) {
		got, err := ParseDate("2024-01-15T13:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, 13, got.Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("next tuesday")
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}
