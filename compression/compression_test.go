package compression

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflateData(t *testing.T) {
	payload := bytes.Repeat([]byte{0, 1, 2, 3}, 64)

	t.Run("round trip", func(t *testing.T) {
		compressed, err := DeflateData(payload, zlib.BestCompression)
		require.NoError(t, err)
		assert.Less(t, len(compressed), len(payload))

		inflated, err := InflateData(compressed)
		require.NoError(t, err)
		assert.Equal(t, payload, inflated)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := InflateData([]byte{1, 2, 3, 4, 5})
		assert.Error(t, err)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := InflateData(nil)
		assert.Error(t, err)
	})
	t.Run("truncated stream", func(t *testing.T) {
		compressed, err := DeflateData(payload, zlib.DefaultCompression)
		require.NoError(t, err)
		_, err = InflateData(compressed[:len(compressed)-6])
		assert.Error(t, err)
	})
}
