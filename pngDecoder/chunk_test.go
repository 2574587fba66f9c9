package pngDecoder

import (
	"testing"

	"pnGo/pngDecoder/pngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkStream(b *pngtest.Builder) []byte {
	return b.Bytes()[signatureLength:]
}

func TestReadChunk(t *testing.T) {
	header := pngtest.IndexedHeader(2, 2).Bytes()
	stream := chunkStream(pngtest.New().
		Chunk("IHDR", header).
		Chunk("tEXt", []byte("Comment\x00hi")).
		IEND())

	chunk, next, err := readChunk(stream, 0, true)
	require.NoError(t, err)
	assert.Equal(t, "IHDR", chunk.Type)
	assert.Equal(t, header, chunk.Data)
	assert.Equal(t, pngtest.ChunkCRC("IHDR", header), chunk.CRC)
	assert.Equal(t, 0, chunk.Offset)
	assert.True(t, chunk.Critical())
	assert.False(t, next.done)
	assert.Equal(t, 4+4+13+4, next.next)

	chunk, next, err = readChunk(stream, next.next, true)
	require.NoError(t, err)
	assert.Equal(t, "tEXt", chunk.Type)
	assert.False(t, chunk.Critical())
	assert.Equal(t, 25+4+4+10+4, next.next)

	chunk, next, err = readChunk(stream, next.next, true)
	require.NoError(t, err)
	assert.Equal(t, "IEND", chunk.Type)
	assert.Empty(t, chunk.Data)
	assert.True(t, next.done)
}

func TestReadChunkFirstMustBeIHDR(t *testing.T) {
	stream := chunkStream(pngtest.New().
		Chunk("PLTE", pngtest.Palette([3]uint8{1, 2, 3})).
		Chunk("IHDR", pngtest.IndexedHeader(1, 1).Bytes()).
		IEND())

	_, _, err := readChunk(stream, 0, false)
	assert.ErrorIs(t, err, ErrUnexpectedFirstChunk)
	assert.Contains(t, err.Error(), "PLTE")
}

func TestReadChunkTruncated(t *testing.T) {
	stream := chunkStream(pngtest.New().Chunk("IHDR", pngtest.IndexedHeader(1, 1).Bytes()))

	tests := []struct {
		name   string
		stream []byte
		offset int
	}{
		{"end of buffer", stream, len(stream)},
		{"inside length", stream[:2], 0},
		{"inside type", stream[:6], 0},
		{"inside data", stream[:12], 0},
		{"inside checksum", stream[:len(stream)-1], 0},
		{"huge length", []byte{0xff, 0xff, 0xff, 0xff, 'I', 'H', 'D', 'R'}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readChunk(tt.stream, tt.offset, false)
			assert.ErrorIs(t, err, ErrTruncatedStream)
		})
	}
}

func TestReadChunkChecksum(t *testing.T) {
	header := pngtest.IndexedHeader(1, 1).Bytes()
	stream := chunkStream(pngtest.New().RawChunk("IHDR", header, 0x12345678))

	t.Run("ignored by default", func(t *testing.T) {
		chunk, _, err := readChunk(stream, 0, false)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x12345678), chunk.CRC)
	})
	t.Run("verified on request", func(t *testing.T) {
		_, _, err := readChunk(stream, 0, true)
		assert.ErrorIs(t, err, ErrChecksumMismatch)
	})
}
