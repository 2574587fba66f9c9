package pngDecoder

import (
	"fmt"
	"testing"

	"pnGo/pngDecoder/pngtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIHDR(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		data := pngtest.Header{
			Width:           0x01020304,
			Height:          300,
			BitDepth:        8,
			ColorType:       3,
			InterlaceMethod: 1,
		}.Bytes()

		header, err := ParseIHDR(data)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x01020304), header.Width)
		assert.Equal(t, uint32(300), header.Height)
		assert.Equal(t, uint8(8), header.BitDepth)
		assert.Equal(t, uint8(3), header.ColorType)
		assert.Equal(t, uint8(1), header.InterlaceMethod)
		assert.Equal(t, IndexedColor, header.PixelMode)
	})
	t.Run("compression method", func(t *testing.T) {
		h := pngtest.IndexedHeader(2, 2)
		h.CompressionMethod = 1
		_, err := ParseIHDR(h.Bytes())
		assert.ErrorIs(t, err, ErrUnsupportedCompression)
	})
	t.Run("filter method", func(t *testing.T) {
		h := pngtest.IndexedHeader(2, 2)
		h.FilterMethod = 1
		_, err := ParseIHDR(h.Bytes())
		assert.ErrorIs(t, err, ErrUnsupportedFilterMethod)
	})
	t.Run("length", func(t *testing.T) {
		data := pngtest.IndexedHeader(2, 2).Bytes()
		_, err := ParseIHDR(data[:12])
		assert.ErrorIs(t, err, ErrInvalidHeaderLength)
		_, err = ParseIHDR(append(data, 0))
		assert.ErrorIs(t, err, ErrInvalidHeaderLength)
	})
}

func TestPixelModeTable(t *testing.T) {
	valid := map[[2]uint8]PixelMode{}
	for _, depth := range []uint8{1, 2, 4, 8, 16} {
		valid[[2]uint8{0, depth}] = Grayscale
	}
	for _, depth := range []uint8{1, 2, 4, 8} {
		valid[[2]uint8{3, depth}] = IndexedColor
	}
	for _, depth := range []uint8{8, 16} {
		valid[[2]uint8{2, depth}] = Truecolor
		valid[[2]uint8{4, depth}] = GrayscaleAlpha
		valid[[2]uint8{6, depth}] = TruecolorAlpha
	}

	for colorType := uint8(0); colorType <= 7; colorType++ {
		for _, depth := range []uint8{0, 1, 2, 3, 4, 8, 12, 16, 32} {
			t.Run(fmt.Sprintf("type %d depth %d", colorType, depth), func(t *testing.T) {
				h := pngtest.Header{Width: 1, Height: 1, BitDepth: depth, ColorType: colorType}
				header, err := ParseIHDR(h.Bytes())
				if want, ok := valid[[2]uint8{colorType, depth}]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, header.PixelMode)
				} else {
					assert.ErrorIs(t, err, ErrInvalidPixelMode)
				}
			})
		}
	}
}

func TestPixelModeString(t *testing.T) {
	assert.Equal(t, "INDEXED_COLOR", IndexedColor.String())
	assert.Equal(t, "TRUECOLOR_ALPHA", TruecolorAlpha.String())
	assert.Equal(t, "UNKNOWN", PixelMode(42).String())
}
