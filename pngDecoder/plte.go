package pngDecoder

import (
	"pnGo/oops"
)

// RGB is one 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

type Palette []RGB

// ParsePLTE splits a palette payload into RGB entries. The pixel mode is
// accepted for the caller's logging only; a palette is not rejected for
// non-indexed images.
func ParsePLTE(data []byte, mode PixelMode) (Palette, error) {
	if len(data)%3 != 0 {
		return nil, oops.New(ErrInvalidPaletteLength, "got %d bytes for %s image", len(data), mode)
	}
	palette := make(Palette, 0, len(data)/3)
	for i := 0; i < len(data); i += 3 {
		palette = append(palette, RGB{R: data[i], G: data[i+1], B: data[i+2]})
	}
	return palette, nil
}
