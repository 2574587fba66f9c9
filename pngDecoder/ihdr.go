package pngDecoder

import (
	"bytes"
	"encoding/binary"

	"pnGo/oops"
)

const ihdrLength = 13

// PixelMode is the pixel layout derived from color type and bit depth.
type PixelMode int

const (
	Grayscale PixelMode = iota
	Truecolor
	IndexedColor
	GrayscaleAlpha
	TruecolorAlpha
)

func (m PixelMode) String() string {
	switch m {
	case Grayscale:
		return "GRAYSCALE"
	case Truecolor:
		return "TRUECOLOR"
	case IndexedColor:
		return "INDEXED_COLOR"
	case GrayscaleAlpha:
		return "GRAYSCALE_ALPHA"
	case TruecolorAlpha:
		return "TRUECOLOR_ALPHA"
	}
	return "UNKNOWN"
}

// Interlace methods.
const (
	NoInterlace    = 0
	Adam7Interlace = 1
)

type pixelModeRule struct {
	mode      PixelMode
	bitDepths []uint8
}

var pixelModes = map[uint8]pixelModeRule{
	0: {Grayscale, []uint8{1, 2, 4, 8, 16}},
	2: {Truecolor, []uint8{8, 16}},
	3: {IndexedColor, []uint8{1, 2, 4, 8}},
	4: {GrayscaleAlpha, []uint8{8, 16}},
	6: {TruecolorAlpha, []uint8{8, 16}},
}

// IHDR mirrors the 13-byte header payload field for field, so binary.Read
// can fill it directly.
type IHDR struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// Header is a validated IHDR with its derived pixel mode.
type Header struct {
	IHDR
	PixelMode PixelMode
}

func ParseIHDR(data []byte) (Header, error) {
	if len(data) != ihdrLength {
		return Header{}, oops.New(ErrInvalidHeaderLength, "got %d bytes, expected %d", len(data), ihdrLength)
	}

	var ihdr IHDR
	if err := binary.Read(bytes.NewReader(data), binary.BigEndian, &ihdr); err != nil {
		return Header{}, oops.New(ErrInvalidHeaderLength, "reading header fields: %v", err)
	}

	if ihdr.CompressionMethod != 0 {
		return Header{}, oops.New(ErrUnsupportedCompression, "compression method %d", ihdr.CompressionMethod)
	}
	if ihdr.FilterMethod != 0 {
		return Header{}, oops.New(ErrUnsupportedFilterMethod, "filter method %d", ihdr.FilterMethod)
	}
	mode, err := pixelModeOf(ihdr.ColorType, ihdr.BitDepth)
	if err != nil {
		return Header{}, err
	}
	return Header{IHDR: ihdr, PixelMode: mode}, nil
}

func pixelModeOf(colorType, bitDepth uint8) (PixelMode, error) {
	rule, ok := pixelModes[colorType]
	if ok {
		for _, depth := range rule.bitDepths {
			if depth == bitDepth {
				return rule.mode, nil
			}
		}
	}
	return 0, oops.New(ErrInvalidPixelMode, "color type %d with bit depth %d", colorType, bitDepth)
}
