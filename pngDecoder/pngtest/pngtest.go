// Package pngtest builds PNG byte streams for tests, including malformed
// ones the standard encoder would never produce.
package pngtest

import (
	"bytes"
	"hash/crc32"

	"pnGo/compression"
	"pnGo/utils"

	"github.com/klauspost/compress/zlib"
)

var Signature = []byte{137, 80, 78, 71, 13, 10, 26, 10}

type Builder struct {
	buf bytes.Buffer
}

// New returns a builder that has already written the signature.
func New() *Builder {
	b := &Builder{}
	b.buf.Write(Signature)
	return b
}

// Chunk appends a chunk with a correct CRC.
func (b *Builder) Chunk(typ string, data []byte) *Builder {
	return b.RawChunk(typ, data, ChunkCRC(typ, data))
}

// RawChunk appends a chunk with the given CRC.
func (b *Builder) RawChunk(typ string, data []byte, crc uint32) *Builder {
	b.buf.Write(utils.LengthToBytes(uint32(len(data))))
	b.buf.WriteString(typ)
	b.buf.Write(data)
	b.buf.Write(utils.LengthToBytes(crc))
	return b
}

// IDAT appends compressed split into the given number of IDAT chunks of
// roughly equal size.
func (b *Builder) IDAT(compressed []byte, pieces int) *Builder {
	if pieces < 1 {
		pieces = 1
	}
	size := (len(compressed) + pieces - 1) / pieces
	for i := 0; i < pieces; i++ {
		start := i * size
		end := start + size
		if start > len(compressed) {
			start = len(compressed)
		}
		if end > len(compressed) {
			end = len(compressed)
		}
		b.Chunk("IDAT", compressed[start:end])
	}
	return b
}

// IDATAt appends compressed split at the given byte offsets.
func (b *Builder) IDATAt(compressed []byte, splits ...int) *Builder {
	start := 0
	for _, split := range splits {
		b.Chunk("IDAT", compressed[start:split])
		start = split
	}
	return b.Chunk("IDAT", compressed[start:])
}

func (b *Builder) IEND() *Builder {
	return b.Chunk("IEND", nil)
}

func (b *Builder) Bytes() []byte {
	return append([]byte(nil), b.buf.Bytes()...)
}

func ChunkCRC(typ string, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(data)
	return crc.Sum32()
}

type Header struct {
	Width, Height     uint32
	BitDepth          uint8
	ColorType         uint8
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8
}

// IndexedHeader describes an 8-bit palette image with no interlacing.
func IndexedHeader(width, height uint32) Header {
	return Header{Width: width, Height: height, BitDepth: 8, ColorType: 3}
}

func (h Header) Bytes() []byte {
	data := make([]byte, 0, 13)
	data = append(data, utils.LengthToBytes(h.Width)...)
	data = append(data, utils.LengthToBytes(h.Height)...)
	return append(data, h.BitDepth, h.ColorType, h.CompressionMethod, h.FilterMethod, h.InterlaceMethod)
}

// Palette flattens RGB triples into a PLTE payload.
func Palette(colors ...[3]uint8) []byte {
	data := make([]byte, 0, len(colors)*3)
	for _, c := range colors {
		data = append(data, c[0], c[1], c[2])
	}
	return data
}

// Rows prefixes every row with the filter type byte and concatenates them.
func Rows(filter byte, rows ...[]byte) []byte {
	var data []byte
	for _, row := range rows {
		data = append(data, filter)
		data = append(data, row...)
	}
	return data
}

func Compress(raw []byte) []byte {
	return utils.Must1(compression.DeflateData(raw, zlib.BestCompression))
}

// Indexed builds a complete, valid 8-bit palette PNG with the image data
// spread over idatPieces chunks.
func Indexed(width, height uint32, palette []byte, rows [][]byte, idatPieces int) []byte {
	return New().
		Chunk("IHDR", IndexedHeader(width, height).Bytes()).
		Chunk("PLTE", palette).
		IDAT(Compress(Rows(0, rows...)), idatPieces).
		IEND().
		Bytes()
}
