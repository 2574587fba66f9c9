package pngDecoder

import (
	"bytes"

	"pnGo/compression"
	"pnGo/oops"
)

// Scanlines holds the decompressed image data split into rows. Each row
// starts with its filter type byte.
type Scanlines struct {
	Stride int
	Rows   [][]byte
}

// Inflater decompresses a complete zlib stream.
type Inflater func(compressed []byte) ([]byte, error)

// idatAssembler collects IDAT payloads. The zlib stream spans all of them,
// so nothing is inflated until the last chunk has been seen.
type idatAssembler struct {
	compressed bytes.Buffer
	chunks     int
}

func (a *idatAssembler) Append(data []byte) {
	a.compressed.Write(data)
	a.chunks++
}

func (a *idatAssembler) Finish(header Header, inflate Inflater) (*Scanlines, error) {
	if inflate == nil {
		inflate = compression.InflateData
	}
	decompressed, err := inflate(a.compressed.Bytes())
	if err != nil {
		return nil, oops.New(ErrDecompressionFailure, "%d bytes from %d IDAT chunks: %v", a.compressed.Len(), a.chunks, err)
	}
	a.compressed = bytes.Buffer{}

	// One byte per pixel plus the leading filter type byte.
	stride := uint64(header.Width) + 1
	expected := stride * uint64(header.Height)
	if expected != uint64(len(decompressed)) {
		return nil, oops.New(ErrSizeMismatch, "%dx%d image needs %d bytes, got %d", header.Width, header.Height, expected, len(decompressed))
	}

	rows := make([][]byte, header.Height)
	for i := range rows {
		start := uint64(i) * stride
		rows[i] = decompressed[start : start+stride : start+stride]
	}
	return &Scanlines{
		Stride: int(stride),
		Rows:   rows,
	}, nil
}
