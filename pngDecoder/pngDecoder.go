package pngDecoder

import (
	"io"

	"pnGo/oops"

	"github.com/rs/zerolog"
)

// Sink receives a decoded image, typically to display or store it.
type Sink interface {
	WriteGrid(grid *PixelGrid) error
}

type Option func(*PngDecoder)

// WithLogger sets the logger used for per-chunk debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *PngDecoder) {
		p.log = logger
	}
}

// WithChecksumVerification enables CRC-32 checks on every chunk.
func WithChecksumVerification(verify bool) Option {
	return func(p *PngDecoder) {
		p.verifyCRC = verify
	}
}

// WithInflater replaces the zlib decompressor used for image data.
func WithInflater(inflate Inflater) Option {
	return func(p *PngDecoder) {
		p.inflate = inflate
	}
}

// PngDecoder is a single decode session. It owns the input, the chunk log
// and the pending image data; it is not safe for concurrent use, but separate
// decoders share nothing.
type PngDecoder struct {
	data      []uint8
	chunks    []ChunkInfo
	header    *Header
	palette   Palette
	idat      idatAssembler
	finished  bool
	log       zerolog.Logger
	verifyCRC bool
	inflate   Inflater
}

// Image is the result of parsing a PNG stream, ready for pixel
// reconstruction.
type Image struct {
	Header    Header
	Palette   Palette
	Scanlines *Scanlines
	chunks    []ChunkInfo
}

func NewDecoder(data []byte, opts ...Option) (*PngDecoder, error) {
	if err := checkSignature(data); err != nil {
		return nil, err
	}
	p := &PngDecoder{
		data: data[signatureLength:],
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Decode parses a complete PNG held in memory.
func Decode(data []byte, opts ...Option) (*Image, error) {
	p, err := NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}
	return p.Decode()
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader, opts ...Option) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, oops.New(err, "failed to read png data")
	}
	return Decode(data, opts...)
}

// Decode walks every chunk up to IEND and inflates the image data. It may
// only be called once.
func (p *PngDecoder) Decode() (*Image, error) {
	if p.finished {
		return nil, oops.New(nil, "decoder already used")
	}
	p.finished = true

	offset := 0
	for {
		chunk, next, err := readChunk(p.data, offset, p.verifyCRC)
		if err != nil {
			return nil, err
		}
		p.chunks = append(p.chunks, chunk.info())
		if err := p.dispatch(&chunk); err != nil {
			return nil, err
		}
		if next.done {
			break
		}
		offset = next.next
	}

	scanlines, err := p.idat.Finish(*p.header, p.inflate)
	if err != nil {
		return nil, err
	}
	// The compressed stream is no longer needed.
	p.data = nil

	p.log.Debug().
		Uint32("width", p.header.Width).
		Uint32("height", p.header.Height).
		Stringer("mode", p.header.PixelMode).
		Int("chunks", len(p.chunks)).
		Msg("parsed png")

	return &Image{
		Header:    *p.header,
		Palette:   p.palette,
		Scanlines: scanlines,
		chunks:    p.chunks,
	}, nil
}

func (p *PngDecoder) dispatch(chunk *Chunk) error {
	p.log.Debug().
		Str("type", chunk.Type).
		Int("offset", chunk.Offset).
		Int("length", len(chunk.Data)).
		Msg("chunk")

	switch chunk.Type {
	case chunkIHDR:
		if p.header != nil {
			return oops.New(ErrDuplicateHeader, "second IHDR at offset %d", chunk.Offset)
		}
		header, err := ParseIHDR(chunk.Data)
		if err != nil {
			return err
		}
		p.header = &header
	case chunkPLTE:
		palette, err := ParsePLTE(chunk.Data, p.header.PixelMode)
		if err != nil {
			return err
		}
		if p.header.PixelMode != IndexedColor {
			p.log.Debug().Stringer("mode", p.header.PixelMode).Msg("palette present in non-indexed image")
		}
		p.palette = palette
	case chunkIDAT:
		p.idat.Append(chunk.Data)
	case chunkIEND:
	default:
		p.log.Trace().Str("type", chunk.Type).Bool("critical", chunk.Critical()).Msg("skipping chunk")
	}
	return nil
}

// Chunks returns every chunk seen while decoding, in stream order.
func (img *Image) Chunks() []ChunkInfo {
	return append([]ChunkInfo(nil), img.chunks...)
}

// Pixels reconstructs the pixel grid from the scanlines.
func (img *Image) Pixels() (*PixelGrid, error) {
	return reconstruct(img.Header, img.Palette, img.Scanlines)
}

// Render reconstructs the pixel grid and hands it to sink.
func (img *Image) Render(sink Sink) error {
	grid, err := img.Pixels()
	if err != nil {
		return err
	}
	return sink.WriteGrid(grid)
}
