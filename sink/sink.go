package sink

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"

	"pnGo/config"
	"pnGo/oops"
	"pnGo/pngDecoder"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type encoder func(w io.Writer, img image.Image) error

var encoders = map[config.OutputFormat]encoder{
	config.PPM: WritePPM,
	config.BMP: bmp.Encode,
	config.TIFF: func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
	config.PNG: png.Encode,
}

// WriterSink encodes grids to an io.Writer.
type WriterSink struct {
	W      io.Writer
	Format config.OutputFormat
	Scale  int
}

func (s *WriterSink) WriteGrid(grid *pngDecoder.PixelGrid) error {
	encode, ok := encoders[s.Format]
	if !ok {
		return oops.New(nil, "no encoder for format %q", s.Format)
	}
	var img image.Image = grid.Image()
	if s.Scale > 1 {
		img = Scale(img, s.Scale)
	}

	bw := bufio.NewWriter(s.W)
	if err := encode(bw, img); err != nil {
		return oops.New(err, "failed to encode %s", s.Format)
	}
	if err := bw.Flush(); err != nil {
		return oops.New(err, "failed to flush %s output", s.Format)
	}
	return nil
}

// FileSink writes each grid to a file, replacing any existing file.
type FileSink struct {
	Path   string
	Format config.OutputFormat
	Scale  int
}

func NewFileSink(cfg config.OutputConfig) *FileSink {
	return &FileSink{
		Path:   cfg.Path,
		Format: cfg.Format,
		Scale:  cfg.Scale,
	}
}

func (s *FileSink) WriteGrid(grid *pngDecoder.PixelGrid) error {
	file, err := os.Create(s.Path)
	if err != nil {
		return oops.New(err, "failed to create output file")
	}
	ws := WriterSink{W: file, Format: s.Format, Scale: s.Scale}
	if err := ws.WriteGrid(grid); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return oops.New(err, "failed to close output file")
	}
	return nil
}
