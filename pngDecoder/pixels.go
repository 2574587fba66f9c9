package pngDecoder

import (
	"image"

	"pnGo/oops"
)

// PixelGrid is a row-major width×height grid of colors.
type PixelGrid struct {
	Width  int
	Height int
	Pix    []RGB
}

func NewPixelGrid(width, height int) *PixelGrid {
	return &PixelGrid{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

func (g *PixelGrid) At(x, y int) RGB {
	return g.Pix[y*g.Width+x]
}

func (g *PixelGrid) Set(x, y int, c RGB) {
	g.Pix[y*g.Width+x] = c
}

// Row returns the colors of row y. The slice aliases the grid.
func (g *PixelGrid) Row(y int) []RGB {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// Image copies the grid into an opaque *image.RGBA.
func (g *PixelGrid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i, c := range g.Pix {
		img.Pix[i*4] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// reconstructor turns unfiltered rows into pixels for one pixel mode.
type reconstructor interface {
	reconstruct(grid *PixelGrid, y int, raw []byte) error
}

// indexedReconstructor maps 8-bit palette indices to palette colors.
type indexedReconstructor struct {
	palette Palette
}

func (r indexedReconstructor) reconstruct(grid *PixelGrid, y int, raw []byte) error {
	for x := 0; x < grid.Width; x++ {
		index := raw[x]
		if int(index) >= len(r.palette) {
			return oops.New(ErrPaletteIndexOutOfRange, "pixel (%d, %d) has index %d, palette has %d entries", x, y, index, len(r.palette))
		}
		grid.Set(x, y, r.palette[index])
	}
	return nil
}

// reconstructorFor picks the strategy for a pixel mode. Every mode is listed;
// only IndexedColor has an implementation.
func reconstructorFor(mode PixelMode, palette Palette) (reconstructor, error) {
	switch mode {
	case IndexedColor:
		return indexedReconstructor{palette: palette}, nil
	case Grayscale, Truecolor, GrayscaleAlpha, TruecolorAlpha:
		return nil, oops.New(ErrUnsupportedPixelMode, "%s images are not implemented", mode)
	}
	return nil, oops.New(ErrUnsupportedPixelMode, "unknown pixel mode %d", int(mode))
}

func reconstruct(header Header, palette Palette, scanlines *Scanlines) (*PixelGrid, error) {
	if header.InterlaceMethod != NoInterlace {
		return nil, oops.New(ErrUnsupportedInterlace, "interlace method %d", header.InterlaceMethod)
	}
	r, err := reconstructorFor(header.PixelMode, palette)
	if err != nil {
		return nil, err
	}

	grid := NewPixelGrid(int(header.Width), int(header.Height))
	for y, row := range scanlines.Rows {
		raw, err := unfilter(row, y)
		if err != nil {
			return nil, err
		}
		if err := r.reconstruct(grid, y, raw); err != nil {
			return nil, err
		}
	}
	return grid, nil
}
