package sink

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor without smoothing, so palette
// colors survive unchanged.
func Scale(img image.Image, factor int) *image.RGBA {
	src := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, src.Dx()*factor, src.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	return dst
}
