package sink

import (
	"fmt"
	"image"
	"io"
)

// WritePPM writes img as a binary (P6) portable pixmap. Alpha is dropped.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	_, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	if err != nil {
		return err
	}

	line := make([]byte, bounds.Dx()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		i := 0
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			line[i] = byte(r >> 8)
			line[i+1] = byte(g >> 8)
			line[i+2] = byte(b >> 8)
			i += 3
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
