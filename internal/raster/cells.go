package raster

import (
	"image"
	"image/color"
	"strings"
)

// ramp orders glyphs from lightest to darkest.
const ramp = " .:-=+*#%@"

// Cells downsamples img into rows of cols characters, choosing each glyph by
// the average darkness of the pixels it covers. Transparent pixels count as
// white.
func Cells(img image.Image, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	out := make([]string, rows)
	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.Reset()
		y0 := b.Min.Y + row*b.Dy()/rows
		y1 := max(b.Min.Y+(row+1)*b.Dy()/rows, y0+1)
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*b.Dx()/cols
			x1 := max(b.Min.X+(col+1)*b.Dx()/cols, x0+1)
			sb.WriteByte(ramp[shade(img, x0, y0, x1, y1)])
		}
		out[row] = sb.String()
	}
	return out
}

// shade returns the ramp index for the mean darkness of a pixel block.
func shade(img image.Image, x0, y0, x1, y1 int) int {
	var sum, n float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			a := float64(c.A) / 255
			lum := (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
			// Composite over white.
			lum = lum*a + (1 - a)
			sum += 1 - lum
			n++
		}
	}
	if n == 0 {
		return 0
	}
	idx := int(sum / n * float64(len(ramp)))
	return min(max(idx, 0), len(ramp)-1)
}
