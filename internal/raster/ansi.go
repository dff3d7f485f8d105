package raster

import (
	"image"
	"image/color"
	"os"
	"strconv"
	"strings"
)

// ColorDepth is the color support of the terminal a preview is written to.
type ColorDepth uint8

const (
	// ColorNone previews with the monochrome glyph ramp.
	ColorNone ColorDepth = iota
	// Color256 uses the xterm 256-color palette.
	Color256
	// ColorTrue uses 24-bit color.
	ColorTrue
)

// String returns the depth name.
func (d ColorDepth) String() string {
	switch d {
	case Color256:
		return "256"
	case ColorTrue:
		return "true"
	default:
		return "none"
	}
}

// ParseColorDepth parses "none", "256" or "true".
func ParseColorDepth(s string) (ColorDepth, bool) {
	switch strings.ToLower(s) {
	case "none", "mono":
		return ColorNone, true
	case "256":
		return Color256, true
	case "true", "truecolor", "24bit":
		return ColorTrue, true
	default:
		return ColorNone, false
	}
}

// DetectColorDepth determines color support from environment variables.
// Returns ColorNone when nothing indicates color.
func DetectColorDepth() ColorDepth {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrue
	}

	// Terminal emulators known to support true color.
	for _, env := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(env) != "" {
			return ColorTrue
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "" || term == "dumb":
		return ColorNone
	case strings.Contains(term, "truecolor"):
		return ColorTrue
	case strings.Contains(term, "256color"):
		return Color256
	default:
		return ColorNone
	}
}

// upperHalf is drawn with the top pixel block as foreground and the bottom
// block as background, so each character cell shows two rows of color.
const upperHalf = "▀"

// ColorCells is like Cells but paints each character cell with the average
// colors of the pixels it covers. Every row covers two pixel blocks
// vertically. With ColorNone it falls back to Cells.
func ColorCells(img image.Image, cols, rows int, depth ColorDepth) []string {
	if depth == ColorNone {
		return Cells(img, cols, rows)
	}
	if cols <= 0 || rows <= 0 {
		return nil
	}

	b := img.Bounds()
	blocks := rows * 2
	out := make([]string, rows)
	e := newEscBuilder(cols * 40)
	for row := 0; row < rows; row++ {
		e.Reset()
		ty0 := b.Min.Y + (row*2)*b.Dy()/blocks
		ty1 := max(b.Min.Y+(row*2+1)*b.Dy()/blocks, ty0+1)
		by1 := max(b.Min.Y+(row*2+2)*b.Dy()/blocks, ty1+1)
		for col := 0; col < cols; col++ {
			x0 := b.Min.X + col*b.Dx()/cols
			x1 := max(b.Min.X+(col+1)*b.Dx()/cols, x0+1)
			e.SetColors(average(img, x0, ty0, x1, ty1), average(img, x0, ty1, x1, by1), depth)
			e.WriteString(upperHalf)
		}
		e.ResetStyle()
		out[row] = string(e.Bytes())
	}
	return out
}

// average returns the mean color of a pixel block composited over white.
func average(img image.Image, x0, y0, x1, y1 int) color.NRGBA {
	var r, g, bl, n float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			a := float64(c.A) / 255
			r += float64(c.R)*a + 255*(1-a)
			g += float64(c.G)*a + 255*(1-a)
			bl += float64(c.B)*a + 255*(1-a)
			n++
		}
	}
	if n == 0 {
		return color.NRGBA{255, 255, 255, 255}
	}
	return color.NRGBA{R: uint8(r/n + 0.5), G: uint8(g/n + 0.5), B: uint8(bl/n + 0.5), A: 255}
}

// escBuilder builds ANSI escape sequences into a reusable buffer.
type escBuilder struct {
	buf []byte
}

func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// ResetStyle resets all attributes.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// SetColors sets the foreground and background colors.
func (e *escBuilder) SetColors(fg, bg color.NRGBA, depth ColorDepth) {
	e.writeCSI()
	e.buf = append(e.buf, '0')
	e.appendColor(fg, true, depth)
	e.appendColor(bg, false, depth)
	e.buf = append(e.buf, 'm')
}

// appendColor appends the parameters for one color. fg selects foreground
// (38) or background (48).
func (e *escBuilder) appendColor(c color.NRGBA, fg bool, depth ColorDepth) {
	base := 48
	if fg {
		base = 38
	}
	e.buf = append(e.buf, ';')
	e.writeInt(base)
	if depth == ColorTrue {
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(c.R))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.G))
		e.buf = append(e.buf, ';')
		e.writeInt(int(c.B))
		return
	}
	e.buf = append(e.buf, ';', '5', ';')
	e.writeInt(int(ansi256(c.R, c.G, c.B)))
}

// WriteString appends s.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// ansi256 approximates an RGB color with the xterm 256-color palette.
func ansi256(r, g, b uint8) uint8 {
	if r == g && g == b {
		// Grayscale ramp: 232-255 (24 shades)
		if r < 8 {
			return 16 // Black in the color cube is closer
		}
		if r > 248 {
			return 231 // White in the color cube is closer
		}
		return uint8(232 + (int(r)-8)*24/240)
	}

	// 6x6x6 color cube: 16-231
	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return uint8(16 + 36*ri + 6*gi + bi)
}
