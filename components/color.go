package components

import (
	"errors"
	"image/color"
	"strings"
)

// Color is a linear RGBA color with components in [0, 1].
type Color [4]float32

// Predefined colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// RGBA returns a Color from float components.
func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// RGB8 returns an opaque Color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB", "#RRGGBBAA" and "#RGB".
func HexColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6, 8:
		var c [4]uint8
		c[3] = 0xFF
		for i := 0; i < len(hex)/2; i++ {
			v, err := parseHexByte(hex[i*2 : i*2+2])
			if err != nil {
				return Color{}, err
			}
			c[i] = v
		}
		return RGB8(c[0], c[1], c[2]).WithAlpha(float32(c[3]) / 255), nil
	case 3:
		// #RGB -> expand to #RRGGBB
		var c [3]uint8
		for i := range c {
			v, err := parseHexNibble(hex[i])
			if err != nil {
				return Color{}, err
			}
			c[i] = v<<4 | v
		}
		return RGB8(c[0], c[1], c[2]), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB, #RRGGBB or #RRGGBBAA")
	}
}

// MustHexColor is like HexColor but panics on malformed input. Use it for
// literals.
func MustHexColor(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// IsTransparent reports whether c has no coverage.
func (c Color) IsTransparent() bool {
	return c[3] <= 0
}

// NRGBA converts c to an 8-bit non-premultiplied color, clamping each
// component to [0, 1].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: unit8(c[0]), G: unit8(c[1]), B: unit8(c[2]), A: unit8(c[3])}
}

// Luminance returns the relative luminance of c in [0, 1].
func (c Color) Luminance() float32 {
	return 0.2126*clampUnit(c[0]) + 0.7152*clampUnit(c[1]) + 0.0722*clampUnit(c[2])
}

func unit8(v float32) uint8 {
	return uint8(clampUnit(v)*255 + 0.5)
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
