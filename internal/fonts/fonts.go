// Package fonts provides the Go Regular face used to measure and draw text.
//
// Faces are cached per pixel size. A font.Face is not safe for concurrent
// use, so callers that share a face across goroutines must serialise access;
// the tessera frame runs on one goroutine and measurement and rasterisation
// never overlap.
package fonts

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error

	mu    sync.Mutex
	faces = map[float64]font.Face{}
)

// Face returns the Go Regular face at size pixels.
func Face(size float64) (font.Face, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}

	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	if parseErr != nil {
		return nil, fmt.Errorf("parse go regular: %w", parseErr)
	}

	mu.Lock()
	defer mu.Unlock()
	if f, ok := faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face at %v px: %w", size, err)
	}
	faces[size] = f
	return f, nil
}

// Width returns the advance width of s in face, rounded up to whole pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// Wrap breaks text into lines no wider than maxWidth. Words are split on
// whitespace; explicit newlines always break. A word wider than maxWidth is
// broken between runes. A negative maxWidth disables wrapping.
func Wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if maxWidth < 0 {
			lines = append(lines, paragraph)
			continue
		}
		lines = append(lines, wrapParagraph(face, paragraph, fixed.I(maxWidth))...)
	}
	return lines
}

func wrapParagraph(face font.Face, paragraph string, maxWidth fixed.Int26_6) []string {
	words := strings.FieldsFunc(paragraph, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// Break words that cannot fit on a line of their own.
		for font.MeasureString(face, word) > maxWidth {
			head, tail := splitWord(face, word, maxWidth)
			lines = append(lines, head)
			word = tail
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// splitWord returns the longest prefix of word that fits in maxWidth, never
// less than one rune, and the remainder.
func splitWord(face font.Face, word string, maxWidth fixed.Int26_6) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && font.MeasureString(face, string(runes[:n+1])) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
