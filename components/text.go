package components

import (
	"math"

	tessera "github.com/grindlemire/go-tessera"
	"github.com/grindlemire/go-tessera/internal/fonts"
)

// DefaultTextSize is used when TextArgs.Size is zero.
const DefaultTextSize tessera.Dp = 25

// TextArgs configures a Text.
type TextArgs struct {
	Text string
	// Color defaults to Black when zero.
	Color Color
	// Size is the font size. Defaults to DefaultTextSize.
	Size tessera.Dp
	// LineHeight defaults to 1.2 × Size.
	LineHeight tessera.Dp
}

// Text draws a block of Go Regular text, word-wrapped to the width offered
// by its parent. Lines that do not fit the offered height are dropped, but
// the first line is always kept.
func Text(ui *tessera.Composer, args TextArgs) tessera.NodeID {
	return ui.Component("text", func() {
		ui.Measure(func(in *tessera.MeasureInput) (tessera.ComputedData, error) {
			return measureText(in, args)
		})
	})
}

// Label is Text with only the string and size set.
func Label(ui *tessera.Composer, text string, size tessera.Dp) tessera.NodeID {
	return Text(ui, TextArgs{Text: text, Size: size})
}

func measureText(in *tessera.MeasureInput, args TextArgs) (tessera.ComputedData, error) {
	size := args.Size
	if size <= 0 {
		size = DefaultTextSize
	}
	lineHeight := args.LineHeight.Pixels()
	if lineHeight <= 0 {
		lineHeight = size.Pixels() * 1.2
	}
	color := args.Color
	if color == (Color{}) {
		color = Black
	}

	face, err := fonts.Face(float64(size.Pixels()))
	if err != nil {
		return tessera.ComputedData{}, err
	}

	eff := in.EffectiveConstraint
	maxWidth := -1
	if w, ok := eff.Width.UpperBound(); ok {
		maxWidth = int(w)
	}
	lines := fonts.Wrap(face, args.Text, maxWidth)
	if h, ok := eff.Height.UpperBound(); ok {
		fit := max(int(float64(h)/float64(lineHeight)+1e-4), 1)
		if len(lines) > fit {
			lines = lines[:fit]
		}
	}

	var width int
	for _, line := range lines {
		width = max(width, fonts.Width(face, line))
	}
	height := ceilPx(float64(lineHeight) * float64(len(lines)))

	in.SetDrawable(TextCommand{
		Lines:      lines,
		Color:      color,
		Size:       size.Pixels(),
		LineHeight: lineHeight,
	})
	content := tessera.NewSize(tessera.Px(width), height)
	return tessera.ComputedFromSize(eff.Resolve(content)), nil
}

// ceilPx rounds v up to whole pixels, ignoring float noise below 1e-4.
func ceilPx(v float64) tessera.Px {
	return tessera.Px(math.Ceil(v - 1e-4))
}
