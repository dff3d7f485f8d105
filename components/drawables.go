package components

import "fmt"

// ShapeKind selects how a ShapeCommand is filled.
type ShapeKind uint8

const (
	// ShapeRect is a filled rectangle.
	ShapeRect ShapeKind = iota
	// ShapeOutlinedRect is a rectangle stroked with BorderWidth.
	ShapeOutlinedRect
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "Rect"
	case ShapeOutlinedRect:
		return "OutlinedRect"
	default:
		return fmt.Sprintf("ShapeKind(%d)", k)
	}
}

// Shadow describes a drop shadow behind a shape.
type Shadow struct {
	Color      Color
	OffsetX    float32
	OffsetY    float32
	Smoothness float32
}

// ShapeCommand draws a rectangle covering the node's bounds.
type ShapeCommand struct {
	Kind         ShapeKind
	Color        Color
	CornerRadius float32
	BorderWidth  float32
	Shadow       *Shadow
}

// String renders the command for dumps.
func (s ShapeCommand) String() string {
	c := s.Color.NRGBA()
	out := fmt.Sprintf("%s #%02x%02x%02x%02x r=%g", s.Kind, c.R, c.G, c.B, c.A, s.CornerRadius)
	if s.Kind == ShapeOutlinedRect {
		out += fmt.Sprintf(" border=%g", s.BorderWidth)
	}
	if s.Shadow != nil {
		out += " shadow"
	}
	return out
}

// TextCommand draws pre-wrapped lines starting at the node's origin.
type TextCommand struct {
	Lines []string
	Color Color
	// Size is the font size in physical pixels.
	Size float32
	// LineHeight is the distance between baselines in physical pixels.
	LineHeight float32
}

// String renders the command for dumps.
func (t TextCommand) String() string {
	return fmt.Sprintf("Text %q size=%g", t.Lines, t.Size)
}
