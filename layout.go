// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tessera

import "github.com/grindlemire/go-tessera/internal/layout"

// Px is a length in physical pixels.
type Px = layout.Px

// Dp is a density-independent length.
type Dp = layout.Dp

const (
	ZeroPx = layout.ZeroPx
	MaxPx  = layout.MaxPx
	MinPx  = layout.MinPx
)

// Position is a point in physical pixels.
type Position = layout.Position

// Size is a width/height pair in physical pixels.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Bound is an optional length used for Wrap and Fill limits.
type Bound = layout.Bound

// DimensionKind selects how a DimensionValue is interpreted.
type DimensionKind = layout.DimensionKind

const (
	KindWrap  = layout.KindWrap
	KindFixed = layout.KindFixed
	KindFill  = layout.KindFill
)

// DimensionValue is the sizing instruction for one axis.
type DimensionValue = layout.DimensionValue

// Constraint pairs a width and a height DimensionValue.
type Constraint = layout.Constraint

// MainAxisAlignment specifies how children are distributed along the main axis.
type MainAxisAlignment = layout.MainAxisAlignment

const (
	MainStart        = layout.MainStart
	MainCenter       = layout.MainCenter
	MainEnd          = layout.MainEnd
	MainSpaceEvenly  = layout.MainSpaceEvenly
	MainSpaceBetween = layout.MainSpaceBetween
	MainSpaceAround  = layout.MainSpaceAround
)

// CrossAxisAlignment specifies how children are positioned on the cross axis.
type CrossAxisAlignment = layout.CrossAxisAlignment

const (
	CrossStart   = layout.CrossStart
	CrossCenter  = layout.CrossCenter
	CrossEnd     = layout.CrossEnd
	CrossStretch = layout.CrossStretch
)

// Alignment anchors a child inside a box at one of nine points.
type Alignment = layout.Alignment

const (
	TopStart     = layout.TopStart
	TopCenter    = layout.TopCenter
	TopEnd       = layout.TopEnd
	CenterStart  = layout.CenterStart
	Center       = layout.Center
	CenterEnd    = layout.CenterEnd
	BottomStart  = layout.BottomStart
	BottomCenter = layout.BottomCenter
	BottomEnd    = layout.BottomEnd
)

// Pos creates a Position.
func Pos(x, y Px) Position {
	return layout.Pos(x, y)
}

// NewSize creates a Size.
func NewSize(width, height Px) Size {
	return layout.NewSize(width, height)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height Px) Rect {
	return layout.NewRect(x, y, width, height)
}

// RectAt creates a Rect from an origin and a size.
func RectAt(origin Position, size Size) Rect {
	return layout.RectAt(origin, size)
}

// PxFromFloat converts f to Px, truncating and saturating.
func PxFromFloat(f float64) Px {
	return layout.PxFromFloat(f)
}

// SetScaleFactor sets the physical pixels per density-independent pixel.
func SetScaleFactor(f float64) {
	layout.SetScaleFactor(f)
}

// ScaleFactor returns the current physical pixels per density-independent pixel.
func ScaleFactor() float64 {
	return layout.ScaleFactor()
}

// Bounded returns a Bound holding px.
func Bounded(px Px) Bound {
	return layout.Bounded(px)
}

// Fixed creates a DimensionValue demanding exactly px.
func Fixed(px Px) DimensionValue {
	return layout.Fixed(px)
}

// Wrap creates an unbounded wrap-content DimensionValue.
func Wrap() DimensionValue {
	return layout.Wrap()
}

// WrapBetween creates a wrap-content DimensionValue bounded by min and max.
func WrapBetween(min, max Bound) DimensionValue {
	return layout.WrapBetween(min, max)
}

// Fill creates an unbounded fill DimensionValue.
func Fill() DimensionValue {
	return layout.Fill()
}

// FillBetween creates a fill DimensionValue bounded by min and max.
func FillBetween(min, max Bound) DimensionValue {
	return layout.FillBetween(min, max)
}

// NewConstraint creates a Constraint from two axis values.
func NewConstraint(width, height DimensionValue) Constraint {
	return layout.NewConstraint(width, height)
}

// FixedConstraint returns a constraint demanding exactly width × height.
func FixedConstraint(width, height Px) Constraint {
	return layout.FixedConstraint(width, height)
}

// WrapConstraint returns an unbounded wrap-content constraint.
func WrapConstraint() Constraint {
	return layout.WrapConstraint()
}

// FillConstraint returns an unbounded fill constraint.
func FillConstraint() Constraint {
	return layout.FillConstraint()
}

// JustifyOffsets returns main-axis positions for items of the given sizes.
func JustifyOffsets(mode MainAxisAlignment, available Px, sizes []Px) []Px {
	return layout.JustifyOffsets(mode, available, sizes)
}

// AlignOffset returns the cross-axis offset of an item inside a line.
func AlignOffset(mode CrossAxisAlignment, cross, item Px) Px {
	return layout.AlignOffset(mode, cross, item)
}
