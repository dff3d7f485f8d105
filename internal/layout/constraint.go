package layout

import "fmt"

// Constraint is the per-axis sizing instruction attached to a node before it
// is measured. The zero value wraps content on both axes with no bounds.
type Constraint struct {
	Width  DimensionValue
	Height DimensionValue
}

// NewConstraint creates a Constraint from two axis values.
func NewConstraint(width, height DimensionValue) Constraint {
	return Constraint{Width: width, Height: height}
}

// FixedConstraint returns a constraint demanding exactly width × height.
func FixedConstraint(width, height Px) Constraint {
	return Constraint{Width: Fixed(width), Height: Fixed(height)}
}

// WrapConstraint returns an unbounded wrap-content constraint on both axes.
func WrapConstraint() Constraint {
	return Constraint{Width: Wrap(), Height: Wrap()}
}

// FillConstraint returns an unbounded fill constraint on both axes.
func FillConstraint() Constraint {
	return Constraint{Width: Fill(), Height: Fill()}
}

// Merge combines c (the node's own constraint) with parent (the constraint
// offered by the parent) axis by axis. See DimensionValue.Merge.
func (c Constraint) Merge(parent Constraint) Constraint {
	return Constraint{
		Width:  c.Width.Merge(parent.Width),
		Height: c.Height.Merge(parent.Height),
	}
}

// Deflate shrinks the constraint by horizontal and vertical amounts,
// floored at zero on each axis.
func (c Constraint) Deflate(horizontal, vertical Px) Constraint {
	return Constraint{
		Width:  c.Width.Deflate(horizontal),
		Height: c.Height.Deflate(vertical),
	}
}

// Resolve returns the final size for content measured under c.
func (c Constraint) Resolve(content Size) Size {
	return Size{
		Width:  c.Width.Resolve(content.Width),
		Height: c.Height.Resolve(content.Height),
	}
}

// MaxSize returns the upper bounds on both axes. Unbounded axes report ok=false.
func (c Constraint) MaxSize() (width Px, widthOK bool, height Px, heightOK bool) {
	width, widthOK = c.Width.UpperBound()
	height, heightOK = c.Height.UpperBound()
	return width, widthOK, height, heightOK
}

// String renders both axes.
func (c Constraint) String() string {
	return fmt.Sprintf("(%s × %s)", c.Width, c.Height)
}
