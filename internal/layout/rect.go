package layout

// Rect represents a rectangle in physical pixels.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          Px
	Width, Height Px
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height Px) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rect from an origin and a size.
func RectAt(origin Position, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Position {
	return Position{X: r.X, Y: r.Y}
}

// Size returns the dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() Px {
	return r.X.Add(r.Width)
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() Px {
	return r.Y.Add(r.Height)
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy Px) Rect {
	return Rect{X: r.X.Add(dx), Y: r.Y.Add(dy), Width: r.Width, Height: r.Height}
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right.Sub(x)
	height := bottom.Sub(y)

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}
