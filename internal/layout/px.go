package layout

import (
	"math"
	"sync/atomic"
)

// Px is a length in physical pixels. Negative values are legal for
// positions (scrolling) but never for sizes or constraint bounds.
type Px int32

const (
	// ZeroPx is the zero length.
	ZeroPx Px = 0
	// MaxPx is the largest representable length.
	MaxPx Px = math.MaxInt32
	// MinPx is the smallest representable length.
	MinPx Px = math.MinInt32
)

// Add returns p + q, saturating at the numeric bounds instead of wrapping.
func (p Px) Add(q Px) Px {
	return saturate(int64(p) + int64(q))
}

// Sub returns p - q, saturating at the numeric bounds instead of wrapping.
func (p Px) Sub(q Px) Px {
	return saturate(int64(p) - int64(q))
}

// Mul returns p * n, saturating at the numeric bounds instead of wrapping.
func (p Px) Mul(n int32) Px {
	return saturate(int64(p) * int64(n))
}

// Div returns p / n truncated toward zero. Division by zero returns zero.
func (p Px) Div(n int32) Px {
	if n == 0 {
		return 0
	}
	return saturate(int64(p) / int64(n))
}

// NonNegative floors p at zero.
func (p Px) NonNegative() Px {
	if p < 0 {
		return 0
	}
	return p
}

// Min returns the smaller of p and q.
func (p Px) Min(q Px) Px {
	return min(p, q)
}

// Max returns the larger of p and q.
func (p Px) Max(q Px) Px {
	return max(p, q)
}

// Float32 returns p as a float32.
func (p Px) Float32() float32 {
	return float32(p)
}

// SubFloor returns p - q floored at zero. Used wherever a content size is
// reduced by padding.
func (p Px) SubFloor(q Px) Px {
	return p.Sub(q).NonNegative()
}

// PxFromFloat converts f to Px, truncating toward zero and saturating at the
// numeric bounds. NaN converts to zero.
func PxFromFloat(f float64) Px {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return MaxPx
	case f <= math.MinInt32:
		return MinPx
	}
	return Px(int32(f))
}

func saturate(v int64) Px {
	if v > math.MaxInt32 {
		return MaxPx
	}
	if v < math.MinInt32 {
		return MinPx
	}
	return Px(v)
}

// scaleFactorBits holds the float64 bits of the density scale factor.
// The platform integration updates it when the window moves between screens.
var scaleFactorBits atomic.Uint64

func init() {
	scaleFactorBits.Store(math.Float64bits(1.0))
}

// SetScaleFactor sets the physical pixels per density-independent pixel.
// Non-positive values are ignored.
func SetScaleFactor(f float64) {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return
	}
	scaleFactorBits.Store(math.Float64bits(f))
}

// ScaleFactor returns the current physical pixels per density-independent pixel.
func ScaleFactor() float64 {
	return math.Float64frombits(scaleFactorBits.Load())
}

// Dp is a density-independent length. Components are configured in Dp and
// convert to Px at measurement time.
type Dp float32

// ToPx converts d to physical pixels using the current scale factor.
func (d Dp) ToPx() Px {
	return PxFromFloat(float64(d) * ScaleFactor())
}

// Pixels returns d in physical pixels without truncation.
func (d Dp) Pixels() float32 {
	return float32(float64(d) * ScaleFactor())
}

// ToDp converts p to density-independent pixels using the current scale factor.
func (p Px) ToDp() Dp {
	return Dp(float64(p) / ScaleFactor())
}

// Position is a point in physical pixels.
type Position struct {
	X, Y Px
}

// Pos creates a Position.
func Pos(x, y Px) Position {
	return Position{X: x, Y: y}
}

// Add returns p offset by other, saturating.
func (p Position) Add(other Position) Position {
	return Position{X: p.X.Add(other.X), Y: p.Y.Add(other.Y)}
}

// Sub returns p minus other, saturating.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X.Sub(other.X), Y: p.Y.Sub(other.Y)}
}

// Offset returns p moved by (dx, dy), saturating.
func (p Position) Offset(dx, dy Px) Position {
	return Position{X: p.X.Add(dx), Y: p.Y.Add(dy)}
}

// Size is a width/height pair in physical pixels.
type Size struct {
	Width, Height Px
}

// NewSize creates a Size.
func NewSize(width, height Px) Size {
	return Size{Width: width, Height: height}
}

// NonNegative floors both dimensions at zero.
func (s Size) NonNegative() Size {
	return Size{Width: s.Width.NonNegative(), Height: s.Height.NonNegative()}
}
