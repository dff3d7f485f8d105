package layout

import "fmt"

// Bound is an optional length. The zero value is unbounded.
type Bound struct {
	Px    Px
	Valid bool
}

// Bounded returns a Bound holding px, floored at zero.
func Bounded(px Px) Bound {
	return Bound{Px: px.NonNegative(), Valid: true}
}

// Tighter returns the smaller of two bounds. An unbounded side never wins
// over a bounded one.
func (b Bound) Tighter(other Bound) Bound {
	switch {
	case !b.Valid:
		return other
	case !other.Valid:
		return b
	case other.Px < b.Px:
		return other
	default:
		return b
	}
}

// SubFloor returns the bound reduced by d, floored at zero.
// An unbounded value stays unbounded.
func (b Bound) SubFloor(d Px) Bound {
	if !b.Valid {
		return b
	}
	return Bound{Px: b.Px.SubFloor(d), Valid: true}
}

// Or returns the bound's length, or fallback when unbounded.
func (b Bound) Or(fallback Px) Px {
	if b.Valid {
		return b.Px
	}
	return fallback
}

func (b Bound) nonNegative() Bound {
	if b.Valid {
		b.Px = b.Px.NonNegative()
	}
	return b
}

func (b Bound) String() string {
	if !b.Valid {
		return "none"
	}
	return fmt.Sprintf("%d", b.Px)
}

// DimensionKind selects how a DimensionValue is interpreted.
type DimensionKind uint8

const (
	KindWrap  DimensionKind = iota // Size to content, optionally bounded
	KindFixed                      // Exact length
	KindFill                       // Take all space offered by the parent
)

// String returns the kind name.
func (k DimensionKind) String() string {
	switch k {
	case KindWrap:
		return "Wrap"
	case KindFixed:
		return "Fixed"
	case KindFill:
		return "Fill"
	default:
		return fmt.Sprintf("DimensionKind(%d)", k)
	}
}

// DimensionValue is the sizing instruction for one axis.
// The zero value is Wrap with no bounds.
type DimensionValue struct {
	Kind DimensionKind

	// Value is the exact length for KindFixed.
	Value Px

	// Min and Max bound KindWrap and KindFill.
	Min Bound
	Max Bound
}

// Fixed returns a value demanding exactly px (floored at zero).
func Fixed(px Px) DimensionValue {
	return DimensionValue{Kind: KindFixed, Value: px.NonNegative()}
}

// Wrap returns an unbounded wrap-content value.
func Wrap() DimensionValue {
	return DimensionValue{Kind: KindWrap}
}

// WrapBetween returns a wrap-content value bounded by min and max.
func WrapBetween(min, max Bound) DimensionValue {
	return DimensionValue{Kind: KindWrap, Min: min.nonNegative(), Max: max.nonNegative()}
}

// Fill returns an unbounded fill value.
func Fill() DimensionValue {
	return DimensionValue{Kind: KindFill}
}

// FillBetween returns a fill value bounded by min and max.
func FillBetween(min, max Bound) DimensionValue {
	return DimensionValue{Kind: KindFill, Min: min.nonNegative(), Max: max.nonNegative()}
}

// IsFixed returns true for KindFixed.
func (d DimensionValue) IsFixed() bool { return d.Kind == KindFixed }

// IsWrap returns true for KindWrap.
func (d DimensionValue) IsWrap() bool { return d.Kind == KindWrap }

// IsFill returns true for KindFill.
func (d DimensionValue) IsFill() bool { return d.Kind == KindFill }

// UpperBound returns the largest length this value allows, if any.
// Fixed values bound at their length; Wrap and Fill at their Max.
func (d DimensionValue) UpperBound() (Px, bool) {
	b := d.upperBound()
	return b.Px, b.Valid
}

func (d DimensionValue) upperBound() Bound {
	if d.Kind == KindFixed {
		return Bounded(d.Value)
	}
	return d.Max
}

// Merge combines this value (what the node asked for) with the value its
// parent offers (what space is available) and returns the effective value.
//
//   - Fixed always wins: the node gets exactly its length.
//   - Wrap keeps its min and tightens its max with the parent's upper bound.
//   - Fill takes the parent's Fixed length, or the parent's Fill max. When the
//     parent offers nothing to fill it degrades to Wrap with its own bounds,
//     tightened by the parent's Wrap max if present.
func (d DimensionValue) Merge(parent DimensionValue) DimensionValue {
	switch d.Kind {
	case KindFixed:
		return Fixed(d.Value)
	case KindFill:
		switch {
		case parent.Kind == KindFixed:
			return Fixed(parent.Value)
		case parent.Kind == KindFill && parent.Max.Valid:
			return FillBetween(d.Min, d.Max.Tighter(parent.Max))
		default:
			return WrapBetween(d.Min, d.Max.Tighter(parent.upperBound()))
		}
	default:
		return WrapBetween(d.Min, d.Max.Tighter(parent.upperBound()))
	}
}

// Resolve returns the final length for a node whose content measured
// content. Fixed returns its length. Wrap clamps content into [Min, Max].
// Fill returns Max when bounded (raised to Min if needed), otherwise it
// behaves like Wrap. The result is never negative.
func (d DimensionValue) Resolve(content Px) Px {
	switch d.Kind {
	case KindFixed:
		return d.Value.NonNegative()
	case KindFill:
		if d.Max.Valid {
			return d.Max.Px.Max(d.Min.Or(0)).NonNegative()
		}
		return clamp(content, d.Min, d.Max).NonNegative()
	default:
		return clamp(content, d.Min, d.Max).NonNegative()
	}
}

// Deflate shrinks every length in d by amount, floored at zero. Containers
// use it to turn their own constraint into the constraint offered to content
// inside their padding.
func (d DimensionValue) Deflate(amount Px) DimensionValue {
	switch d.Kind {
	case KindFixed:
		return Fixed(d.Value.SubFloor(amount))
	default:
		return DimensionValue{Kind: d.Kind, Min: d.Min.SubFloor(amount), Max: d.Max.SubFloor(amount)}
	}
}

// String renders the value in a compact form, e.g. "Fixed(40)" or "Wrap{none,380}".
func (d DimensionValue) String() string {
	if d.Kind == KindFixed {
		return fmt.Sprintf("Fixed(%d)", d.Value)
	}
	return fmt.Sprintf("%s{%s,%s}", d.Kind, d.Min, d.Max)
}

// clamp restricts v to [lo, hi] where either side may be unbounded.
// If lo > hi, lo wins (matches CSS behavior).
func clamp(v Px, lo, hi Bound) Px {
	if hi.Valid && v > hi.Px {
		v = hi.Px
	}
	if lo.Valid && v < lo.Px {
		v = lo.Px
	}
	return v
}
