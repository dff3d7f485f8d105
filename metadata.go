package tessera

// MeasureState tracks a node's progress through one frame.
type MeasureState uint8

const (
	Unmeasured MeasureState = iota
	Measuring
	Measured
	Placed
)

// String returns the state name.
func (s MeasureState) String() string {
	switch s {
	case Unmeasured:
		return "Unmeasured"
	case Measuring:
		return "Measuring"
	case Measured:
		return "Measured"
	case Placed:
		return "Placed"
	default:
		return "Unknown"
	}
}

// ComputedData is a node's resolved size.
type ComputedData struct {
	Width  Px
	Height Px
}

// Size returns the data as a Size.
func (c ComputedData) Size() Size {
	return Size{Width: c.Width, Height: c.Height}
}

// ComputedFromSize converts a Size to ComputedData.
func ComputedFromSize(s Size) ComputedData {
	return ComputedData{Width: s.Width, Height: s.Height}
}

// NodeMetadata is the mutable per-frame side table entry for one node.
type NodeMetadata struct {
	// Constraint is the node's own (intrinsic) constraint.
	Constraint Constraint

	// Effective is the constraint the node was last measured under.
	Effective Constraint

	// Computed is the node's resolved size once measured.
	Computed ComputedData

	// Position is relative to the parent's origin once placed.
	Position Position

	// Drawable is produced by the node's own measure callback.
	Drawable Drawable

	State MeasureState

	placed bool
}

// IsPlaced reports whether the node has a recorded position.
func (m *NodeMetadata) IsPlaced() bool {
	return m.placed
}
