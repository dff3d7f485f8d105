package layout

// MainAxisAlignment specifies how children are distributed along the main axis.
type MainAxisAlignment uint8

const (
	MainStart        MainAxisAlignment = iota // Pack at start
	MainCenter                                // Center children
	MainEnd                                   // Pack at end
	MainSpaceEvenly                           // Equal space between and at edges
	MainSpaceBetween                          // Even space between, none at edges
	MainSpaceAround                           // Even space around each child
)

// String returns the alignment name.
func (m MainAxisAlignment) String() string {
	switch m {
	case MainStart:
		return "Start"
	case MainCenter:
		return "Center"
	case MainEnd:
		return "End"
	case MainSpaceEvenly:
		return "SpaceEvenly"
	case MainSpaceBetween:
		return "SpaceBetween"
	case MainSpaceAround:
		return "SpaceAround"
	default:
		return "Unknown"
	}
}

// CrossAxisAlignment specifies how children are positioned on the cross axis.
type CrossAxisAlignment uint8

const (
	CrossStart   CrossAxisAlignment = iota // Align to start of cross axis
	CrossCenter                            // Center on cross axis
	CrossEnd                               // Align to end of cross axis
	CrossStretch                           // Stretch to fill cross axis
)

// String returns the alignment name.
func (c CrossAxisAlignment) String() string {
	switch c {
	case CrossStart:
		return "Start"
	case CrossCenter:
		return "Center"
	case CrossEnd:
		return "End"
	case CrossStretch:
		return "Stretch"
	default:
		return "Unknown"
	}
}

// Alignment anchors a child inside a box at one of nine points.
type Alignment uint8

const (
	TopStart Alignment = iota
	TopCenter
	TopEnd
	CenterStart
	Center
	CenterEnd
	BottomStart
	BottomCenter
	BottomEnd
)

// Offset returns the child's position inside container for this anchor.
// Children larger than the container are pinned to the start edge.
func (a Alignment) Offset(container, child Size) Position {
	freeX := container.Width.SubFloor(child.Width)
	freeY := container.Height.SubFloor(child.Height)

	var x, y Px
	switch a % 3 {
	case 1:
		x = freeX / 2
	case 2:
		x = freeX
	}
	switch a / 3 {
	case 1:
		y = freeY / 2
	case 2:
		y = freeY
	}
	return Position{X: x, Y: y}
}
