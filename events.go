package tessera

import (
	"fmt"
	"time"
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "Left"
	case MouseRight:
		return "Right"
	case MouseMiddle:
		return "Middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", b)
	}
}

// CursorEventContent is the payload of a CursorEvent. It is implemented by
// PointerMoved, PointerLeft, Pressed, Released and Scrolled.
type CursorEventContent interface {
	isCursorEventContent()
}

// PointerMoved reports the pointer's new position.
type PointerMoved struct {
	Position Position
}

// PointerLeft reports that the pointer left the window.
type PointerLeft struct{}

// Pressed reports a button press.
type Pressed struct {
	Button MouseButton
}

// Released reports a button release.
type Released struct {
	Button MouseButton
}

// Scrolled reports a scroll delta in pixels.
type Scrolled struct {
	DeltaX, DeltaY float32
}

func (PointerMoved) isCursorEventContent() {}
func (PointerLeft) isCursorEventContent()  {}
func (Pressed) isCursorEventContent()      {}
func (Released) isCursorEventContent()     {}
func (Scrolled) isCursorEventContent()     {}

// CursorEvent is one timestamped pointer event.
type CursorEvent struct {
	Timestamp time.Time
	Content   CursorEventContent
}

// KeyboardEvent is a raw platform key event. The core queues and delivers it
// without interpreting Payload.
type KeyboardEvent struct {
	Timestamp time.Time
	Payload   any
}
