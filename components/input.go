package components

import (
	tessera "github.com/grindlemire/go-tessera"
)

// pointer is where a component last saw the cursor, carried across frames.
type pointer struct {
	pos   tessera.Position
	known bool
	seen  bool // at least one frame has been observed
}

// leftPressInside reports whether any left-button press in the frame landed
// inside bounds, and returns the pointer as of the end of the frame.
//
// Each press is located at the pointer position in effect when it arrived.
// Events before the frame's first move are located at last, the pointer the
// component saw at the end of its previous frame. A frame with no moves uses
// the frame's cursor position, which then held for the whole frame.
func leftPressInside(in *tessera.StateHandlerInput, bounds tessera.Rect, last pointer) (bool, pointer) {
	end := pointer{pos: in.CursorPosition, known: in.HasCursor, seen: true}

	pos, known := in.CursorPosition, in.HasCursor
	if movedInFrame(in) {
		pos, known = last.pos, last.known && last.seen
	}

	hit := false
	for _, ev := range in.CursorEvents {
		switch c := ev.Content.(type) {
		case tessera.PointerMoved:
			pos, known = c.Position, true
		case tessera.PointerLeft:
			known = false
		case tessera.Pressed:
			if c.Button == tessera.MouseLeft && known && bounds.Contains(pos) {
				hit = true
			}
		}
	}
	return hit, end
}

func movedInFrame(in *tessera.StateHandlerInput) bool {
	for _, ev := range in.CursorEvents {
		switch ev.Content.(type) {
		case tessera.PointerMoved, tessera.PointerLeft:
			return true
		}
	}
	return false
}
