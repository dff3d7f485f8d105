package tessera

import (
	"sync"
	"time"
)

// CursorState collects pointer input between frames. Platform integrations
// feed it from their event goroutine; the frame driver drains it once per
// frame with TakeEvents.
type CursorState struct {
	mu       sync.Mutex
	position Position
	inside   bool
	events   []CursorEvent
	now      func() time.Time
}

// NewCursorState creates an empty CursorState.
func NewCursorState() *CursorState {
	return &CursorState{now: time.Now}
}

// UpdatePosition records the pointer position and queues a PointerMoved event.
func (c *CursorState) UpdatePosition(p Position) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = p
	c.inside = true
	c.pushLocked(PointerMoved{Position: p})
}

// Leave clears the pointer position and queues a PointerLeft event.
func (c *CursorState) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inside = false
	c.position = Position{}
	c.pushLocked(PointerLeft{})
}

// Press queues a button press.
func (c *CursorState) Press(b MouseButton) {
	c.push(Pressed{Button: b})
}

// Release queues a button release.
func (c *CursorState) Release(b MouseButton) {
	c.push(Released{Button: b})
}

// Scroll queues a scroll delta.
func (c *CursorState) Scroll(dx, dy float32) {
	c.push(Scrolled{DeltaX: dx, DeltaY: dy})
}

// TouchStart moves the pointer to p and presses the left button.
func (c *CursorState) TouchStart(p Position) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.position = p
	c.inside = true
	c.pushLocked(PointerMoved{Position: p})
	c.pushLocked(Pressed{Button: MouseLeft})
}

// TouchMove moves the pointer to p.
func (c *CursorState) TouchMove(p Position) {
	c.UpdatePosition(p)
}

// TouchEnd releases the left button and clears the pointer position.
// Cancelled touches end the same way.
func (c *CursorState) TouchEnd() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pushLocked(Released{Button: MouseLeft})
	c.inside = false
	c.position = Position{}
}

// Position returns the pointer position. ok is false when the pointer is
// outside the window.
func (c *CursorState) Position() (p Position, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position, c.inside
}

// TakeEvents drains the queued events. Events returned here are never
// returned again.
func (c *CursorState) TakeEvents() []CursorEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	events := c.events
	c.events = nil
	return events
}

func (c *CursorState) push(content CursorEventContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushLocked(content)
}

// pushLocked appends an event. Caller must hold mu.
func (c *CursorState) pushLocked(content CursorEventContent) {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	c.events = append(c.events, CursorEvent{Timestamp: now(), Content: content})
}
