package tessera

import (
	"sync"
	"time"
)

// KeyboardState queues raw keyboard events between frames.
type KeyboardState struct {
	mu     sync.Mutex
	events []KeyboardEvent
}

// NewKeyboardState creates an empty KeyboardState.
func NewKeyboardState() *KeyboardState {
	return &KeyboardState{}
}

// Push queues a raw platform key event.
func (k *KeyboardState) Push(payload any) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.events = append(k.events, KeyboardEvent{Timestamp: time.Now(), Payload: payload})
}

// TakeEvents drains the queued events.
func (k *KeyboardState) TakeEvents() []KeyboardEvent {
	k.mu.Lock()
	defer k.mu.Unlock()

	events := k.events
	k.events = nil
	return events
}
