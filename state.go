package tessera

import (
	"sync"

	"github.com/grindlemire/go-tessera/internal/debug"
)

// Shared holds component state that outlives the per-frame tree. Components
// receive a *Shared[T] from whoever created them and capture it in their
// measure and state-handler closures. Timers and other goroutines may read
// and write it concurrently with the frame.
//
// Example:
//
//	checked := tessera.NewShared(false)
//	checked.Bind(func(v bool) { log.Println("checked:", v) })
//	checked.Update(func(v bool) bool { return !v })
type Shared[T any] struct {
	mu       sync.RWMutex
	value    T
	bindings []*binding[T]
}

// binding represents a registered callback that fires when the value changes.
type binding[T any] struct {
	fn     func(T)
	active bool
}

// Unbind removes a binding.
type Unbind func()

// NewShared creates a Shared holding initial.
func NewShared[T any](initial T) *Shared[T] {
	return &Shared[T]{value: initial}
}

// Get returns the current value.
func (s *Shared[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v and calls every active binding with it, outside the lock.
func (s *Shared[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active, v)
}

// Update applies fn to the current value under the write lock and stores the
// result. fn must not call back into s.
func (s *Shared[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	v := fn(s.value)
	s.value = v
	active := s.activeLocked()
	s.mu.Unlock()

	s.notify(active, v)
	return v
}

// With runs fn with a pointer to the value under the write lock, for
// in-place mutation of struct state. Bindings are not called.
func (s *Shared[T]) With(fn func(v *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.value)
}

// Bind registers fn to be called after every Set or Update.
// Bindings run in registration order.
func (s *Shared[T]) Bind(fn func(T)) Unbind {
	s.mu.Lock()
	b := &binding[T]{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}

// activeLocked drops unbound bindings and returns a copy of the rest.
// Caller must hold mu.
func (s *Shared[T]) activeLocked() []*binding[T] {
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	return append([]*binding[T](nil), active...)
}

func (s *Shared[T]) notify(active []*binding[T], v T) {
	if len(active) == 0 {
		return
	}
	debug.Log("Shared.Set: executing %d bindings", len(active))
	for _, b := range active {
		b.fn(v)
	}
}
