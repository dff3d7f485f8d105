package tessera

import (
	"context"
	"fmt"
	"time"

	"github.com/grindlemire/go-tessera/internal/debug"
)

// Watcher is a background event source started by App.Run. Start blocks
// until ctx is cancelled or the source is exhausted. Handlers are not called
// directly: they are sent on queue and run on the frame goroutine between
// frames, so they may touch state the next composition reads.
type Watcher interface {
	Start(ctx context.Context, queue chan<- func()) error
}

// ChannelWatcher watches a channel and calls handler for each value.
type ChannelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// NewChannelWatcher creates a watcher that calls fn for each value received on ch.
func NewChannelWatcher[T any](ch <-chan T, fn func(T)) *ChannelWatcher[T] {
	return &ChannelWatcher[T]{
		ch:      ch,
		handler: fn,
	}
}

// Watch creates a channel watcher. The handler runs on the frame goroutine
// whenever data arrives on the channel.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return NewChannelWatcher(ch, handler)
}

// Start forwards values until ctx is done or the channel closes.
func (w *ChannelWatcher[T]) Start(ctx context.Context, queue chan<- func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case val, ok := <-w.ch:
			if !ok {
				return nil
			}
			select {
			case queue <- func() { w.handler(val) }:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a timer watcher that fires at the given interval.
// The handler runs on the frame goroutine.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Start ticks until ctx is done.
func (w *timerWatcher) Start(ctx context.Context, queue chan<- func()) error {
	if w.interval <= 0 {
		return fmt.Errorf("timer interval must be positive, got %s", w.interval)
	}
	debug.Log("timerWatcher started (%s)", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case queue <- w.handler:
			case <-ctx.Done():
				return nil
			}
		}
	}
}
