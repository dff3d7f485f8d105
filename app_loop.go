package tessera

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Run drives frames at the configured frame rate and runs every watcher
// until ctx is cancelled, Stop is called, the frame limit is reached, or the
// frame error handler returns an error. Watchers stop when the loop does.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, w := range a.watchers {
		w := w
		g.Go(func() error {
			return w.Start(ctx, a.eventQueue)
		})
	}
	g.Go(func() error {
		defer cancel()
		return a.loop(ctx)
	})
	return g.Wait()
}

// loop is the frame loop. Queued handlers run for up to half the frame
// budget, then a frame is produced, then the loop sleeps out the remainder.
func (a *App) loop(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		frameStart := time.Now()

		if !a.drainQueue(ctx, frameStart.Add(a.frameDuration/2)) {
			return nil
		}

		if _, err := a.Frame(); err != nil {
			if herr := a.onFrameError(err); herr != nil {
				return herr
			}
		}

		if a.maxFrames > 0 && a.frames >= a.maxFrames {
			return nil
		}

		wait := a.frameDuration - time.Since(frameStart)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil
		case <-a.stopCh:
			return nil
		}
	}
}

// drainQueue runs queued handlers until the queue is empty or deadline
// passes. It returns false if the app should stop.
func (a *App) drainQueue(ctx context.Context, deadline time.Time) bool {
	for time.Now().Before(deadline) {
		select {
		case handler := <-a.eventQueue:
			handler()
		case <-ctx.Done():
			return false
		case <-a.stopCh:
			return false
		default:
			return true
		}
	}
	return true
}

// Stop signals Run to return. Stop is idempotent.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}
