package tessera

import (
	"fmt"
	"math"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithJankThreshold sets the frame cost above which a frame is logged as
// janky. Defaults to the frame duration.
func WithJankThreshold(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("jank threshold must be positive")
		}
		a.jankThreshold = d
		return nil
	}
}

// WithScaleFactor sets the physical pixels per density-independent pixel
// used by Dp conversions. The scale factor is process-wide: the App installs
// it with SetScaleFactor at the start of every Frame, so two Apps with
// different factors in one process must not produce frames concurrently.
func WithScaleFactor(f float64) AppOption {
	return func(a *App) error {
		if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("scale factor must be a positive finite number, got %v", f)
		}
		a.scaleFactor = f
		return nil
	}
}

// WithWatchers registers background event sources started by Run.
func WithWatchers(watchers ...Watcher) AppOption {
	return func(a *App) error {
		for i, w := range watchers {
			if w == nil {
				return fmt.Errorf("watcher %d is nil", i)
			}
		}
		a.watchers = append(a.watchers, watchers...)
		return nil
	}
}

// WithFrameErrorHandler sets the function Run calls when a frame fails.
// Returning nil keeps the loop running; returning an error stops Run with it.
// The default logs the failure and continues.
func WithFrameErrorHandler(fn func(error) error) AppOption {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("frame error handler cannot be nil")
		}
		a.onFrameError = fn
		return nil
	}
}

// WithFrameObserver sets a function called with the stats of every frame
// that was presented.
func WithFrameObserver(fn func(FrameStats)) AppOption {
	return func(a *App) error {
		if fn == nil {
			return fmt.Errorf("frame observer cannot be nil")
		}
		a.onFrame = fn
		return nil
	}
}

// WithMaxFrames stops Run after n frames. Zero means no limit.
func WithMaxFrames(n int) AppOption {
	return func(a *App) error {
		if n < 0 {
			return fmt.Errorf("max frames cannot be negative")
		}
		a.maxFrames = n
		return nil
	}
}

// WithEventQueueSize sets the capacity of the queue watchers and
// QueueUpdate feed. Default is 256. Must be at least 1.
func WithEventQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		a.eventQueueSize = size
		return nil
	}
}
