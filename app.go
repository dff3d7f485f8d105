package tessera

import (
	"fmt"
	"sync"
	"time"

	"github.com/grindlemire/go-tessera/internal/debug"
)

// Presenter is the rendering collaborator. It reports the screen size and
// consumes each frame's draw commands.
type Presenter interface {
	Size() Size
	Present(commands []DrawCommand) error
}

// FrameStats records the cost of one frame.
type FrameStats struct {
	Frame    int
	Build    time.Duration // composition
	Compute  time.Duration // dispatch, measurement, placement, extraction
	Present  time.Duration
	Commands int
}

// Total returns the whole frame cost.
func (s FrameStats) Total() time.Duration {
	return s.Build + s.Compute + s.Present
}

// App drives frames: it composes the entry closure into a fresh tree, feeds
// it the input drained from Cursor and Keyboard, and hands the resulting
// draw commands to the Presenter.
type App struct {
	entry     func(ui *Composer)
	presenter Presenter
	tree      *ComponentTree
	cursor    *CursorState
	keyboard  *KeyboardState

	eventQueue chan func()
	stopCh     chan struct{}
	stopOnce   sync.Once
	frames     int

	// Configuration (set via options)
	frameDuration  time.Duration
	jankThreshold  time.Duration
	scaleFactor    float64
	watchers       []Watcher
	onFrameError   func(error) error
	onFrame        func(FrameStats)
	maxFrames      int
	eventQueueSize int
}

// NewApp creates an App that composes entry every frame and presents the
// result with presenter.
func NewApp(entry func(ui *Composer), presenter Presenter, opts ...AppOption) (*App, error) {
	if entry == nil {
		return nil, fmt.Errorf("entry function is required")
	}
	if presenter == nil {
		return nil, fmt.Errorf("presenter is required")
	}

	app := &App{
		entry:          entry,
		presenter:      presenter,
		tree:           NewComponentTree(),
		cursor:         NewCursorState(),
		keyboard:       NewKeyboardState(),
		stopCh:         make(chan struct{}),
		frameDuration:  time.Second / 60,
		eventQueueSize: 256,
		onFrameError:   logFrameError,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.jankThreshold == 0 {
		app.jankThreshold = app.frameDuration
	}
	app.eventQueue = make(chan func(), app.eventQueueSize)

	return app, nil
}

// Cursor returns the pointer input collector. Platform code feeds it.
func (a *App) Cursor() *CursorState {
	return a.cursor
}

// Keyboard returns the keyboard input collector. Platform code feeds it.
func (a *App) Keyboard() *KeyboardState {
	return a.keyboard
}

// Frames returns the number of frames attempted so far.
func (a *App) Frames() int {
	return a.frames
}

// Frame runs one complete frame: composition, dispatch, measurement,
// placement, extraction and presentation. The tree is cleared before Frame
// returns. A failed frame presents nothing, so the previous output stays on
// screen.
func (a *App) Frame() (FrameStats, error) {
	a.frames++
	stats := FrameStats{Frame: a.frames}
	if a.scaleFactor > 0 {
		SetScaleFactor(a.scaleFactor)
	}
	defer a.tree.Clear()

	buildStart := time.Now()
	a.tree.Compose(a.entry)
	stats.Build = time.Since(buildStart)
	debug.Log("frame %d: composed %d nodes in %s", stats.Frame, a.tree.Len(), stats.Build)

	computeStart := time.Now()
	cursorPos, hasCursor := a.cursor.Position()
	commands, err := a.tree.Compute(
		a.presenter.Size(),
		cursorPos,
		hasCursor,
		a.cursor.TakeEvents(),
		a.keyboard.TakeEvents(),
	)
	stats.Compute = time.Since(computeStart)
	if err != nil {
		return stats, fmt.Errorf("frame %d: %w", stats.Frame, err)
	}
	stats.Commands = len(commands)
	debug.Log("frame %d: computed %d draw commands in %s", stats.Frame, stats.Commands, stats.Compute)

	presentStart := time.Now()
	if err := a.presenter.Present(commands); err != nil {
		return stats, fmt.Errorf("frame %d: present: %w", stats.Frame, err)
	}
	stats.Present = time.Since(presentStart)

	if stats.Total() > a.jankThreshold {
		debug.Log("Jank detected! frame %d: build %s, compute %s, present %s",
			stats.Frame, stats.Build, stats.Compute, stats.Present)
	}
	if a.onFrame != nil {
		a.onFrame(stats)
	}
	return stats, nil
}

// QueueUpdate enqueues a function to run on the frame goroutine before the
// next frame. Safe to call from any goroutine. Updates are dropped once the
// app has stopped or when the queue is full.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	default:
		debug.Log("QueueUpdate: event queue full, update dropped")
	}
}

func logFrameError(err error) error {
	debug.Log("frame failed: %v", err)
	return nil
}
