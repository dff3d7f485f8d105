package tessera

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewApp_Options(t *testing.T) {
	type tc struct {
		opts    []AppOption
		wantErr string
	}

	tests := map[string]tc{
		"defaults":               {},
		"frame rate too low":     {opts: []AppOption{WithFrameRate(0)}, wantErr: "at least 1 fps"},
		"frame rate too high":    {opts: []AppOption{WithFrameRate(500)}, wantErr: "cannot exceed 240"},
		"valid frame rate":       {opts: []AppOption{WithFrameRate(30)}},
		"bad jank threshold":     {opts: []AppOption{WithJankThreshold(0)}, wantErr: "jank threshold"},
		"bad scale factor":       {opts: []AppOption{WithScaleFactor(-2)}, wantErr: "scale factor"},
		"nil watcher":            {opts: []AppOption{WithWatchers(nil)}, wantErr: "watcher 0 is nil"},
		"nil error handler":      {opts: []AppOption{WithFrameErrorHandler(nil)}, wantErr: "cannot be nil"},
		"negative max frames":    {opts: []AppOption{WithMaxFrames(-1)}, wantErr: "cannot be negative"},
		"zero event queue":       {opts: []AppOption{WithEventQueueSize(0)}, wantErr: "at least 1"},
		"nil frame observer":     {opts: []AppOption{WithFrameObserver(nil)}, wantErr: "frame observer"},
		"everything set validly": {opts: []AppOption{WithFrameRate(120), WithMaxFrames(3), WithEventQueueSize(4)}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			_, err := NewApp(func(*Composer) {}, &fakePresenter{}, tt.opts...)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("NewApp() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewApp() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewApp_RequiresEntryAndPresenter(t *testing.T) {
	if _, err := NewApp(nil, &fakePresenter{}); err == nil {
		t.Error("NewApp(nil entry) error = nil, want error")
	}
	if _, err := NewApp(func(*Composer) {}, nil); err == nil {
		t.Error("NewApp(nil presenter) error = nil, want error")
	}
}

func TestNewApp_FrameRateSetsJankThreshold(t *testing.T) {
	app, err := NewApp(func(*Composer) {}, &fakePresenter{}, WithFrameRate(50))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if app.jankThreshold != 20*time.Millisecond {
		t.Errorf("jankThreshold = %s, want 20ms", app.jankThreshold)
	}
}

func TestApp_ScaleFactorAppliedPerFrame(t *testing.T) {
	SetScaleFactor(1)
	t.Cleanup(func() { SetScaleFactor(1) })

	var seen Px
	app, err := NewApp(func(ui *Composer) {
		seen = Dp(10).ToPx()
		leaf(ui, "only", 10, 10)
	}, &fakePresenter{size: NewSize(10, 10)}, WithScaleFactor(3))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if got := ScaleFactor(); got != 1 {
		t.Fatalf("ScaleFactor() after NewApp = %v, want 1", got)
	}

	if _, err := app.Frame(); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if seen != 30 {
		t.Errorf("Dp(10).ToPx() during frame = %d, want 30", seen)
	}
}

func TestApp_FramePresentsAndClears(t *testing.T) {
	presenter := &fakePresenter{size: NewSize(200, 100)}
	app, err := NewApp(func(ui *Composer) {
		leaf(ui, "only", 10, 10)
	}, presenter)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	stats, err := app.Frame()
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if stats.Frame != 1 || stats.Commands != 1 {
		t.Errorf("stats = %+v, want frame 1 with 1 command", stats)
	}
	if presenter.count() != 1 {
		t.Errorf("presented %d frames, want 1", presenter.count())
	}
	if app.tree.Len() != 0 {
		t.Errorf("tree Len() after Frame = %d, want 0", app.tree.Len())
	}
}

func TestApp_EventsDrainedBetweenFrames(t *testing.T) {
	var perFrame [][]CursorEvent
	var keys [][]KeyboardEvent
	app, err := NewApp(func(ui *Composer) {
		ui.Component("root", func() {
			ui.StateHandler(func(in *StateHandlerInput) {
				perFrame = append(perFrame, in.CursorEvents)
				keys = append(keys, in.KeyboardEvents)
			})
		})
	}, &fakePresenter{size: NewSize(10, 10)})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	app.Cursor().Press(MouseLeft)
	app.Keyboard().Push("x")
	if _, err := app.Frame(); err != nil {
		t.Fatalf("Frame() 1 error = %v", err)
	}
	if _, err := app.Frame(); err != nil {
		t.Fatalf("Frame() 2 error = %v", err)
	}

	if len(perFrame[0]) != 1 || len(keys[0]) != 1 {
		t.Errorf("frame 1 saw %d cursor, %d key events, want 1, 1", len(perFrame[0]), len(keys[0]))
	}
	if len(perFrame[1]) != 0 || len(keys[1]) != 0 {
		t.Errorf("frame 2 saw %d cursor, %d key events, want 0, 0", len(perFrame[1]), len(keys[1]))
	}
}

func TestApp_FailedFramePresentsNothing(t *testing.T) {
	boom := errors.New("boom")
	presenter := &fakePresenter{size: NewSize(10, 10)}
	app, err := NewApp(func(ui *Composer) {
		ui.Component("root", func() {
			ui.Measure(func(*MeasureInput) (ComputedData, error) {
				return ComputedData{}, boom
			})
		})
	}, presenter)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	if _, err := app.Frame(); !errors.Is(err, boom) {
		t.Errorf("Frame() error = %v, want boom", err)
	}
	if presenter.count() != 0 {
		t.Errorf("presented %d frames, want 0", presenter.count())
	}
	if app.tree.Len() != 0 {
		t.Errorf("tree Len() after failed Frame = %d, want 0", app.tree.Len())
	}
}

func TestApp_RunStopsAtMaxFrames(t *testing.T) {
	presenter := &fakePresenter{size: NewSize(10, 10)}
	ticks := NewShared(0)
	var observed []int
	app, err := NewApp(func(ui *Composer) {
		leaf(ui, "leaf", 1, 1)
	}, presenter,
		WithFrameRate(240),
		WithMaxFrames(5),
		WithFrameObserver(func(s FrameStats) { observed = append(observed, s.Frame) }),
		WithWatchers(OnTimer(time.Millisecond, func() {
			ticks.Update(func(v int) int { return v + 1 })
		})),
	)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if presenter.count() != 5 {
		t.Errorf("presented %d frames, want 5", presenter.count())
	}
	if len(observed) != 5 || observed[4] != 5 {
		t.Errorf("observed frames %v, want 1..5", observed)
	}
}

func TestApp_RunFrameErrorHandlerStops(t *testing.T) {
	stop := errors.New("stop")
	presenter := &fakePresenter{size: NewSize(10, 10), err: errors.New("gpu lost")}
	var handled []error
	app, err := NewApp(func(ui *Composer) {
		leaf(ui, "leaf", 1, 1)
	}, presenter, WithFrameErrorHandler(func(err error) error {
		handled = append(handled, err)
		if len(handled) == 2 {
			return stop
		}
		return nil
	}))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	if err := app.Run(context.Background()); !errors.Is(err, stop) {
		t.Errorf("Run() error = %v, want stop", err)
	}
	if len(handled) != 2 {
		t.Errorf("handler called %d times, want 2", len(handled))
	}
}

func TestApp_StopAndQueueUpdate(t *testing.T) {
	presenter := &fakePresenter{size: NewSize(10, 10)}
	var app *App
	ran := false
	app, err := NewApp(func(ui *Composer) {
		leaf(ui, "leaf", 1, 1)
	}, presenter, WithFrameRate(240))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	app.QueueUpdate(func() {
		ran = true
		app.Stop()
	})

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after Stop")
	}
	if !ran {
		t.Error("queued update did not run")
	}

	// Stop is idempotent and QueueUpdate after stop does not block.
	app.Stop()
	app.QueueUpdate(func() {})
}

func TestApp_RunCancelledContext(t *testing.T) {
	app, err := NewApp(func(ui *Composer) {}, &fakePresenter{}, WithFrameRate(1))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestFrameStats_Total(t *testing.T) {
	s := FrameStats{Build: time.Millisecond, Compute: 2 * time.Millisecond, Present: 3 * time.Millisecond}
	if s.Total() != 6*time.Millisecond {
		t.Errorf("Total() = %s, want 6ms", s.Total())
	}
}
