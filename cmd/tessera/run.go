package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tessera "github.com/grindlemire/go-tessera"
	"github.com/grindlemire/go-tessera/components"
	"github.com/grindlemire/go-tessera/internal/raster"
)

// runRun implements the run subcommand. It drives the showcase through the
// App frame loop with a rasterising presenter, toggling the switch on a
// timer and clicking the checkbox from a simulated input source.
func runRun(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	var screen screenFlags
	screen.register(fs)
	frames := fs.Int("frames", 60, "Number of frames to run (0 runs until interrupted)")
	fps := fs.Int("fps", 60, "Target frame rate")
	toggle := fs.Duration("toggle", 250*time.Millisecond, "Interval between switch toggles")
	clicks := fs.Duration("click", 400*time.Millisecond, "Interval between simulated checkbox clicks")
	quiet := fs.Bool("q", false, "Only print the summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := screen.validate(); err != nil {
		return err
	}

	state := components.NewShowcaseState()
	presenter := raster.New(screen.width, screen.height, components.White)

	clickCh := make(chan tessera.Position)
	var app *tessera.App
	app, err := tessera.NewApp(
		func(ui *tessera.Composer) { components.Showcase(ui, state) },
		presenter,
		tessera.WithFrameRate(*fps),
		tessera.WithMaxFrames(*frames),
		tessera.WithScaleFactor(screen.scale),
		tessera.WithWatchers(
			tessera.OnTimer(*toggle, state.Switch.Toggle),
			tessera.Watch(clickCh, func(p tessera.Position) {
				cursor := app.Cursor()
				cursor.UpdatePosition(p)
				cursor.Press(tessera.MouseLeft)
				cursor.Release(tessera.MouseLeft)
			}),
		),
		tessera.WithFrameObserver(func(s tessera.FrameStats) {
			if *quiet {
				return
			}
			fmt.Fprintf(w, "frame %4d  build %-10s compute %-10s present %-10s commands %d  switch %.2f\n",
				s.Frame, s.Build, s.Compute, s.Present, s.Commands, state.Switch.Progress())
		}),
	)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go clickCheckbox(ctx, clickCh, *clicks, state.Checkbox)

	start := time.Now()
	if err := app.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "ran %d frames in %s (%d presented); switch on=%v, checkbox on=%v\n",
		app.Frames(), time.Since(start).Round(time.Millisecond), presenter.Frames(),
		state.Switch.Checked(), state.Checkbox.Checked())
	return nil
}

// clickCheckbox sends the centre of the checkbox's last bounds on ch at
// every interval until ctx is done.
func clickCheckbox(ctx context.Context, ch chan<- tessera.Position, interval time.Duration, box *components.CheckboxState) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b := box.Bounds()
			if b.IsEmpty() {
				continue
			}
			select {
			case ch <- tessera.Pos(b.X+b.Width/2, b.Y+b.Height/2):
			case <-ctx.Done():
				return
			}
		}
	}
}
