package main

import (
	"flag"
	"fmt"

	"github.com/grindlemire/go-tessera/components"
	"github.com/grindlemire/go-tessera/internal/raster"
)

// runPNG implements the png subcommand.
func runPNG(args []string) error {
	fs := flag.NewFlagSet("png", flag.ContinueOnError)
	var screen screenFlags
	screen.register(fs)
	out := fs.String("o", "showcase.png", "Output file")
	checked := fs.Bool("checked", false, "Draw the switch and checkbox turned on")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := screen.validate(); err != nil {
		return err
	}

	state := components.NewShowcaseState()
	if *checked {
		state.Switch = components.NewSwitchState(true)
		state.Checkbox.SetChecked(true)
	}

	commands, err := computeShowcase(screen.size(), state)
	if err != nil {
		return err
	}
	rast := raster.New(screen.width, screen.height, components.White)
	if err := rast.Present(plain(commands)); err != nil {
		return err
	}
	if err := rast.SavePNG(*out); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	fmt.Printf("wrote %s (%dx%d, %d draw commands)\n", *out, screen.width, screen.height, len(commands))
	return nil
}
