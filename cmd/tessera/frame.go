package main

import (
	"flag"
	"fmt"

	tessera "github.com/grindlemire/go-tessera"
	"github.com/grindlemire/go-tessera/components"
	"github.com/grindlemire/go-tessera/internal/debug"
)

// screenFlags are the options every subcommand shares.
type screenFlags struct {
	width  int
	height int
	scale  float64
	log    string
}

func (s *screenFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&s.width, "width", 800, "Screen width in pixels")
	fs.IntVar(&s.height, "height", 900, "Screen height in pixels")
	fs.Float64Var(&s.scale, "scale", 1, "Physical pixels per density-independent pixel")
	fs.StringVar(&s.log, "log", "", "Path to log file for debugging (overrides "+debug.EnvVar+")")
}

func (s *screenFlags) validate() error {
	if s.width <= 0 || s.height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", s.width, s.height)
	}
	if s.scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.scale)
	}
	tessera.SetScaleFactor(s.scale)
	if s.log != "" {
		if err := debug.Init(s.log); err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}
	return nil
}

func (s *screenFlags) size() tessera.Size {
	return tessera.NewSize(tessera.Px(s.width), tessera.Px(s.height))
}

// namedCommand is a draw command with the name of the node that produced it.
type namedCommand struct {
	tessera.DrawCommand
	Name string
}

// computeShowcase computes one frame of the showcase.
func computeShowcase(screen tessera.Size, state *components.ShowcaseState) ([]namedCommand, error) {
	tree := tessera.NewComponentTree()
	defer tree.Clear()

	tree.Compose(func(ui *tessera.Composer) {
		components.Showcase(ui, state)
	})
	commands, err := tree.Compute(screen, tessera.Position{}, false, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("compute showcase: %w", err)
	}
	debug.Log("showcase: %d nodes, %d draw commands", tree.Len(), len(commands))

	named := make([]namedCommand, len(commands))
	for i, cmd := range commands {
		named[i] = namedCommand{DrawCommand: cmd, Name: tree.Name(cmd.Node)}
	}
	return named, nil
}

func plain(named []namedCommand) []tessera.DrawCommand {
	out := make([]tessera.DrawCommand, len(named))
	for i, n := range named {
		out[i] = n.DrawCommand
	}
	return out
}
