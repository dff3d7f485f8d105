package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grindlemire/go-tessera/components"
)

// runDump implements the dump subcommand.
func runDump(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	var screen screenFlags
	screen.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := screen.validate(); err != nil {
		return err
	}

	commands, err := computeShowcase(screen.size(), components.NewShowcaseState())
	if err != nil {
		return err
	}
	return writeDump(w, commands)
}

// writeDump prints one line per command in paint order.
func writeDump(w io.Writer, commands []namedCommand) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNODE\tNAME\tPOSITION\tSIZE\tDRAWABLE")
	for i, cmd := range commands {
		fmt.Fprintf(tw, "%d\t%s\t%s\t(%d,%d)\t%dx%d\t%v\n",
			i, cmd.Node, cmd.Name,
			cmd.Position.X, cmd.Position.Y,
			cmd.Size.Width, cmd.Size.Height,
			cmd.Drawable)
	}
	return tw.Flush()
}
