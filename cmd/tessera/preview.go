package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/grindlemire/go-tessera/components"
	"github.com/grindlemire/go-tessera/internal/raster"
)

// runPreview implements the preview subcommand.
func runPreview(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	var screen screenFlags
	screen.register(fs)
	cols := fs.Int("cols", 0, "Preview width in characters (default: terminal width)")
	rows := fs.Int("rows", 0, "Preview height in characters (default: terminal height)")
	colorMode := fs.String("color", "auto", "Color mode: auto, none, 256 or true")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := screen.validate(); err != nil {
		return err
	}

	depth, err := previewDepth(*colorMode)
	if err != nil {
		return err
	}
	c, r := previewSize(*cols, *rows)

	commands, err := computeShowcase(screen.size(), components.NewShowcaseState())
	if err != nil {
		return err
	}
	rast := raster.New(screen.width, screen.height, components.White)
	if err := rast.Present(plain(commands)); err != nil {
		return err
	}
	for _, line := range raster.ColorCells(rast.Image(), c, r, depth) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// previewDepth resolves the -color flag. auto uses the environment when
// stdout is a terminal and plain glyphs otherwise.
func previewDepth(mode string) (raster.ColorDepth, error) {
	if mode == "auto" {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return raster.ColorNone, nil
		}
		return raster.DetectColorDepth(), nil
	}
	depth, ok := raster.ParseColorDepth(mode)
	if !ok {
		return raster.ColorNone, fmt.Errorf("unknown color mode %q", mode)
	}
	return depth, nil
}

// previewSize fills unset dimensions from the terminal, falling back to
// 80x24 when stdout is not a terminal. One row is left for the prompt.
func previewSize(cols, rows int) (int, int) {
	termCols, termRows := 80, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			termCols, termRows = w, h
		}
	}
	if cols <= 0 {
		cols = termCols
	}
	if rows <= 0 {
		rows = max(termRows-1, 1)
	}
	return cols, rows
}
