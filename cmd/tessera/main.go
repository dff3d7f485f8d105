// Package main provides the tessera command, which computes frames of the
// component showcase and renders them without a GPU.
//
// Usage:
//
//	tessera dump              Print the draw-command stream of one frame
//	tessera preview           Draw one frame as characters in the terminal
//	tessera png -o out.png    Rasterise one frame to a PNG file
//	tessera run -frames 60    Drive the frame loop headless
//	tessera help              Show help
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-tessera/internal/debug"
)

const version = "0.1.0"

const usage = `tessera - layout and draw-command engine for retained-free UI trees

Usage:
  tessera <command> [options]

Commands:
  dump        Compute one frame of the showcase and print its draw commands
  preview     Draw one frame of the showcase as a character-cell preview
  png         Rasterise one frame of the showcase to a PNG file
  run         Drive the frame loop headless and print frame stats
  version     Print version information
  help        Show this help message

Common options:
  -width N    Screen width in pixels (default 800)
  -height N   Screen height in pixels (default 900)
  -scale F    Physical pixels per density-independent pixel (default 1)
  -log PATH   Write debug logs to PATH

Examples:
  tessera dump -width 1024 -height 768
  tessera preview -cols 100 -color 256
  tessera png -o showcase.png -scale 2
  tessera run -frames 120 -fps 60 -toggle 250ms

Setting TESSERA_DEBUG=/tmp/tessera.log has the same effect as -log.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "dump":
		err = runDump(args, os.Stdout)
	case "preview":
		err = runPreview(args, os.Stdout)
	case "png":
		err = runPNG(args)
	case "run":
		err = runRun(args, os.Stdout)
	case "version":
		fmt.Printf("tessera version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	debug.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
