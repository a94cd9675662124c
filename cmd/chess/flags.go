// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/console-chess-go/internal/config"
)

var (
	// Modes
	unitTest = flag.Bool("unittest", false, "Replay Kasparov vs the World and print Success or Failed")
	replay   = flag.Bool("replay", false, "Replay the script files named on the command line")
	dump     = flag.Bool("dump", false, "Write Kasparov vs the World as a replay script")

	// Game setup
	startFEN = flag.String("fen", "", "Start the game from this FEN position")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Board format: text, svg, fen, json")
	squareSize   = flag.Int("square", 45, "SVG square size in pixels")
	noCaptures   = flag.Bool("nocaptures", false, "Don't report captured pieces")
	noCheck      = flag.Bool("nocheck", false, "Don't report check")

	// Replay options
	workers  = flag.Int("j", 0, "Number of scripts replayed at once (0 = one per CPU)")
	failFast = flag.Bool("failfast", false, "Stop replaying after the first failing script")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summaries, 2 per-ply commentary")
	quiet     = flag.Bool("s", false, "Silent mode, same as -v 0")

	help    = flag.Bool("h", false, "Show usage")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return cfg.Validate()
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) error {
	format, err := config.ParseFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Display.Format = format
	cfg.Display.SVGSquareSize = *squareSize
	cfg.Display.ShowCaptures = !*noCaptures
	cfg.Display.ShowCheck = !*noCheck
	return nil
}

// applyReplayFlags configures script replay.
func applyReplayFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Replay.Workers = *workers
	}
	cfg.Replay.FailFast = *failFast
}
