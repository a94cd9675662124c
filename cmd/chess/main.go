// chess is a two-player console chess game. It can also replay scripted
// games and check them against their expected outcomes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	closeLog := setupLogFile(cfg)
	closeOutput := setupOutputFile(cfg)

	code := run(cfg, flag.Args(), os.Stdin)
	closeOutput()
	closeLog()
	os.Exit(code)
}

// run dispatches on the selected mode and returns the exit status.
func run(cfg *config.Config, args []string, in io.Reader) int {
	switch {
	case *unitTest:
		if runUnitTest(cfg) {
			return 0
		}
		return 1
	case *dump:
		if runDump(cfg) {
			return 0
		}
		return 1
	case *replay:
		if len(args) == 0 {
			fmt.Fprintln(cfg.LogFile, "Error: -replay needs at least one script file")
			return 2
		}
		if runReplay(cfg, args) {
			return 0
		}
		return 1
	}

	start := engine.NewPosition()
	if *startFEN != "" {
		p, err := engine.NewPositionFromFEN(*startFEN)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return 2
		}
		start = p
	}
	if err := NewConsole(cfg, in).Play(start); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile redirects diagnostics when -l is given.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() } //nolint:errcheck,gosec
}

// setupOutputFile redirects boards and summaries when -o is given.
func setupOutputFile(cfg *config.Config) func() {
	if *outputFile == "" {
		return func() {}
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { file.Close() } //nolint:errcheck,gosec
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n")
	fmt.Fprintf(os.Stderr, "       chess -unittest\n")
	fmt.Fprintf(os.Stderr, "       chess -dump [-o file]\n")
	fmt.Fprintf(os.Stderr, "       chess -replay [options] script-files...\n\n")
	fmt.Fprintf(os.Stderr, "Two players enter moves such as 'e2 e4' in turn.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript files hold one move per line, optionally followed by a\n")
	fmt.Fprintf(os.Stderr, "promotion letter (q, r, b, n). 'fen <FEN>' sets the start position,\n")
	fmt.Fprintf(os.Stderr, "'end <placement>' the expected final board, and '#' starts a comment.\n")
}
