package main

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/output"
	"github.com/lgbarn/console-chess-go/internal/script"
	"github.com/lgbarn/console-chess-go/internal/worker"
)

// runUnitTest replays Kasparov vs the World and prints Success or Failed.
// At verbosity 2 every ply is shown the way it would be at the console.
func runUnitTest(cfg *config.Config) bool {
	var observe func(script.Step)
	if cfg.Verbosity >= 2 {
		writer := output.NewWriter(cfg.OutputFile, cfg.Display)
		observe = func(st script.Step) {
			writer.WritePosition(&st.Before, "") //nolint:errcheck
			fmt.Fprintf(cfg.OutputFile, movePrompt+"%s\n", st.Before.ToMove, st.Ply.Input)
		}
	}

	res := script.Replay(script.KasparovWorld(), observe)
	if res.Passed() {
		fmt.Fprintln(cfg.OutputFile, "Success")
		return true
	}
	cfg.Logf(1, "%v", res.Err)
	fmt.Fprintln(cfg.OutputFile, "Failed")
	return false
}

// runDump writes Kasparov vs the World in the replay file syntax, as a
// starting point for new scripts.
func runDump(cfg *config.Config) bool {
	if err := script.Format(cfg.OutputFile, script.KasparovWorld()); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return false
	}
	return true
}

// runReplay replays the script files on the worker pool and prints one
// summary line per file in command-line order. It reports whether every
// script passed.
func runReplay(cfg *config.Config, paths []string) bool {
	scripts := make([]script.Script, 0, len(paths))
	ok := true
	for _, path := range paths {
		s, err := script.ParseFile(path)
		if err != nil {
			fmt.Fprintf(cfg.OutputFile, "%s: FAIL %v\n", path, err)
			ok = false
			continue
		}
		scripts = append(scripts, s)
	}

	results := worker.ReplayAll(scripts, cfg.Replay.Workers, cfg.Replay.FailFast)
	writer := output.NewWriter(cfg.OutputFile, cfg.Display)
	for i, res := range results {
		switch {
		case res.Name == "" && res.Err == nil:
			fmt.Fprintf(cfg.OutputFile, "%s: skipped\n", scripts[i].Name)
			ok = false
		case res.Passed():
			fmt.Fprintf(cfg.OutputFile, "%s: ok, %d plies\n", res.Name, res.Plies)
		default:
			fmt.Fprintf(cfg.OutputFile, "%s: FAIL after %d plies: %v\n", res.Name, res.Plies, res.Err)
			ok = false
		}
		if cfg.Verbosity >= 2 && res.Name != "" {
			final := res.Final
			writer.WritePosition(&final, "") //nolint:errcheck
		}
	}
	cfg.Logf(1, "%d script(s) replayed", len(results))
	return ok
}
