// chess-server serves games over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/server"
)

var (
	listenAddr = flag.String("addr", ":8080", "Listen address")
	origins    = flag.String("origins", "*", "Allowed CORS origins, comma separated")
	maxGames   = flag.Int("max-games", 0, "Maximum number of live games (0 = no limit)")
	squareSize = flag.Int("square", 45, "SVG square size in pixels")
	logFile    = flag.String("l", "", "Write the request log to this file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 startup, 2 every game and move")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Server.ListenAddr = *listenAddr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.MaxGames = *maxGames
	cfg.Display.SVGSquareSize = *squareSize
	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

func main() {
	flag.Parse()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if *logFile != "" {
		file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: log file readable by the user
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		defer file.Close()
		cfg.LogFile = file
	}

	srv := server.New(cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		cfg.Logf(1, "shutting down")
		srv.Shutdown() //nolint:errcheck
	}()

	if err := srv.Listen(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
