// Package config holds the settings shared by the console program and the
// game server.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Format selects how a position is written out.
type Format int

const (
	FormatText Format = iota // console board
	FormatSVG                // SVG image
	FormatFEN                // one FEN line
	FormatJSON               // JSON snapshot
)

var formatNames = [...]string{"text", "svg", "fen", "json"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat maps a flag value such as "svg" to its Format.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return FormatText, fmt.Errorf("unknown format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=silent, 1=summaries, 2=per-ply commentary

	Display *DisplayConfig
	Replay  *ReplayConfig
	Server  *ServerConfig

	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		Replay:     NewReplayConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and summaries go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Display.Validate(); err != nil {
		return err
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Server.Validate()
}
