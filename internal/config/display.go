package config

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// MinSquareSize is the smallest SVG square edge, in pixels, that still
// leaves room for the piece glyphs.
const MinSquareSize = 16

// DisplayConfig controls how positions are rendered.
type DisplayConfig struct {
	Format Format

	// SVGSquareSize is the edge of one square in SVG output, in pixels.
	SVGSquareSize int

	// ShowCaptures prints "Captured X" after a capturing move.
	ShowCaptures bool

	// ShowCheck prints a notice when the side to move is in check.
	ShowCheck bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Format:        FormatText,
		SVGSquareSize: 45,
		ShowCaptures:  true,
		ShowCheck:     true,
	}
}

// Validate checks that the display configuration is usable.
func (d *DisplayConfig) Validate() error {
	if d.SVGSquareSize < MinSquareSize {
		return fmt.Errorf("svg square size %d below %d: %w",
			d.SVGSquareSize, MinSquareSize, errors.ErrInvalidConfig)
	}
	if d.Format < FormatText || d.Format > FormatJSON {
		return fmt.Errorf("format %v: %w", d.Format, errors.ErrInvalidConfig)
	}
	return nil
}
