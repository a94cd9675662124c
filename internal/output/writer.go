package output

import (
	"io"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
)

// PositionWriter writes positions in one output format.
type PositionWriter interface {
	// WritePosition writes p. lastMove is the move that produced it, or "".
	WritePosition(p *engine.Position, lastMove string) error
}

// NewWriter returns the PositionWriter for the configured format.
func NewWriter(w io.Writer, cfg *config.DisplayConfig) PositionWriter {
	switch cfg.Format {
	case config.FormatSVG:
		return &SVGWriter{w: w, cfg: cfg}
	case config.FormatFEN:
		return &FENWriter{w: w}
	case config.FormatJSON:
		return &JSONWriter{w: w}
	default:
		return &TextWriter{w: w, cfg: cfg}
	}
}

// TextWriter writes the console board and status notices.
type TextWriter struct {
	w   io.Writer
	cfg *config.DisplayConfig
}

// WritePosition implements PositionWriter.
func (tw *TextWriter) WritePosition(p *engine.Position, _ string) error {
	return WriteText(tw.w, p, tw.cfg)
}

// SVGWriter writes an SVG image, highlighting a king in check.
type SVGWriter struct {
	w   io.Writer
	cfg *config.DisplayConfig
}

// WritePosition implements PositionWriter.
func (sw *SVGWriter) WritePosition(p *engine.Position, _ string) error {
	return WriteSVG(sw.w, &p.Board, SVGOptionsFor(p, sw.cfg.SVGSquareSize))
}

// SVGOptionsFor builds SVG options for a position, marking the king of
// the side to move when it is in check.
func SVGOptionsFor(p *engine.Position, squareSize int) SVGOptions {
	opts := SVGOptions{SquareSize: squareSize}
	if p.Check {
		if s, ok := p.Board.Find(chess.MakePiece(p.ToMove, chess.King)); ok {
			opts.Highlight, opts.Mark = s, true
		}
	}
	return opts
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w io.Writer
}

// WritePosition implements PositionWriter.
func (fw *FENWriter) WritePosition(p *engine.Position, _ string) error {
	return WriteFEN(fw.w, p)
}

// JSONWriter writes one indented JSON snapshot per position.
type JSONWriter struct {
	w io.Writer
}

// WritePosition implements PositionWriter.
func (jw *JSONWriter) WritePosition(p *engine.Position, lastMove string) error {
	return WriteJSON(jw.w, p, lastMove)
}
