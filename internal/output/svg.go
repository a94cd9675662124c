package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/console-chess-go/internal/chess"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
	checkSquare = "fill:#e06c5f"
	labelStyle  = "font-family:sans-serif;fill:#404040"
)

var glyphs = map[chess.Piece]string{
	chess.WKing: "♔", chess.WQueen: "♕", chess.WRook: "♖",
	chess.WBishop: "♗", chess.WKnight: "♘", chess.WPawn: "♙",
	chess.BKing: "♚", chess.BQueen: "♛", chess.BRook: "♜",
	chess.BBishop: "♝", chess.BKnight: "♞", chess.BPawn: "♟",
}

// SVGOptions controls the SVG board.
type SVGOptions struct {
	SquareSize int          // edge of one square in pixels
	Highlight  chess.Square // square tinted red, usually a king in check
	Mark       bool         // whether Highlight is used
}

// WriteSVG draws the board as an SVG image with rank 8 at the top and file
// and rank labels along a margin of half a square.
func WriteSVG(w io.Writer, b *chess.Board, opts SVGOptions) error {
	sq := opts.SquareSize
	margin := sq / 2
	size := chess.BoardSize*sq + 2*margin

	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	fontSize := sq * 3 / 4
	labelSize := margin * 2 / 3
	for rank := 0; rank < chess.BoardSize; rank++ {
		y := margin + (chess.BoardSize-1-rank)*sq
		canvas.Text(margin/2, y+sq/2+labelSize/3, fmt.Sprint(rank+1),
			fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle", labelStyle, labelSize))
		for file := 0; file < chess.BoardSize; file++ {
			x := margin + file*sq
			style := lightSquare
			if (file+rank)%2 == 0 {
				style = darkSquare
			}
			if opts.Mark && opts.Highlight == chess.NewSquare(file, rank) {
				style = checkSquare
			}
			canvas.Rect(x, y, sq, sq, style)

			if g, ok := glyphs[b.PieceAt(rank, file)]; ok {
				canvas.Text(x+sq/2, y+sq*4/5, g,
					fmt.Sprintf("font-size:%dpx;text-anchor:middle", fontSize))
			}
		}
	}
	for file := 0; file < chess.BoardSize; file++ {
		canvas.Text(margin+file*sq+sq/2, size-margin/4, string(rune('a'+file)),
			fmt.Sprintf("%s;font-size:%dpx;text-anchor:middle", labelStyle, labelSize))
	}
	canvas.End()
	return cw.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err == nil {
		_, e.err = e.w.Write(p)
	}
	return len(p), nil
}
