// Package output renders positions for the console, for the web and as
// machine-readable snapshots.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/config"
	"github.com/lgbarn/console-chess-go/internal/engine"
)

const (
	fileHeader = "   A   B   C   D   E   F   G   H"
	rankRule   = " +---+---+---+---+---+---+---+---+"
)

// WriteBoard prints the board with rank 8 at the top. White pieces are
// upper case, Black lower case, and empty squares blank.
func WriteBoard(w io.Writer, b *chess.Board) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fileHeader + "\n")
	bw.WriteString(rankRule + "\n")
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(bw, "%d|", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			fmt.Fprintf(bw, " %c |", b.PieceAt(rank, file).Code())
		}
		fmt.Fprintf(bw, "%d\n%s\n", rank+1, rankRule)
	}
	bw.WriteString(fileHeader + "\n")
	return bw.Flush()
}

// WriteStatus prints the notices that follow the board: the piece taken by
// the last move and whether the side to move is in check.
func WriteStatus(w io.Writer, p *engine.Position, cfg *config.DisplayConfig) error {
	if cfg.ShowCaptures && p.Captured != chess.Empty {
		if _, err := fmt.Fprintf(w, "Captured %c\n", p.Captured.Code()); err != nil {
			return err
		}
	}
	if cfg.ShowCheck && p.Check {
		if _, err := fmt.Fprintf(w, "%v is in check!\n", p.ToMove); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints the board followed by its status notices.
func WriteText(w io.Writer, p *engine.Position, cfg *config.DisplayConfig) error {
	if err := WriteBoard(w, &p.Board); err != nil {
		return err
	}
	return WriteStatus(w, p, cfg)
}

// WriteFEN prints the position as a single FEN line.
func WriteFEN(w io.Writer, p *engine.Position) error {
	_, err := fmt.Fprintln(w, p.FEN())
	return err
}
