package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
)

// Snapshot is the JSON form of a position.
type Snapshot struct {
	FEN        string     `json:"fen"`
	ToMove     string     `json:"toMove"`
	MoveNumber int        `json:"moveNumber"`
	Ply        int        `json:"ply"`
	Check      bool       `json:"check"`
	Captured   string     `json:"captured,omitempty"`
	EnPassant  string     `json:"enPassant,omitempty"`
	Over       bool       `json:"over"`
	Winner     string     `json:"winner,omitempty"`
	Board      [8]string  `json:"board"` // rank 8 first, one code per file
	Pieces     []Occupant `json:"pieces"`
	LastMove   string     `json:"lastMove,omitempty"`
}

// Occupant is one occupied square.
type Occupant struct {
	Square string `json:"square"`
	Piece  string `json:"piece"`
	Code   string `json:"code"`
}

// NewSnapshot converts a position to its JSON form. lastMove may be empty.
func NewSnapshot(p *engine.Position, lastMove string) *Snapshot {
	s := &Snapshot{
		FEN:        p.FEN(),
		ToMove:     p.ToMove.String(),
		MoveNumber: p.MoveNumber(),
		Ply:        p.Ply,
		Check:      p.Check,
		Over:       p.Over(),
		Pieces:     make([]Occupant, 0, 32),
		LastMove:   lastMove,
	}
	if p.Captured != chess.Empty {
		s.Captured = p.Captured.String()
	}
	if p.EnPassant {
		s.EnPassant = p.EPSquare.String()
	}
	if winner, ok := p.Winner(); ok {
		s.Winner = winner.String()
	}

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		row := make([]byte, chess.BoardSize)
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.Board.PieceAt(rank, file)
			row[file] = piece.Code()
			if piece != chess.Empty {
				s.Pieces = append(s.Pieces, Occupant{
					Square: chess.NewSquare(file, rank).String(),
					Piece:  piece.String(),
					Code:   string(piece.Code()),
				})
			}
		}
		s.Board[chess.BoardSize-1-rank] = string(row)
	}
	return s
}

// WriteJSON writes the snapshot of a position as indented JSON.
func WriteJSON(w io.Writer, p *engine.Position, lastMove string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSnapshot(p, lastMove))
}
