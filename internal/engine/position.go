// Package engine decides whether moves are legal and carries them out.
//
// A Position is the complete game state after some number of plies. It is a
// value: validating a move never changes it, and applying a move produces a
// new Position while the old one stays intact.
package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// Moved records which of one side's castling pieces have left their home
// squares. A flag is never cleared once set.
type Moved struct {
	King  bool
	ARook bool // rook starting on file A
	HRook bool // rook starting on file H
}

// Position is the game state between two plies.
type Position struct {
	Board chess.Board

	// ToMove is the side whose turn it is.
	ToMove chess.Colour

	// Moved is indexed by chess.Colour.
	Moved [2]Moved

	// EnPassant is set for exactly one ply after a pawn double-step.
	// EPSquare is the square of the pawn that double-stepped, not the
	// square it passed over.
	EnPassant bool
	EPSquare  chess.Square

	// Check is true when the side that just moved attacks the king of ToMove.
	Check bool

	// Captured is the piece taken by the last ply, or Empty.
	Captured chess.Piece

	// Ply counts plies played since the start position.
	Ply int

	// Halfmove counts plies since the last capture or pawn move.
	Halfmove int
}

// NewPosition returns the standard starting position with White to move.
func NewPosition() Position {
	p := Position{ToMove: chess.White}
	p.Board.Initialize()
	return p
}

// NewPositionFromBoard builds a fixture position around an arbitrary board.
// Kings and rooks that are not on their home squares are marked as moved,
// and the check flag reflects the given board.
func NewPositionFromBoard(board *chess.Board, toMove chess.Colour) Position {
	p := Position{Board: *board, ToMove: toMove}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := colour.HomeRank()
		p.Moved[colour] = Moved{
			King:  p.Board.Get(chess.NewSquare(kingFile, home)) != chess.MakePiece(colour, chess.King),
			ARook: p.Board.Get(chess.NewSquare(0, home)) != chess.MakePiece(colour, chess.Rook),
			HRook: p.Board.Get(chess.NewSquare(chess.BoardSize-1, home)) != chess.MakePiece(colour, chess.Rook),
		}
	}
	p.Check = p.InCheck(toMove)
	return p
}

// Get returns the piece on a square.
func (p *Position) Get(s chess.Square) chess.Piece {
	return p.Board.Get(s)
}

// Over reports whether a king has been captured.
func (p *Position) Over() bool {
	return p.Board.End()
}

// Winner returns the side that captured the opposing king. The second
// result is false while the game is still running.
func (p *Position) Winner() (chess.Colour, bool) {
	if !p.Over() {
		return 0, false
	}
	return p.ToMove.Opposite(), true
}

// MoveNumber returns the full-move number, starting at 1.
func (p *Position) MoveNumber() int {
	return p.Ply/2 + 1
}
