package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// pawnMove checks a pawn move for the pawn standing on from.
//
// In attack mode only the diagonal capture pattern counts, whether or not
// the destination is occupied.
func (p *Position) pawnMove(from, to chess.Square, attack bool) bool {
	colour := p.Board.Get(from).Colour()
	df, dr := deltas(from, to)

	// Forward only.
	if sign(dr) != colour.Forward() {
		return false
	}

	if attack {
		return abs(dr) == 1 && abs(df) == 1
	}

	// Double-step from the starting rank over two empty squares.
	if abs(dr) == 2 {
		if df != 0 || from.Rank != colour.PawnRank() {
			return false
		}
		return p.Board.EmptyAt(chess.Middle(from, to)) && p.Board.EmptyAt(to)
	}

	if p.enPassantCapture(from, to) {
		return true
	}

	if abs(dr) != 1 {
		return false
	}
	switch abs(df) {
	case 1:
		return !p.Board.EmptyAt(to)
	case 0:
		return p.Board.EmptyAt(to)
	default:
		return false
	}
}

// enPassantCapture reports whether moving from to to takes the pawn that
// double-stepped on the previous ply.
func (p *Position) enPassantCapture(from, to chess.Square) bool {
	if !p.EnPassant {
		return false
	}
	df, dr := deltas(from, to)
	if abs(df) != 1 || abs(dr) != 1 {
		return false
	}
	if p.EPSquare.Rank != from.Rank || p.EPSquare.File != to.File {
		return false
	}
	mover := p.Board.Get(from)
	return p.Board.Get(p.EPSquare) == chess.MakePiece(mover.Colour().Opposite(), chess.Pawn)
}
