package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// CanMove reports whether the piece on from may move to to under its
// movement rules. Ownership of the squares is not checked, and a move that
// leaves the mover's own king attacked is not rejected.
func (p *Position) CanMove(from, to chess.Square) bool {
	return p.canMove(from, to, false)
}

// attacks reports whether the piece on from attacks to.
func (p *Position) attacks(from, to chess.Square) bool {
	return p.canMove(from, to, true)
}

// canMove dispatches on the kind of the piece on from. In attack mode
// castling and pawn pushes are excluded and pawn captures need no victim.
func (p *Position) canMove(from, to chess.Square, attack bool) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	switch p.Board.Get(from).Kind() {
	case chess.King:
		return p.kingMove(from, to, attack)
	case chess.Queen:
		return queenMove(&p.Board, from, to)
	case chess.Rook:
		return rookMove(&p.Board, from, to)
	case chess.Bishop:
		return bishopMove(&p.Board, from, to)
	case chess.Knight:
		return knightMove(from, to)
	case chess.Pawn:
		return p.pawnMove(from, to, attack)
	case chess.None:
		return false
	default:
		return false
	}
}
