package engine

import (
	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Apply carries out a validated move and returns the resulting position.
// The position the move was validated against is left untouched.
//
// promotion is required when NeedsPromotion reports true and ignored
// otherwise; chess.None means no choice was given.
func (m Move) Apply(promotion chess.Kind) (Position, error) {
	if !m.valid {
		return Position{}, errors.ErrUnvalidatedMove
	}
	if m.NeedsPromotion() {
		if promotion == chess.None {
			return Position{}, &errors.MoveError{Err: errors.ErrPromotionRequired, Input: m.String(), Ply: m.origin.Ply + 1}
		}
		if !promotion.Promotable() {
			return Position{}, &errors.MoveError{Err: errors.ErrInvalidPromotion, Input: m.String(), Ply: m.origin.Ply + 1}
		}
	}

	next := m.origin
	mover := next.ToMove
	from, to := m.From, m.To

	next.Captured = next.Board.Move(from, to)

	switch m.Piece.Kind() {
	case chess.Pawn:
		next.applyPawn(from, to, promotion)
	case chess.King:
		next.EnPassant = false
		next.Moved[mover].King = true
		if abs(to.File-from.File) == 2 {
			rookFrom, rookTo := castleRook(to)
			next.Board.Move(rookFrom, rookTo)
			next.markRookMoved(mover, rookFrom)
		}
	case chess.Rook:
		next.EnPassant = false
		next.markRookMoved(mover, from)
	default:
		next.EnPassant = false
	}

	if next.Captured.Kind() == chess.Rook {
		next.markRookMoved(mover.Opposite(), to)
	}

	if m.Piece.Kind() == chess.Pawn || next.Captured != chess.Empty {
		next.Halfmove = 0
	} else {
		next.Halfmove++
	}

	next.Check = next.GivesCheck(mover)
	next.ToMove = mover.Opposite()
	next.Ply++
	return next, nil
}

// applyPawn handles the pawn side effects of a move already made on the
// board: en passant removal, promotion and the new en passant target.
func (p *Position) applyPawn(from, to chess.Square, promotion chess.Kind) {
	if p.enPassantTaken(from, to) {
		p.Captured = p.Board.Get(p.EPSquare)
		p.Board.RemoveAt(p.EPSquare)
	}
	p.EnPassant = false

	if to.Rank == 0 || to.Rank == chess.BoardSize-1 {
		p.Board.PromoteAt(to, promotion)
	}

	if from.File == to.File && abs(to.Rank-from.Rank) == 2 {
		p.EnPassant = true
		p.EPSquare = to
	}
}

// enPassantTaken reports whether the pawn move just made from from to to
// was an en passant capture of the pawn on EPSquare.
func (p *Position) enPassantTaken(from, to chess.Square) bool {
	return p.EnPassant && from.File != to.File &&
		to.File == p.EPSquare.File && from.Rank == p.EPSquare.Rank
}
