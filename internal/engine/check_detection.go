package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// UnderAttack reports whether any piece of colour's opponent could move to
// s under the ordinary movement rules.
func (p *Position) UnderAttack(s chess.Square, colour chess.Colour) bool {
	return p.attackedBy(s, colour.Opposite())
}

// attackedBy scans the whole board for a piece of the attacker's colour
// that attacks s.
func (p *Position) attackedBy(s chess.Square, attacker chess.Colour) bool {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if !p.Board.PieceAt(rank, file).Is(attacker) {
				continue
			}
			if p.attacks(chess.NewSquare(file, rank), s) {
				return true
			}
		}
	}
	return false
}

// findKing finds the king of the given colour on the board.
func (p *Position) findKing(colour chess.Colour) (chess.Square, bool) {
	return p.Board.Find(chess.MakePiece(colour, chess.King))
}

// InCheck reports whether colour's king is attacked. A side without a
// king is never in check.
func (p *Position) InCheck(colour chess.Colour) bool {
	king, ok := p.findKing(colour)
	if !ok {
		return false
	}
	return p.UnderAttack(king, colour)
}

// GivesCheck reports whether mover attacks the opposing king. This is a
// check test only; whether the opponent has any escape is not examined.
func (p *Position) GivesCheck(mover chess.Colour) bool {
	return p.InCheck(mover.Opposite())
}
