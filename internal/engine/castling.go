package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// kingFile is the file both kings start on.
const kingFile = 4

// Destination files of the king when castling.
const (
	queensideFile = 2
	kingsideFile  = 6
)

// kingMove checks a king move: one step in any direction, or castling.
// Castling never counts as an attack.
func (p *Position) kingMove(from, to chess.Square, attack bool) bool {
	df, dr := deltas(from, to)
	if abs(df) <= 1 && abs(dr) <= 1 {
		return true
	}
	if attack || dr != 0 || abs(df) != 2 {
		return false
	}
	return p.canCastle(from, to)
}

// canCastle checks every castling condition for the king standing on from.
func (p *Position) canCastle(from, to chess.Square) bool {
	colour := p.Board.Get(from).Colour()
	home := colour.HomeRank()
	if from != chess.NewSquare(kingFile, home) {
		return false
	}

	moved := p.Moved[colour]
	if moved.King {
		return false
	}

	var rookSquare chess.Square
	switch to.File {
	case queensideFile:
		if moved.ARook {
			return false
		}
		rookSquare = chess.NewSquare(0, home)
	case kingsideFile:
		if moved.HRook {
			return false
		}
		rookSquare = chess.NewSquare(chess.BoardSize-1, home)
	default:
		return false
	}
	if p.Board.Get(rookSquare) != chess.MakePiece(colour, chess.Rook) {
		return false
	}

	if !isPathClear(&p.Board, from, rookSquare) {
		return false
	}

	// Not out of, through, or into check.
	if p.UnderAttack(from, colour) || p.UnderAttack(chess.Middle(from, to), colour) || p.UnderAttack(to, colour) {
		return false
	}
	return true
}

// castleRook returns the rook's start and end squares for a castling king
// landing on to.
func castleRook(to chess.Square) (from, dest chess.Square) {
	if to.File == queensideFile {
		return chess.NewSquare(0, to.Rank), chess.NewSquare(3, to.Rank)
	}
	return chess.NewSquare(chess.BoardSize-1, to.Rank), chess.NewSquare(5, to.Rank)
}

// markRookMoved records that the rook belonging to colour has left, or been
// taken on, the given square. Squares other than its home corners are ignored.
func (p *Position) markRookMoved(colour chess.Colour, s chess.Square) {
	if s.Rank != colour.HomeRank() {
		return
	}
	switch s.File {
	case 0:
		p.Moved[colour].ARook = true
	case chess.BoardSize - 1:
		p.Moved[colour].HRook = true
	}
}
