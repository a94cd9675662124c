package engine

import "github.com/lgbarn/console-chess-go/internal/chess"

// rookMove checks a rook move: same rank or same file, nothing in between.
func rookMove(board *chess.Board, from, to chess.Square) bool {
	df, dr := deltas(from, to)
	if (df == 0) == (dr == 0) {
		return false
	}
	return isPathClear(board, from, to)
}

// bishopMove checks a bishop move: a pure diagonal, nothing in between.
func bishopMove(board *chess.Board, from, to chess.Square) bool {
	df, dr := deltas(from, to)
	if df == 0 || abs(df) != abs(dr) {
		return false
	}
	return isPathClear(board, from, to)
}

// queenMove checks a queen move, which is either a rook or a bishop move.
func queenMove(board *chess.Board, from, to chess.Square) bool {
	return rookMove(board, from, to) || bishopMove(board, from, to)
}

// knightMove checks the knight's (1,2) jump. Blocking never applies.
func knightMove(from, to chess.Square) bool {
	df, dr := deltas(from, to)
	df, dr = abs(df), abs(dr)
	return df*dr == 2 && df+dr == 3
}

// isPathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	step := unit(from, to)
	for s := chess.Add(from, step); s != to; s = chess.Add(s, step) {
		if !board.EmptyAt(s) {
			return false
		}
	}
	return true
}
