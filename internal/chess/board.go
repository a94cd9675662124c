package chess

// Board is the 8x8 grid of pieces. Every square always holds a Piece value;
// Empty is a value, so the zero Board is an empty board.
//
// Board performs no legality checking. Moves are validated elsewhere before
// the board is asked to carry them out.
type Board struct {
	// squares[rank][file]
	squares [BoardSize][BoardSize]Piece

	// Set once a king has been captured.
	ended bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// backRank lists the home-rank kinds from file A to file H.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Initialize resets the board to the standard starting position and clears
// the end-of-game flag.
func (b *Board) Initialize() {
	b.squares = [BoardSize][BoardSize]Piece{}
	for file := 0; file < BoardSize; file++ {
		b.squares[White.HomeRank()][file] = MakePiece(White, backRank[file])
		b.squares[White.PawnRank()][file] = WPawn
		b.squares[Black.PawnRank()][file] = BPawn
		b.squares[Black.HomeRank()][file] = MakePiece(Black, backRank[file])
	}
	b.ended = false
}

// Get returns the piece on the given square. The square must be on the board.
func (b *Board) Get(s Square) Piece {
	return b.squares[s.Rank][s.File]
}

// PieceAt returns the piece at the given rank and file indices.
func (b *Board) PieceAt(rank, file int) Piece {
	return b.squares[rank][file]
}

// Set places a piece on the given square.
func (b *Board) Set(s Square, p Piece) {
	b.squares[s.Rank][s.File] = p
}

// EmptyAt reports whether the square is unoccupied.
func (b *Board) EmptyAt(s Square) bool {
	return b.Get(s) == Empty
}

// Move moves whatever is on from to to, leaving from empty, and returns the
// piece previously on to (possibly Empty). Capturing a king ends the game.
func (b *Board) Move(from, to Square) Piece {
	captured := b.Get(to)
	if captured.Kind() == King {
		b.ended = true
	}
	b.Set(to, b.Get(from))
	b.Set(from, Empty)
	return captured
}

// RemoveAt empties the square. Used for the pawn taken en passant.
func (b *Board) RemoveAt(s Square) {
	b.Set(s, Empty)
}

// PromoteAt replaces the pawn on s with a piece of the same colour and the
// requested kind. It does nothing and returns false unless s holds a pawn
// and kind is a queen, rook, knight or bishop.
func (b *Board) PromoteAt(s Square, kind Kind) bool {
	pawn := b.Get(s)
	if pawn.Kind() != Pawn || !kind.Promotable() {
		return false
	}
	b.Set(s, MakePiece(pawn.Colour(), kind))
	return true
}

// End reports whether a king has been captured.
func (b *Board) End() bool {
	return b.ended
}

// Equals reports whether both boards hold the same pieces on every square.
// The end-of-game flag is not compared.
func (b *Board) Equals(other *Board) bool {
	return b.squares == other.squares
}

// Find returns the first square, scanning from A1 rank by rank, that holds p.
func (b *Board) Find(p Piece) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b.squares[rank][file] == p {
				return Square{File: file, Rank: rank}, true
			}
		}
	}
	return Square{}, false
}

// KasparovEnd returns the final position of Kasparov versus the World (1999),
// used to verify the scripted replay of that game. The squares are the ones
// the recorded move list reaches, with the black king on c1 and the white
// king on f6.
func KasparovEnd() *Board {
	b := NewBoard()
	b.Set(MustParseSquare("c1"), BKing)
	b.Set(MustParseSquare("f2"), WQueen)
	b.Set(MustParseSquare("d4"), BPawn)
	b.Set(MustParseSquare("e4"), BQueen)
	b.Set(MustParseSquare("f6"), WKing)
	b.Set(MustParseSquare("g7"), WPawn)
	return b
}
