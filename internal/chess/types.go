// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (for pawn direction).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// HomeRank returns the rank index on which the colour's king and rooks start.
func (c Colour) HomeRank() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank index on which the colour's pawns start.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// LastRank returns the rank index on which the colour's pawns promote.
func (c Colour) LastRank() int {
	return c.Opposite().HomeRank()
}

// Kind represents a chess piece type, independent of colour.
type Kind int

const (
	None Kind = iota // No piece (empty square)
	King
	Queen
	Rook
	Knight
	Bishop
	Pawn
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Queen", "Rook", "Knight", "Bishop", "Pawn"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of a kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'R', 'N', 'B', 'P'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Promotable reports whether a pawn may be promoted to this kind.
func (k Kind) Promotable() bool {
	switch k {
	case Queen, Rook, Knight, Bishop:
		return true
	default:
		return false
	}
}

// KindFromLetter converts a piece letter (either case) to a kind.
// Unknown letters return None.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return None
	}
}

// Piece is one of the thirteen square contents: Empty or a coloured piece.
type Piece int

const (
	Empty Piece = iota
	WKing
	WQueen
	WRook
	WKnight
	WBishop
	WPawn
	BKing
	BQueen
	BRook
	BKnight
	BBishop
	BPawn
)

// pieceCodes is indexed by Piece.
const pieceCodes = " KQRNBPkqrnbp"

// numKinds is the number of non-empty kinds per colour.
const numKinds = int(Pawn)

// MakePiece creates the piece of the given colour and kind.
// A kind of None yields Empty.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= None || kind > Pawn {
		return Empty
	}
	if colour == White {
		return Piece(kind)
	}
	return Piece(int(kind) + numKinds)
}

// PieceFromCode converts a display code back to a piece.
// The second result is false for characters outside the code table.
func PieceFromCode(c byte) (Piece, bool) {
	for i := 0; i < len(pieceCodes); i++ {
		if pieceCodes[i] == c {
			return Piece(i), true
		}
	}
	return Empty, false
}

// Code returns the one-character display code: uppercase for white,
// lowercase for black, space for an empty square.
func (p Piece) Code() byte {
	if p < Empty || p > BPawn {
		return '?'
	}
	return pieceCodes[p]
}

// IsWhite reports whether the piece is white. False for Empty.
func (p Piece) IsWhite() bool {
	return p >= WKing && p <= WPawn
}

// IsBlack reports whether the piece is black. False for Empty.
func (p Piece) IsBlack() bool {
	return p >= BKing && p <= BPawn
}

// Is reports whether the piece belongs to the given colour.
func (p Piece) Is(colour Colour) bool {
	if colour == White {
		return p.IsWhite()
	}
	return p.IsBlack()
}

// Colour returns the colour of a non-empty piece.
// The result is meaningless for Empty; check with IsWhite/IsBlack first.
func (p Piece) Colour() Colour {
	if p.IsWhite() {
		return White
	}
	return Black
}

// Kind returns the kind of the piece, None for Empty.
func (p Piece) Kind() Kind {
	switch {
	case p.IsWhite():
		return Kind(p)
	case p.IsBlack():
		return Kind(int(p) - numKinds)
	default:
		return None
	}
}

// String returns a readable name such as "White Knight" or "Empty".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	if !p.IsWhite() && !p.IsBlack() {
		return "Unknown"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// BoardSize is the number of files and ranks.
const BoardSize = 8
