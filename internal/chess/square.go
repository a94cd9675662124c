package chess

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Square is an immutable (file, rank) pair. File 0-7 is column A-H,
// rank 0-7 is row 1-8. It doubles as a direction vector when stepping.
type Square struct {
	File int
	Rank int
}

// NewSquare creates a square from file and rank indices.
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// String returns the lowercase coordinate, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// Add returns the componentwise sum of a and b.
func Add(a, b Square) Square {
	return Square{File: a.File + b.File, Rank: a.Rank + b.Rank}
}

// Middle returns the componentwise integer average of a and b.
// Only meaningful for squares exactly two steps apart.
func Middle(a, b Square) Square {
	return Square{File: (a.File + b.File) / 2, Rank: (a.Rank + b.Rank) / 2}
}

// ParseSquare parses a coordinate token such as "e2" or "E2".
func ParseSquare(token string) (Square, error) {
	if len(token) != 2 {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidLocation)
	}
	file := token[0] | 0x20 // lowercase
	rank := token[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%q: %w", token, errors.ErrInvalidLocation)
	}
	return Square{File: int(file - 'a'), Rank: int(rank - '1')}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for fixed tables and tests.
func MustParseSquare(token string) Square {
	s, err := ParseSquare(token)
	if err != nil {
		panic(err)
	}
	return s
}
