package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string. Missing trailing
// fields take their starting-position defaults. The check flag is computed
// from the placement.
func NewPositionFromFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	var p Position
	if err := parsePiecePositions(&p.Board, parts[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseCastlingRights(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&p, parts); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&p, parts); err != nil {
		return Position{}, err
	}

	p.Check = p.InCheck(p.ToMove)
	return p, nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// Intended for fixed fixtures and tests.
func MustPositionFromFEN(fen string) Position {
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for i, row := range rows {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromCode(c)
				if !ok || piece == chess.Empty {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", rank+1, errors.ErrInvalidFEN)
				}
				board.Set(chess.NewSquare(file, rank), piece)
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, parts []string) error {
	p.ToMove = chess.White
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		p.ToMove = chess.White
	case "b":
		p.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights maps the castling availability field onto the moved
// flags. A side with neither right has its king marked as moved.
func parseCastlingRights(p *Position, parts []string) error {
	field := "KQkq"
	if len(parts) >= 3 {
		field = parts[2]
	}

	var k, q [2]bool
	if field != "-" {
		for _, c := range field {
			switch c {
			case 'K':
				k[chess.White] = true
			case 'Q':
				q[chess.White] = true
			case 'k':
				k[chess.Black] = true
			case 'q':
				q[chess.Black] = true
			default:
				return fmt.Errorf("invalid castling field: %s: %w", field, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		p.Moved[colour] = Moved{
			King:  !k[colour] && !q[colour],
			ARook: !q[colour],
			HRook: !k[colour],
		}
	}
	return nil
}

// parseEnPassant parses the en passant field. FEN names the square the pawn
// skipped; the position records the pawn itself.
func parseEnPassant(p *Position, parts []string) error {
	p.EnPassant = false
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	skipped, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	mover := p.ToMove.Opposite()
	if skipped.Rank != mover.PawnRank()+mover.Forward() {
		return fmt.Errorf("en passant square %s on wrong rank: %w", parts[3], errors.ErrInvalidFEN)
	}
	p.EnPassant = true
	p.EPSquare = chess.NewSquare(skipped.File, skipped.Rank+mover.Forward())
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(p *Position, parts []string) error {
	fullmove := 1
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		p.Halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	p.Ply = (fullmove - 1) * 2
	if p.ToMove == chess.Black {
		p.Ply++
	}
	return nil
}

// FEN converts a position to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.Board)
	sb.WriteByte(' ')
	if p.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	p.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	if p.EnPassant {
		mover := p.ToMove.Opposite()
		sb.WriteString(chess.NewSquare(p.EPSquare.File, p.EPSquare.Rank-mover.Forward()).String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.Halfmove, p.MoveNumber())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(rank, file)
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Code())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (p *Position) writeCastlingRights(sb *strings.Builder) {
	hasCastling := false
	for _, right := range []struct {
		colour chess.Colour
		rook   bool
		letter byte
	}{
		{chess.White, p.Moved[chess.White].HRook, 'K'},
		{chess.White, p.Moved[chess.White].ARook, 'Q'},
		{chess.Black, p.Moved[chess.Black].HRook, 'k'},
		{chess.Black, p.Moved[chess.Black].ARook, 'q'},
	} {
		if !p.Moved[right.colour].King && !right.rook {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
