package engine

import (
	stderrors "errors"
	"strings"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Code classifies the outcome of Validate.
type Code int

const (
	Ok Code = iota
	InvalidLocation
	InvalidInputShape
	WrongOwnerSource
	OwnPieceDestination
	IllegalMove
)

// String returns the name of a code.
func (c Code) String() string {
	names := []string{"Ok", "InvalidLocation", "InvalidInputShape", "WrongOwnerSource", "OwnPieceDestination", "IllegalMove"}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Message returns the text shown to a player for the code.
func (c Code) Message() string {
	if err := c.sentinel(); err != nil {
		return err.Error()
	}
	return ""
}

func (c Code) sentinel() error {
	switch c {
	case InvalidLocation:
		return errors.ErrInvalidLocation
	case InvalidInputShape:
		return errors.ErrInvalidInput
	case WrongOwnerSource:
		return errors.ErrWrongOwner
	case OwnPieceDestination:
		return errors.ErrOwnPieceDestination
	case IllegalMove:
		return errors.ErrIllegalMove
	default:
		return nil
	}
}

// CodeOf classifies an error returned by Validate. A nil error is Ok.
// Errors outside the five rejection kinds classify as IllegalMove.
func CodeOf(err error) Code {
	if err == nil {
		return Ok
	}
	for _, c := range []Code{InvalidLocation, InvalidInputShape, WrongOwnerSource, OwnPieceDestination} {
		if stderrors.Is(err, c.sentinel()) {
			return c
		}
	}
	return IllegalMove
}

// Move is a move that passed Validate, bound to the position it was
// validated against. The zero Move cannot be applied.
type Move struct {
	From  chess.Square
	To    chess.Square
	Piece chess.Piece

	origin Position
	valid  bool
}

// NeedsPromotion reports whether the move takes a pawn to its last rank,
// so Apply must be given a promotion kind.
func (m Move) NeedsPromotion() bool {
	return m.Piece.Kind() == chess.Pawn && m.To.Rank == m.Piece.Colour().LastRank()
}

// String returns the move in input form, e.g. "e2 e4".
func (m Move) String() string {
	return m.From.String() + " " + m.To.String()
}

// Validate parses a move line such as "e2 e4" and checks it against the
// position without changing anything. Rejections wrap one of the sentinel
// errors behind the Code values; see CodeOf.
func (p *Position) Validate(text string) (Move, error) {
	reject := func(err error) (Move, error) {
		return Move{}, &errors.MoveError{Err: err, Input: text, Ply: p.Ply + 1}
	}

	if p.Over() {
		return reject(errors.ErrGameOver)
	}

	tokens := strings.Fields(text)
	squares := make([]chess.Square, 0, 2)
	for _, token := range tokens {
		s, err := chess.ParseSquare(token)
		if err != nil {
			return reject(err)
		}
		squares = append(squares, s)
	}
	if len(squares) != 2 {
		return reject(errors.ErrInvalidInput)
	}
	return p.ValidateSquares(squares[0], squares[1])
}

// ValidateSquares checks a move given as two squares.
func (p *Position) ValidateSquares(from, to chess.Square) (Move, error) {
	reject := func(err error) (Move, error) {
		return Move{}, &errors.MoveError{Err: err, Input: from.String() + " " + to.String(), Ply: p.Ply + 1}
	}

	if p.Over() {
		return reject(errors.ErrGameOver)
	}
	if !from.Valid() || !to.Valid() {
		return reject(errors.ErrInvalidLocation)
	}
	piece := p.Board.Get(from)
	if !piece.Is(p.ToMove) {
		return reject(errors.ErrWrongOwner)
	}
	if p.Board.Get(to).Is(p.ToMove) {
		return reject(errors.ErrOwnPieceDestination)
	}
	if !p.CanMove(from, to) {
		return reject(errors.ErrIllegalMove)
	}
	return Move{From: from, To: to, Piece: piece, origin: *p, valid: true}, nil
}

// ParsePromotion converts a one-letter promotion choice (q, r, b or n, in
// either case) to a kind.
func ParsePromotion(text string) (chess.Kind, error) {
	text = strings.TrimSpace(text)
	if len(text) != 1 {
		return chess.None, errors.Wrapf(errors.ErrInvalidPromotion, "%q", text)
	}
	kind := chess.KindFromLetter(text[0])
	if !kind.Promotable() {
		return chess.None, errors.Wrapf(errors.ErrInvalidPromotion, "%q", text)
	}
	return kind, nil
}
