// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move rejection conditions and structured error types that
// preserve context while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move validation. The messages are the ones shown to
// players at the console.
var (
	// ErrInvalidLocation indicates a coordinate token that is not a-h followed by 1-8.
	ErrInvalidLocation = errors.New("invalid location format")

	// ErrInvalidInput indicates a move line without exactly two coordinates.
	ErrInvalidInput = errors.New("invalid input")

	// ErrWrongOwner indicates the source square does not hold a piece of the side to move.
	ErrWrongOwner = errors.New("you have to move a piece that belongs to you")

	// ErrOwnPieceDestination indicates the destination holds a piece of the side to move.
	ErrOwnPieceDestination = errors.New("you cannot capture your own piece")

	// ErrIllegalMove indicates a move the piece's movement rules do not allow.
	ErrIllegalMove = errors.New("unlawful move")
)

// Sentinel errors for everything around move validation.
var (
	// ErrInvalidPromotion indicates a promotion choice other than Q, R, B or N.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrPromotionRequired indicates a pawn reached the last rank without a promotion choice.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrUnvalidatedMove indicates Apply was called on a move that never passed validation.
	ErrUnvalidatedMove = errors.New("move has not been validated")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrGameOver indicates a move was submitted after a king was captured.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameLimit indicates the server already holds its maximum number of games.
	ErrGameLimit = errors.New("too many games")

	// ErrInvalidScript indicates a replay file line that cannot be parsed.
	ErrInvalidScript = errors.New("invalid script line")

	// ErrScriptMismatch indicates a replayed ply disagreed with its expected outcome.
	ErrScriptMismatch = errors.New("script mismatch")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a rejection with the move text and the ply it was
// attempted on. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err   error  // The underlying sentinel
	Input string // The raw move line
	Ply   int    // 1-based ply the move would have been (0 if unknown)
}

// Error returns the move context followed by the rejection.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Input))
	}
	if len(parts) == 0 {
		if e.Err == nil {
			return "move error"
		}
		return e.Err.Error()
	}
	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScriptError reports where a scripted replay went wrong: a bad line in a
// replay file, or a ply whose outcome differed from the script.
type ScriptError struct {
	Err      error  // The underlying error
	Script   string // Script or file name
	Line     int    // Line number in the file (0 for built-in scripts)
	Ply      int    // 1-based ply (0 if not applicable)
	Expected string // What the script expected
	Got      string // What actually happened
}

// Error returns a formatted message with location and context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.Script != "" {
		loc := e.Script
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	case e.Got != "":
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "script error"
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
