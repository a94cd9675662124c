// Package script replays fixed move sequences through the engine and checks
// each ply against its expected outcome.
package script

import (
	"fmt"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/engine"
	"github.com/lgbarn/console-chess-go/internal/errors"
)

// Outcome is what a ply is expected to produce.
type Outcome struct {
	WhiteNext bool        // White is to move afterwards
	Check     bool        // the mover attacks the opposing king
	Captured  chess.Piece // piece taken by the ply, or Empty
}

// Ply is one scripted move.
type Ply struct {
	Input   string     // move line, e.g. "e2 e4"
	Promote chess.Kind // promotion choice, None if the move does not promote
	Expect  *Outcome   // nil when only legality is checked
}

// Script is a named move sequence with an optional starting position and
// expected final board.
type Script struct {
	Name  string
	Start *engine.Position // nil means the standard starting position
	Plies []Ply
	End   *chess.Board // nil means the final board is not checked
}

// Step is reported for every ply replayed.
type Step struct {
	Index  int // 0-based ply index within the script
	Ply    Ply
	Before engine.Position
	After  engine.Position
}

// Result summarises a replay.
type Result struct {
	Name  string
	Plies int             // plies applied successfully
	Final engine.Position // position after the last applied ply
	Err   error
}

// Passed reports whether the replay finished without error.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Replay plays the script from its start position. observe, if not nil, is
// called after every applied ply. Replay stops at the first illegal move or
// unexpected outcome.
func Replay(s Script, observe func(Step)) Result {
	p := engine.NewPosition()
	if s.Start != nil {
		p = *s.Start
	}
	res := Result{Name: s.Name, Final: p}

	for i, ply := range s.Plies {
		m, err := p.Validate(ply.Input)
		if err != nil {
			res.Err = &errors.ScriptError{Err: err, Script: s.Name, Ply: i + 1}
			return res
		}
		next, err := m.Apply(ply.Promote)
		if err != nil {
			res.Err = &errors.ScriptError{Err: err, Script: s.Name, Ply: i + 1}
			return res
		}
		if observe != nil {
			observe(Step{Index: i, Ply: ply, Before: p, After: next})
		}
		p = next
		res.Final = p
		res.Plies = i + 1

		if ply.Expect != nil {
			if err := compare(*ply.Expect, p); err != nil {
				err.Script = s.Name
				err.Ply = i + 1
				res.Err = err
				return res
			}
		}
	}

	if s.End != nil && !p.Board.Equals(s.End) {
		want := engine.NewPositionFromBoard(s.End, p.ToMove)
		res.Err = &errors.ScriptError{
			Err:      errors.ErrScriptMismatch,
			Script:   s.Name,
			Expected: "final board " + want.FEN(),
			Got:      p.FEN(),
		}
	}
	return res
}

// compare checks the position produced by a ply against its expectation.
func compare(want Outcome, p engine.Position) *errors.ScriptError {
	mismatch := func(field string, want, got interface{}) *errors.ScriptError {
		return &errors.ScriptError{
			Err:      errors.ErrScriptMismatch,
			Expected: fmt.Sprintf("%s %v", field, want),
			Got:      fmt.Sprintf("%v", got),
		}
	}

	if got := p.ToMove == chess.White; got != want.WhiteNext {
		return mismatch("white to move", want.WhiteNext, got)
	}
	if p.Check != want.Check {
		return mismatch("check", want.Check, p.Check)
	}
	if p.Captured != want.Captured {
		return mismatch("captured", want.Captured, p.Captured)
	}
	return nil
}
