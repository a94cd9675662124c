package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/console-chess-go/internal/chess"
	"github.com/lgbarn/console-chess-go/internal/errors"
	"github.com/lgbarn/console-chess-go/internal/testutil"
)

func TestValidateCodes(t *testing.T) {
	tests := []struct {
		input string
		want  Code
	}{
		{"e2 e4", Ok},
		{"E2 E4", Ok},
		{"  e2\t  e4  ", Ok},
		{"g1 f3", Ok},
		{"e2e4", InvalidLocation},
		{"i2 e4", InvalidLocation},
		{"e2 e9", InvalidLocation},
		{"e2 e4 x", InvalidLocation},
		{"", InvalidInputShape},
		{"   ", InvalidInputShape},
		{"e2", InvalidInputShape},
		{"e2 e4 e5", InvalidInputShape},
		{"e7 e5", WrongOwnerSource},
		{"e3 e4", WrongOwnerSource},
		{"a1 a2", OwnPieceDestination},
		{"e1 d1", OwnPieceDestination},
		{"e2 e5", IllegalMove},
		{"b1 b3", IllegalMove},
		{"f1 c4", IllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			p := NewPosition()
			_, err := p.Validate(tt.input)
			if got := CodeOf(err); got != tt.want {
				t.Errorf("CodeOf(Validate(%q)) = %v, want %v (err %v)", tt.input, got, tt.want, err)
			}
		})
	}
}

func TestCodeMessages(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Ok, ""},
		{InvalidLocation, "invalid location format"},
		{InvalidInputShape, "invalid input"},
		{WrongOwnerSource, "you have to move a piece that belongs to you"},
		{OwnPieceDestination, "you cannot capture your own piece"},
		{IllegalMove, "unlawful move"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateErrorContext(t *testing.T) {
	p := NewPosition()
	_, err := p.Validate("e2 e5")

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("Validate() error = %T, want *errors.MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.Input, "e2 e5")
	testutil.AssertEqual(t, moveErr.Ply, 1)
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
}

func TestValidateDoesNotMutate(t *testing.T) {
	p := NewPosition()
	before := p
	for _, input := range []string{"e2 e4", "e7 e5", "a1 a2", "e2 e5", "nonsense"} {
		_, _ = p.Validate(input)
	}
	if p != before {
		t.Error("Validate changed the position")
	}
}

func TestApplyE2E4(t *testing.T) {
	p := NewPosition()
	m, err := p.Validate("e2 e4")
	if err != nil {
		t.Fatalf("Validate(e2 e4) error: %v", err)
	}
	next, err := m.Apply(chess.None)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}

	testutil.AssertEqual(t, next.Get(chess.MustParseSquare("e4")), chess.WPawn)
	testutil.AssertEqual(t, next.Get(chess.MustParseSquare("e2")), chess.Empty)
	testutil.AssertEqual(t, next.ToMove, chess.Black)
	testutil.AssertTrue(t, next.EnPassant, "EnPassant")
	testutil.AssertEqual(t, next.EPSquare, chess.MustParseSquare("e4"))
	testutil.AssertEqual(t, next.Captured, chess.Empty)
	testutil.AssertFalse(t, next.Check, "Check")
	testutil.AssertEqual(t, next.Ply, 1)

	if p != NewPosition() {
		t.Error("Apply changed the original position")
	}

	// The old move stays bound to the old position.
	again, err := m.Apply(chess.None)
	testutil.AssertNoError(t, err)
	if again != next {
		t.Error("applying the same move twice gave different positions")
	}
}

func TestApplyUnvalidated(t *testing.T) {
	_, err := Move{}.Apply(chess.Queen)
	testutil.AssertErrorIs(t, err, errors.ErrUnvalidatedMove)
}

func TestApplyPromotion(t *testing.T) {
	p := MustPositionFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	m, err := p.Validate("a7 a8")
	if err != nil {
		t.Fatalf("Validate(a7 a8) error: %v", err)
	}
	if !m.NeedsPromotion() {
		t.Fatal("NeedsPromotion() = false for a7 a8")
	}

	_, err = m.Apply(chess.None)
	testutil.AssertErrorIs(t, err, errors.ErrPromotionRequired)
	_, err = m.Apply(chess.King)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
	_, err = m.Apply(chess.Pawn)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)

	for _, kind := range []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight} {
		next, err := m.Apply(kind)
		if err != nil {
			t.Fatalf("Apply(%v) error: %v", kind, err)
		}
		if got := next.Get(chess.MustParseSquare("a8")); got != chess.MakePiece(chess.White, kind) {
			t.Errorf("Apply(%v): a8 = %v", kind, got)
		}
	}

	t.Run("promotion gives check", func(t *testing.T) {
		p := MustPositionFromFEN("7k/P7/8/8/8/8/8/K7 w - - 0 1")
		next := play(t, p, "a7 a8")
		testutil.AssertTrue(t, next.Check, "queen on a8 checks h8")
	})

	t.Run("black promotes", func(t *testing.T) {
		p := MustPositionFromFEN("7k/8/8/8/8/8/p7/7K b - - 0 1")
		m, err := p.Validate("a2 a1")
		testutil.AssertNoError(t, err)
		next, err := m.Apply(chess.Knight)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, next.Get(chess.MustParseSquare("a1")), chess.BKnight)
	})

	t.Run("choice ignored without promotion", func(t *testing.T) {
		p := NewPosition()
		m, err := p.Validate("e2 e3")
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, m.NeedsPromotion())
		next, err := m.Apply(chess.Queen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, next.Get(chess.MustParseSquare("e3")), chess.WPawn)
	})
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		input   string
		want    chess.Kind
		wantErr bool
	}{
		{"q", chess.Queen, false},
		{"Q", chess.Queen, false},
		{"r", chess.Rook, false},
		{"b", chess.Bishop, false},
		{"N", chess.Knight, false},
		{" n ", chess.Knight, false},
		{"k", chess.None, true},
		{"p", chess.None, true},
		{"qq", chess.None, true},
		{"", chess.None, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePromotion(tt.input)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidPromotion)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestApplyCastling(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     string
		rookFrom string
		rookTo   string
		wantFEN  string
	}{
		{
			name: "white kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1 g1", rookFrom: "h1", rookTo: "f1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "white queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1 c1", rookFrom: "a1", rookTo: "d1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name: "black kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8 g8", rookFrom: "h8", rookTo: "f8",
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "black queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8 c8", rookFrom: "a8", rookTo: "d8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next := play(t, MustPositionFromFEN(tt.fen), tt.move)
			testutil.AssertEqual(t, next.Get(chess.MustParseSquare(tt.rookFrom)), chess.Empty)
			testutil.AssertEqual(t, next.Get(chess.MustParseSquare(tt.rookTo)).Kind(), chess.Rook)
			testutil.AssertEqual(t, next.FEN(), tt.wantFEN)
		})
	}
}

func TestApplyRookRights(t *testing.T) {
	t.Run("rook leaves home", func(t *testing.T) {
		p := play(t, MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), "h1 h2")
		testutil.AssertEqual(t, p.Moved[chess.White], Moved{HRook: true})
		testutil.AssertEqual(t, p.FEN(), "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1")
	})

	t.Run("rook captured on its corner", func(t *testing.T) {
		p := play(t, MustPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), "a1 a8")
		testutil.AssertEqual(t, p.Captured, chess.BRook)
		testutil.AssertEqual(t, p.Moved[chess.Black], Moved{ARook: true})
		testutil.AssertEqual(t, p.Moved[chess.White], Moved{ARook: true})
		if _, err := p.Validate("e8 c8"); err == nil {
			t.Error("black castled towards a captured rook")
		}
	})
}

func TestKingCaptureEndsGame(t *testing.T) {
	p := MustPositionFromFEN("4k3/8/8/8/8/8/8/4Q2K w - - 0 1")
	next := play(t, p, "e1 e8")

	testutil.AssertEqual(t, next.Captured, chess.BKing)
	testutil.AssertTrue(t, next.Over(), "Over()")
	winner, ok := next.Winner()
	testutil.AssertTrue(t, ok, "Winner() ok")
	testutil.AssertEqual(t, winner, chess.White)

	_, err := next.Validate("h1 h2")
	testutil.AssertErrorIs(t, err, errors.ErrGameOver)

	if _, ok := p.Winner(); ok {
		t.Error("Winner() ok before the capture")
	}
}

func TestNewPositionFromBoard(t *testing.T) {
	p := NewPositionFromBoard(chess.KasparovEnd(), chess.Black)

	testutil.AssertEqual(t, p.Moved[chess.White], Moved{King: true, ARook: true, HRook: true})
	testutil.AssertEqual(t, p.Moved[chess.Black], Moved{King: true, ARook: true, HRook: true})
	testutil.AssertFalse(t, p.Check, "Check")

	start := NewPositionFromBoard(chess.NewInitialBoard(), chess.White)
	testutil.AssertEqual(t, start.FEN(), InitialFEN)
}
