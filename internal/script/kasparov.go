package script

import "github.com/lgbarn/console-chess-go/internal/chess"

// kp builds one ply of the Kasparov game with its expected outcome.
func kp(input string, promote chess.Kind, whiteNext, check bool, captured chess.Piece) Ply {
	return Ply{
		Input:   input,
		Promote: promote,
		Expect:  &Outcome{WhiteNext: whiteNext, Check: check, Captured: captured},
	}
}

// KasparovWorld returns Kasparov versus the World (1999), all 62 moves, with
// the captured piece and check state expected after every ply and the final
// board it must reach.
func KasparovWorld() Script {
	return Script{
		Name:  "Kasparov vs the World",
		Plies: kasparovPlies(),
		End:   chess.KasparovEnd(),
	}
}

func kasparovPlies() []Ply {
	return []Ply{
		kp("e2 e4", chess.None, false, false, chess.Empty), // 1
		kp("c7 c5", chess.None, true, false, chess.Empty),
		kp("g1 f3", chess.None, false, false, chess.Empty), // 2
		kp("d7 d6", chess.None, true, false, chess.Empty),
		kp("f1 b5", chess.None, false, true, chess.Empty), // 3
		kp("c8 d7", chess.None, true, false, chess.Empty),
		kp("b5 d7", chess.None, false, true, chess.BBishop), // 4
		kp("d8 d7", chess.None, true, false, chess.WBishop),
		kp("c2 c4", chess.None, false, false, chess.Empty), // 5
		kp("b8 c6", chess.None, true, false, chess.Empty),
		kp("b1 c3", chess.None, false, false, chess.Empty), // 6
		kp("g8 f6", chess.None, true, false, chess.Empty),
		kp("e1 g1", chess.None, false, false, chess.Empty), // 7
		kp("g7 g6", chess.None, true, false, chess.Empty),
		kp("d2 d4", chess.None, false, false, chess.Empty), // 8
		kp("c5 d4", chess.None, true, false, chess.WPawn),
		kp("f3 d4", chess.None, false, false, chess.BPawn), // 9
		kp("f8 g7", chess.None, true, false, chess.Empty),
		kp("d4 e2", chess.None, false, false, chess.Empty), // 10
		kp("d7 e6", chess.None, true, false, chess.Empty),
		kp("c3 d5", chess.None, false, false, chess.Empty), // 11
		kp("e6 e4", chess.None, true, false, chess.WPawn),
		kp("d5 c7", chess.None, false, true, chess.Empty), // 12
		kp("e8 d7", chess.None, true, false, chess.Empty),
		kp("c7 a8", chess.None, false, false, chess.BRook), // 13
		kp("e4 c4", chess.None, true, false, chess.WPawn),
		kp("a8 b6", chess.None, false, true, chess.Empty), // 14
		kp("a7 b6", chess.None, true, false, chess.WKnight),
		kp("e2 c3", chess.None, false, false, chess.Empty), // 15
		kp("h8 a8", chess.None, true, false, chess.Empty),
		kp("a2 a4", chess.None, false, false, chess.Empty), // 16
		kp("f6 e4", chess.None, true, false, chess.Empty),
		kp("c3 e4", chess.None, false, false, chess.BKnight), // 17
		kp("c4 e4", chess.None, true, false, chess.WKnight),
		kp("d1 b3", chess.None, false, false, chess.Empty), // 18
		kp("f7 f5", chess.None, true, false, chess.Empty),
		kp("c1 g5", chess.None, false, false, chess.Empty), // 19
		kp("e4 b4", chess.None, true, false, chess.Empty),
		kp("b3 f7", chess.None, false, false, chess.Empty), // 20
		kp("g7 e5", chess.None, true, false, chess.Empty),
		kp("h2 h3", chess.None, false, false, chess.Empty), // 21
		kp("a8 a4", chess.None, true, false, chess.WPawn),
		kp("a1 a4", chess.None, false, false, chess.BRook), // 22
		kp("b4 a4", chess.None, true, false, chess.WRook),
		kp("f7 h7", chess.None, false, false, chess.BPawn), // 23
		kp("e5 b2", chess.None, true, false, chess.WPawn),
		kp("h7 g6", chess.None, false, false, chess.BPawn), // 24
		kp("a4 e4", chess.None, true, false, chess.Empty),
		kp("g6 f7", chess.None, false, false, chess.Empty), // 25
		kp("b2 d4", chess.None, true, false, chess.Empty),
		kp("f7 b3", chess.None, false, false, chess.Empty), // 26
		kp("f5 f4", chess.None, true, false, chess.Empty),
		kp("b3 f7", chess.None, false, false, chess.Empty), // 27
		kp("d4 e5", chess.None, true, false, chess.Empty),
		kp("h3 h4", chess.None, false, false, chess.Empty), // 28
		kp("b6 b5", chess.None, true, false, chess.Empty),
		kp("h4 h5", chess.None, false, false, chess.Empty), // 29
		kp("e4 c4", chess.None, true, false, chess.Empty),
		kp("f7 f5", chess.None, false, true, chess.Empty), // 30
		kp("c4 e6", chess.None, true, false, chess.Empty),
		kp("f5 e6", chess.None, false, true, chess.BQueen), // 31
		kp("d7 e6", chess.None, true, false, chess.WQueen),
		kp("g2 g3", chess.None, false, false, chess.Empty), // 32
		kp("f4 g3", chess.None, true, false, chess.WPawn),
		kp("f2 g3", chess.None, false, false, chess.BPawn), // 33
		kp("b5 b4", chess.None, true, false, chess.Empty),
		kp("g5 f4", chess.None, false, false, chess.Empty), // 34
		kp("e5 d4", chess.None, true, true, chess.Empty),
		kp("g1 h1", chess.None, false, false, chess.Empty), // 35
		kp("b4 b3", chess.None, true, false, chess.Empty),
		kp("g3 g4", chess.None, false, false, chess.Empty), // 36
		kp("e6 d5", chess.None, true, false, chess.Empty),
		kp("g4 g5", chess.None, false, false, chess.Empty), // 37
		kp("e7 e6", chess.None, true, false, chess.Empty),
		kp("h5 h6", chess.None, false, false, chess.Empty), // 38
		kp("c6 e7", chess.None, true, false, chess.Empty),
		kp("f1 d1", chess.None, false, false, chess.Empty), // 39
		kp("e6 e5", chess.None, true, false, chess.Empty),
		kp("f4 e3", chess.None, false, false, chess.Empty), // 40
		kp("d5 c4", chess.None, true, false, chess.Empty),
		kp("e3 d4", chess.None, false, false, chess.BBishop), // 41
		kp("e5 d4", chess.None, true, false, chess.WBishop),
		kp("h1 g2", chess.None, false, false, chess.Empty), // 42
		kp("b3 b2", chess.None, true, false, chess.Empty),
		kp("g2 f3", chess.None, false, false, chess.Empty), // 43
		kp("c4 c3", chess.None, true, false, chess.Empty),
		kp("h6 h7", chess.None, false, false, chess.Empty), // 44
		kp("e7 g6", chess.None, true, false, chess.Empty),
		kp("f3 e4", chess.None, false, false, chess.Empty), // 45
		kp("c3 c2", chess.None, true, false, chess.Empty),
		kp("d1 h1", chess.None, false, false, chess.Empty), // 46
		kp("d4 d3", chess.None, true, false, chess.Empty),
		kp("e4 f5", chess.None, false, false, chess.Empty), // 47
		kp("b2 b1", chess.Queen, true, false, chess.Empty),
		kp("h1 b1", chess.None, false, false, chess.BQueen), // 48
		kp("c2 b1", chess.None, true, false, chess.WRook),
		kp("f5 g6", chess.None, false, false, chess.BKnight), // 49
		kp("d3 d2", chess.None, true, false, chess.Empty),
		kp("h7 h8", chess.Queen, false, false, chess.Empty), // 50
		kp("d2 d1", chess.Queen, true, false, chess.Empty),
		kp("h8 h7", chess.None, false, false, chess.Empty), // 51
		kp("b7 b5", chess.None, true, false, chess.Empty),
		kp("g6 f6", chess.None, false, true, chess.Empty), // 52
		kp("b1 b2", chess.None, true, false, chess.Empty),
		kp("h7 h2", chess.None, false, true, chess.Empty), // 53
		kp("b2 a1", chess.None, true, false, chess.Empty),
		kp("h2 f4", chess.None, false, false, chess.Empty), // 54
		kp("b5 b4", chess.None, true, false, chess.Empty),
		kp("f4 b4", chess.None, false, false, chess.BPawn), // 55
		kp("d1 f3", chess.None, true, true, chess.Empty),
		kp("f6 g7", chess.None, false, false, chess.Empty), // 56
		kp("d6 d5", chess.None, true, false, chess.Empty),
		kp("b4 d4", chess.None, false, true, chess.Empty), // 57
		kp("a1 b1", chess.None, true, false, chess.Empty),
		kp("g5 g6", chess.None, false, false, chess.Empty), // 58
		kp("f3 e4", chess.None, true, false, chess.Empty),
		kp("d4 g1", chess.None, false, true, chess.Empty), // 59
		kp("b1 b2", chess.None, true, false, chess.Empty),
		kp("g1 f2", chess.None, false, true, chess.Empty), // 60
		kp("b2 c1", chess.None, true, false, chess.Empty),
		kp("g7 f6", chess.None, false, false, chess.Empty), // 61
		kp("d5 d4", chess.None, true, false, chess.Empty),
		kp("g6 g7", chess.None, false, false, chess.Empty), // 62
	}
}
