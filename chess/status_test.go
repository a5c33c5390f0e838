package chess_test

import (
	"testing"

	"bitchess/chess"
)

func TestFoolsMate(t *testing.T) {
	b := play(t, chess.New(), "f2f3", "e7e5", "g2g4", "d8h4")
	if !b.InCheck(chess.White) {
		t.Fatalf("expected white in check")
	}
	if !b.InCheckmate() || b.InStalemate() {
		t.Fatalf("expected checkmate, not stalemate")
	}
	if moves := b.LegalMoves(); len(moves) != 0 {
		t.Fatalf("mated side has legal moves %v", moves)
	}
	if b.Status() != chess.Checkmate {
		t.Fatalf("Status = %v", b.Status())
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want chess.Status
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chess.Ongoing},
		{"back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Checkmate},
		{"back rank escape", "3R2k1/5pp1/7p/8/8/8/8/6K1 b - - 0 1", chess.Check},
		{"interposition", "3R2k1/5ppp/8/8/8/8/4r3/6K1 b - - 0 1", chess.Check},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		{"corner stalemate", "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		{"smothered", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", chess.Checkmate},
	}
	for _, c := range cases {
		b := fromFEN(t, c.fen)
		if s := b.Status(); s != c.want {
			t.Fatalf("%s: Status = %v, want %v", c.name, s, c.want)
		}
		mated := c.want == chess.Checkmate
		stale := c.want == chess.Stalemate
		if b.InCheckmate() != mated || b.InStalemate() != stale {
			t.Fatalf("%s: InCheckmate %v InStalemate %v", c.name, b.InCheckmate(), b.InStalemate())
		}
		if b.HasLegalMoves() == (mated || stale) {
			t.Fatalf("%s: HasLegalMoves disagrees with status", c.name)
		}
		if got := len(b.LegalMoves()) > 0; got != b.HasLegalMoves() {
			t.Fatalf("%s: LegalMoves and HasLegalMoves disagree", c.name)
		}
	}
}

func TestNoKingNoCheck(t *testing.T) {
	b := chess.Empty()
	if err := b.Set(chess.D4, chess.BlackQueen); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if b.InCheck(chess.White) {
		t.Fatalf("a side without a king is never in check")
	}
	if b.Status() != chess.Stalemate {
		t.Fatalf("no white pieces: Status = %v", b.Status())
	}
}
