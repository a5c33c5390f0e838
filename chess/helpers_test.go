package chess_test

import (
	"testing"

	"bitchess/chess"
	"bitchess/notation"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func fromFEN(t testing.TB, fen string) chess.Board {
	t.Helper()
	b, err := notation.Board(fen)
	if err != nil {
		t.Fatalf("Board(%q): %v", fen, err)
	}
	return b
}

func play(t testing.TB, b chess.Board, tokens ...string) chess.Board {
	t.Helper()
	b, err := notation.Apply(b, tokens...)
	if err != nil {
		t.Fatalf("Apply(%v): %v", tokens, err)
	}
	return b
}

func place(t testing.TB, b *chess.Board, sq chess.Square, p chess.Piece) {
	t.Helper()
	if err := b.Set(sq, p); err != nil {
		t.Fatalf("Set(%v, %v): %v", sq, p, err)
	}
}
