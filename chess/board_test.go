package chess_test

import (
	"errors"
	"testing"

	"bitchess/bitboard"
	"bitchess/chess"
	"bitchess/notation"
)

const startDiagram = `8 | r n b q k b n r
7 | p p p p p p p p
6 | . . . . . . . .
5 | . . . . . . . .
4 | . . . . . . . .
3 | . . . . . . . .
2 | P P P P P P P P
1 | R N B Q K B N R
  +----------------
    a b c d e f g h
`

func TestRenderStart(t *testing.T) {
	if got := chess.New().String(); got != startDiagram {
		t.Fatalf("New().String():\n%s", got)
	}
	d, err := notation.ParseFEN(notation.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	b, err := chess.FromDescription(d)
	if err != nil {
		t.Fatalf("FromDescription: %v", err)
	}
	if got := b.String(); got != startDiagram {
		t.Fatalf("FromDescription(start).String():\n%s", got)
	}
}

func TestEmpty(t *testing.T) {
	b := chess.Empty()
	if b.Occupied() != 0 || b.Turn() != chess.White || b.Castling() != chess.NoCastling {
		t.Fatalf("unexpected empty board state")
	}
	if b.EnPassant() != chess.NoSquare || b.Fullmove() != 1 || b.Halfmove() != 0 {
		t.Fatalf("unexpected empty board counters")
	}
	if b.King(chess.White) != chess.NoSquare {
		t.Fatalf("empty board has a king")
	}
}

func TestStartMasks(t *testing.T) {
	b := chess.New()
	if b.Colors(chess.White) != bitboard.Rank1|bitboard.Rank2 || b.Colors(chess.Black) != bitboard.Rank7|bitboard.Rank8 {
		t.Fatalf("color masks wrong")
	}
	if b.Kinds(chess.Pawn) != bitboard.Rank2|bitboard.Rank7 {
		t.Fatalf("pawn mask wrong:\n%s", bitboard.Draw(b.Kinds(chess.Pawn)))
	}
	if b.King(chess.White) != chess.E1 || b.King(chess.Black) != chess.E8 {
		t.Fatalf("kings on %v and %v", b.King(chess.White), b.King(chess.Black))
	}
	if b.Pieces(chess.Queen, chess.Black) != chess.D8.Bit() {
		t.Fatalf("black queen mask wrong")
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestPieceAtCoord(t *testing.T) {
	b := chess.New()
	p, err := b.PieceAtCoord(4, 0)
	if err != nil || p != chess.WhiteKing {
		t.Fatalf("PieceAtCoord(4,0) = %v, %v", p, err)
	}
	p, err = b.PieceAtCoord(3, 4)
	if err != nil || p != chess.NoPiece {
		t.Fatalf("PieceAtCoord(3,4) = %v, %v", p, err)
	}
	if _, err := b.PieceAtCoord(8, 0); !errors.Is(err, bitboard.ErrInvalidFile) {
		t.Fatalf("file 8: err = %v", err)
	}
	if _, err := b.PieceAtCoord(0, -1); !errors.Is(err, bitboard.ErrInvalidRank) {
		t.Fatalf("rank -1: err = %v", err)
	}
}

func TestSetReplacesAndClears(t *testing.T) {
	b := chess.New()
	if err := b.Set(chess.E2, chess.BlackQueen); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if b.PieceAt(chess.E2) != chess.BlackQueen {
		t.Fatalf("Set did not replace the pawn")
	}
	if b.Pieces(chess.Pawn, chess.White)&chess.E2.Bit() != 0 || b.Colors(chess.White)&chess.E2.Bit() != 0 {
		t.Fatalf("old piece left bits behind")
	}
	if err := b.Validate(); err != nil {
		t.Fatalf("Validate after Set: %v", err)
	}
	if err := b.Clear(chess.E2); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if b.PieceAt(chess.E2) != chess.NoPiece || b.Occupied()&chess.E2.Bit() != 0 {
		t.Fatalf("Clear left the square occupied")
	}
	if err := b.SetCoord(0, 8, chess.WhitePawn); !errors.Is(err, bitboard.ErrInvalidRank) {
		t.Fatalf("SetCoord off board: err = %v", err)
	}
	if err := b.Set(chess.Square(70), chess.WhitePawn); !errors.Is(err, chess.ErrInvalidSquare) {
		t.Fatalf("Set off board: err = %v", err)
	}
	if err := b.Set(chess.E4, chess.Piece(7)); err == nil {
		t.Fatalf("Set accepted an invalid piece code")
	}
}

func TestFromDescriptionRejects(t *testing.T) {
	d, err := notation.ParseFEN(notation.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	bad := d
	bad.EnPassant = chess.E4
	if _, err := chess.FromDescription(bad); !errors.Is(err, chess.ErrInvalidDescription) {
		t.Fatalf("en passant e4: err = %v", err)
	}
	bad = d
	bad.EnPassant = chess.E3
	if _, err := chess.FromDescription(bad); !errors.Is(err, chess.ErrInvalidDescription) {
		t.Fatalf("en passant e3 with white to move: err = %v", err)
	}
	bad = d
	bad.EnPassant = chess.E6
	if _, err := chess.FromDescription(bad); !errors.Is(err, chess.ErrInvalidDescription) {
		t.Fatalf("en passant e6 without a pawn on e5: err = %v", err)
	}
	bad = d
	bad.Halfmove = -1
	if _, err := chess.FromDescription(bad); !errors.Is(err, chess.ErrInvalidDescription) {
		t.Fatalf("negative halfmove: err = %v", err)
	}
	bad = d
	bad.Castling = 0x30
	if _, err := chess.FromDescription(bad); !errors.Is(err, chess.ErrInvalidDescription) {
		t.Fatalf("unknown castling bits: err = %v", err)
	}
}

func TestEnPassantTargetNeedsEnemyPawn(t *testing.T) {
	cases := []string{
		"4k3/8/8/8/8/8/3PP3/4K3 w - e3 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - e6 0 1",
		"4k3/8/4p3/4P3/8/8/8/4K3 w - e6 0 1",
		"4k3/3pp3/8/8/8/8/8/4K3 b - e6 0 1",
	}
	for _, fen := range cases {
		if _, err := notation.Board(fen); err == nil {
			t.Fatalf("Board(%q) accepted an impossible en passant target", fen)
		}
	}
}

func TestPieceEncoding(t *testing.T) {
	for _, c := range []chess.Color{chess.White, chess.Black} {
		for k := chess.Pawn; k <= chess.King; k++ {
			p := chess.NewPiece(c, k)
			if p.Kind() != k || p.Color() != c {
				t.Fatalf("NewPiece(%v,%v) decodes as %v %v", c, k, p.Color(), p.Kind())
			}
			if chess.KindFromLetter(p.Letter()) != k {
				t.Fatalf("letter %q does not map back to %v", p.Letter(), k)
			}
		}
	}
	if chess.NewPiece(chess.Black, chess.NoKind) != chess.NoPiece {
		t.Fatalf("NoKind must give NoPiece")
	}
	if chess.WhiteKnight.Letter() != 'N' || chess.BlackKnight.Letter() != 'n' {
		t.Fatalf("letters: %c %c", chess.WhiteKnight.Letter(), chess.BlackKnight.Letter())
	}
	if chess.AllCastling.String() != "KQkq" || chess.NoCastling.String() != "-" || (chess.WhiteQueenside | chess.BlackKingside).String() != "Qk" {
		t.Fatalf("castling strings")
	}
}
