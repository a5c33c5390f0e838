package notation

import (
	"fmt"
	"strings"

	"bitchess/chess"
)

// ParseMove reads a coordinate move: two squares, optionally separated by a
// single space, and an optional promotion letter (q, r, b or n).
func ParseMove(tok string) (from, to chess.Square, promo chess.Kind, err error) {
	s := strings.TrimSpace(tok)
	if (len(s) == 5 || len(s) == 6) && s[2] == ' ' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, fmt.Errorf("%w: move %q", ErrWrongSize, tok)
	}
	if from, err = ParseSquareIndex(s[:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if to, err = ParseSquareIndex(s[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, chess.NoKind, err
	}
	if len(s) == 5 {
		switch promo = chess.KindFromLetter(s[4]); promo {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		default:
			return chess.NoSquare, chess.NoSquare, chess.NoKind, fmt.Errorf("%w: promotion %q", ErrInvalidPiece, s[4:])
		}
	}
	return from, to, promo, nil
}

// FormatMove is the inverse of ParseMove.
func FormatMove(from, to chess.Square, promo chess.Kind) string {
	return chess.NewMove(from, to, promo).String()
}

// Apply parses each token and plays it on b in turn. It stops at the first
// token that fails to parse or is illegal.
func Apply(b chess.Board, tokens ...string) (chess.Board, error) {
	for _, tok := range tokens {
		from, to, promo, err := ParseMove(tok)
		if err != nil {
			return b, err
		}
		if b, err = b.Move(from, to, promo); err != nil {
			return b, err
		}
	}
	return b, nil
}
