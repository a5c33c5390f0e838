// Package notation reads and writes the textual forms of positions and
// moves: coordinate squares ("e4"), coordinate moves ("e2e4", "e7e8q") and
// FEN.
package notation

import (
	"errors"
	"fmt"

	"bitchess/chess"
)

var (
	ErrWrongSize    = errors.New("notation: token has the wrong length")
	ErrInvalidFile  = errors.New("notation: file must be a letter a-h")
	ErrInvalidRank  = errors.New("notation: rank must be a digit 1-8")
	ErrInvalidPiece = errors.New("notation: unknown piece letter")
	ErrInvalidFEN   = errors.New("notation: invalid FEN")
)

// ParseSquare converts a two-character token such as "e4" to zero-based
// file and rank.
func ParseSquare(tok string) (file, rank int, err error) {
	if len(tok) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrWrongSize, tok)
	}
	f, r := tok[0], tok[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidFile, tok)
	}
	if r < '1' || r > '8' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRank, tok)
	}
	return int(f - 'a'), int(r - '1'), nil
}

// ParseSquareIndex is ParseSquare returning a chess.Square.
func ParseSquareIndex(tok string) (chess.Square, error) {
	file, rank, err := ParseSquare(tok)
	if err != nil {
		return chess.NoSquare, err
	}
	return chess.NewSquare(file, rank), nil
}
