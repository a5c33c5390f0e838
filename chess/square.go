package chess

import "bitchess/bitboard"

// Square is a board index, file + rank*8.
type Square int8

const NoSquare Square = -1

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare returns the square at (file, rank) without range checks.
func NewSquare(file, rank int) Square { return Square(bitboard.Index(file, rank)) }

// SquareAt returns the square at (file, rank) or a coordinate error.
func SquareAt(file, rank int) (Square, error) {
	if err := bitboard.Check(file, rank); err != nil {
		return NoSquare, err
	}
	return NewSquare(file, rank), nil
}

func (s Square) Valid() bool { return s >= A1 && s <= H8 }
func (s Square) File() int   { return int(s) % 8 }
func (s Square) Rank() int   { return int(s) / 8 }

// Bit returns the single-bit mask of s, or 0 for an invalid square.
func (s Square) Bit() uint64 {
	if !s.Valid() {
		return 0
	}
	return bitboard.SquareBit(int(s))
}

// String returns the coordinate name ("e4"), or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}
