// Package bitboard provides the 64-bit mask primitives the chess package is
// built on: single-bit addressing, file and rank masks, wrap-safe directional
// shifts and the sliding-ray generator.
//
// Bit i of a mask is square i, where i = file + rank*8 (a1 = 0, h1 = 7,
// a8 = 56, h8 = 63).
package bitboard

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFile = errors.New("bitboard: file out of range 0-7")
	ErrInvalidRank = errors.New("bitboard: rank out of range 0-7")
)

// Check reports whether file and rank address a square on the board.
func Check(file, rank int) error {
	if file < 0 || file > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidFile, file)
	}
	if rank < 0 || rank > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	return nil
}

// Index returns the linear index of (file, rank). Coordinates are not checked.
func Index(file, rank int) int { return file + rank*8 }

// SquareBit returns a mask with only bit sq set, or 0 when sq is off the board.
func SquareBit(sq int) uint64 {
	if sq < 0 {
		return 0
	}
	return Shl(1, sq)
}

// Bit returns a mask with exactly the bit for (file, rank) set.
func Bit(file, rank int) (uint64, error) {
	if err := Check(file, rank); err != nil {
		return 0, err
	}
	return Shl(1, Index(file, rank)), nil
}

// Get reports whether the bit for (file, rank) is set in bb.
func Get(bb uint64, file, rank int) (bool, error) {
	bit, err := Bit(file, rank)
	if err != nil {
		return false, err
	}
	return bb&bit != 0, nil
}

// Set returns bb with the bit for (file, rank) set.
func Set(bb uint64, file, rank int) (uint64, error) {
	bit, err := Bit(file, rank)
	if err != nil {
		return bb, err
	}
	return bb | bit, nil
}

// Unset returns bb with the bit for (file, rank) cleared.
func Unset(bb uint64, file, rank int) (uint64, error) {
	bit, err := Bit(file, rank)
	if err != nil {
		return bb, err
	}
	return bb &^ bit, nil
}

// Toggle returns bb with the bit for (file, rank) flipped.
func Toggle(bb uint64, file, rank int) (uint64, error) {
	bit, err := Bit(file, rank)
	if err != nil {
		return bb, err
	}
	return bb ^ bit, nil
}

// Shl shifts x left by n. Counts of 64 or more yield 0 and a negative count
// shifts right instead.
func Shl(x uint64, n int) uint64 {
	if n < 0 {
		return Shr(x, -n)
	}
	if n >= 64 {
		return 0
	}
	return x << uint(n)
}

// Shr shifts x right by n with the same conventions as Shl.
func Shr(x uint64, n int) uint64 {
	if n < 0 {
		return Shl(x, -n)
	}
	if n >= 64 {
		return 0
	}
	return x >> uint(n)
}
