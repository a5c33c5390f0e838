package bitboard

// firstBit[b] is the index of the lowest set bit of byte b. firstBit[0] is 8.
// Built once in init and never written again.
var firstBit [256]uint8

func init() {
	firstBit[0] = 8
	for b := 1; b < 256; b++ {
		var i uint8
		for b&(1<<i) == 0 {
			i++
		}
		firstBit[b] = i
	}
}

// LowestSquare returns the index of the lowest set bit of bb. ok is false for
// an empty mask.
func LowestSquare(bb uint64) (sq int, ok bool) {
	for i := 0; i < 8; i++ {
		if b := uint8(bb >> uint(i*8)); b != 0 {
			return i*8 + int(firstBit[b]), true
		}
	}
	return 0, false
}

// popLowest returns the lowest set square of bb and bb with that bit cleared.
func popLowest(bb uint64) (sq int, rest uint64, ok bool) {
	sq, ok = LowestSquare(bb)
	if !ok {
		return 0, bb, false
	}
	return sq, bb & (bb - 1), true
}

// Squares lists the set squares of bb in ascending order.
func Squares(bb uint64) []int {
	out := make([]int, 0, 8)
	for bb != 0 {
		sq, rest, _ := popLowest(bb)
		out = append(out, sq)
		bb = rest
	}
	return out
}

// Draw renders bb as an 8x8 grid with the eighth rank on top, for debugging.
func Draw(bb uint64) string {
	buf := make([]byte, 0, 8*17)
	for r := 7; r >= 0; r-- {
		buf = append(buf, byte('1'+r), ' ')
		for f := 0; f < 8; f++ {
			if bb&SquareBit(Index(f, r)) != 0 {
				buf = append(buf, 'x')
			} else {
				buf = append(buf, '.')
			}
			if f < 7 {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, "  a b c d e f g h\n"...)
	return string(buf)
}
