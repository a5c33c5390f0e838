package bitboard

// maxRay is the longest ray on an 8x8 board.
const maxRay = 7

// Slide returns every square reached by extending rays from each bit of
// origin in direction dir. A ray stops on the first square set in blockers,
// which is itself included. The origin squares are not part of the result.
//
// The loop always runs maxRay times; once a frontier is blocked or has left
// the board it is simply empty.
func Slide(dir Direction, origin, blockers uint64) uint64 {
	var out uint64
	frontier := origin
	for i := 0; i < maxRay; i++ {
		frontier = Shift(frontier, dir, 1)
		out |= frontier
		frontier &^= blockers
	}
	return out
}

// RookAttacks is the union of the four orthogonal slides.
func RookAttacks(origin, blockers uint64) uint64 {
	var out uint64
	for _, d := range Orthogonals {
		out |= Slide(d, origin, blockers)
	}
	return out
}

// BishopAttacks is the union of the four diagonal slides.
func BishopAttacks(origin, blockers uint64) uint64 {
	var out uint64
	for _, d := range Diagonals {
		out |= Slide(d, origin, blockers)
	}
	return out
}

// QueenAttacks is the union of all eight slides.
func QueenAttacks(origin, blockers uint64) uint64 {
	return RookAttacks(origin, blockers) | BishopAttacks(origin, blockers)
}

// ray returns the squares from origin to the board edge in dir on an empty
// board.
func ray(dir Direction, origin uint64) uint64 { return Slide(dir, origin, 0) }

// Between returns the squares strictly between two single-bit masks when
// they share a rank, file or diagonal, and 0 otherwise.
func Between(a, b uint64) uint64 {
	for d := North; d <= SouthWest; d++ {
		if ray(d, a)&b != 0 {
			return ray(d, a) & ray(d.Opposite(), b)
		}
	}
	return 0
}
