package bitboard

// File masks
const (
	FileA uint64 = 0x0101010101010101
	FileB uint64 = FileA << 1
	FileC uint64 = FileA << 2
	FileD uint64 = FileA << 3
	FileE uint64 = FileA << 4
	FileF uint64 = FileA << 5
	FileG uint64 = FileA << 6
	FileH uint64 = FileA << 7
)

// Rank masks
const (
	Rank1 uint64 = 0x00000000000000FF
	Rank2 uint64 = Rank1 << 8
	Rank3 uint64 = Rank1 << 16
	Rank4 uint64 = Rank1 << 24
	Rank5 uint64 = Rank1 << 32
	Rank6 uint64 = Rank1 << 40
	Rank7 uint64 = Rank1 << 48
	Rank8 uint64 = Rank1 << 56
)

const (
	Empty uint64 = 0
	Full  uint64 = ^Empty

	NotFileA uint64 = ^FileA
	NotFileH uint64 = ^FileH
)

// File returns the mask of file f (0 = a). Out-of-range files give 0.
func File(f int) uint64 {
	if f < 0 || f > 7 {
		return 0
	}
	return FileA << uint(f)
}

// Rank returns the mask of rank r (0 = first rank). Out-of-range ranks give 0.
func Rank(r int) uint64 {
	if r < 0 || r > 7 {
		return 0
	}
	return Rank1 << uint(r*8)
}
