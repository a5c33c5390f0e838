package bitboard

// Direction is one of the eight compass directions. North points toward the
// eighth rank and East toward the h-file.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

// Orthogonals and Diagonals list the rook and bishop directions.
var (
	Orthogonals = [4]Direction{North, South, East, West}
	Diagonals   = [4]Direction{NorthEast, NorthWest, SouthEast, SouthWest}
)

var directionNames = [...]string{"north", "south", "east", "west", "northeast", "northwest", "southeast", "southwest"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "invalid"
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return NorthEast
	}
}

// Up moves every bit n ranks toward the eighth rank. Bits pushed past the
// board are dropped.
func Up(bb uint64, n int) uint64 {
	if n < 0 {
		return Down(bb, -n)
	}
	return Shl(bb, n*8)
}

// Down moves every bit n ranks toward the first rank.
func Down(bb uint64, n int) uint64 {
	if n < 0 {
		return Up(bb, -n)
	}
	return Shr(bb, n*8)
}

// Right moves every bit n files toward the h-file. Bits that would wrap onto
// the a-file of the next rank are cleared at each step.
func Right(bb uint64, n int) uint64 {
	if n < 0 {
		return Left(bb, -n)
	}
	if n > 7 {
		return 0
	}
	for i := 0; i < n; i++ {
		bb = (bb << 1) & NotFileA
	}
	return bb
}

// Left moves every bit n files toward the a-file.
func Left(bb uint64, n int) uint64 {
	if n < 0 {
		return Right(bb, -n)
	}
	if n > 7 {
		return 0
	}
	for i := 0; i < n; i++ {
		bb = (bb >> 1) & NotFileH
	}
	return bb
}

func UpRight(bb uint64, n int) uint64   { return Up(Right(bb, n), n) }
func UpLeft(bb uint64, n int) uint64    { return Up(Left(bb, n), n) }
func DownRight(bb uint64, n int) uint64 { return Down(Right(bb, n), n) }
func DownLeft(bb uint64, n int) uint64  { return Down(Left(bb, n), n) }

// Shift moves every bit of bb n steps in direction dir. A distance of 0 is the
// identity.
func Shift(bb uint64, dir Direction, n int) uint64 {
	switch dir {
	case North:
		return Up(bb, n)
	case South:
		return Down(bb, n)
	case East:
		return Right(bb, n)
	case West:
		return Left(bb, n)
	case NorthEast:
		return UpRight(bb, n)
	case NorthWest:
		return UpLeft(bb, n)
	case SouthEast:
		return DownRight(bb, n)
	case SouthWest:
		return DownLeft(bb, n)
	}
	return 0
}
