package chess

import "bitchess/bitboard"

// Move packs a from square, a to square and a promotion kind. The from
// square occupies the high bits so that sorting moves numerically orders
// them by origin, then destination.
type Move uint16

const NoMove Move = 0

const (
	moveToShift   = 3
	moveFromShift = 9
)

func NewMove(from, to Square, promo Kind) Move {
	return Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(promo&7)
}

func (m Move) From() Square    { return Square(m >> moveFromShift & 63) }
func (m Move) To() Square      { return Square(m >> moveToShift & 63) }
func (m Move) Promotion() Kind { return Kind(m & 7) }

// String returns the move in coordinate form, "e2e4" or "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if p := m.Promotion(); p != NoKind {
		s += string(p.Letter())
	}
	return s
}

// lowest returns the least significant square of a non-empty mask.
func lowest(bb uint64) Square {
	sq, _ := bitboard.LowestSquare(bb)
	return Square(sq)
}
