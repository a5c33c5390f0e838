package chess

import "golang.org/x/exp/slices"

var promotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// Successor is a legal move together with the board it produces.
type Successor struct {
	Move  Move
	Board Board
}

// Successors appends every legal move of the side to move, with its
// resulting board, to dst. Moves come out ordered by origin square and then
// destination square.
func (b Board) Successors(dst []Successor) []Successor {
	for own := b.Colors(b.turn); own != 0; own &= own - 1 {
		from := lowest(own)
		p := b.PieceAt(from)
		for dests := b.Destinations(from); dests != 0; dests &= dests - 1 {
			to := lowest(dests)
			if !promotes(p, to) {
				if next, err := b.play(from, to, NoKind); err == nil {
					dst = append(dst, Successor{NewMove(from, to, NoKind), next})
				}
				continue
			}
			for _, k := range promotionKinds {
				if next, err := b.play(from, to, k); err == nil {
					dst = append(dst, Successor{NewMove(from, to, k), next})
				}
			}
		}
	}
	return dst
}

// LegalMoves returns every legal move of the side to move in ascending
// numeric order.
func (b Board) LegalMoves() []Move {
	succ := b.Successors(make([]Successor, 0, 64))
	moves := make([]Move, len(succ))
	for i, s := range succ {
		moves[i] = s.Move
	}
	slices.Sort(moves)
	return moves
}

// HasLegalMoves stops at the first legal move found.
func (b Board) HasLegalMoves() bool {
	for own := b.Colors(b.turn); own != 0; own &= own - 1 {
		if b.LegalDestinations(lowest(own)) != 0 {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func (b Board) InCheckmate() bool {
	return b.InCheck(b.turn) && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b Board) InStalemate() bool {
	return !b.InCheck(b.turn) && !b.HasLegalMoves()
}

// Status summarizes the position from the point of view of the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

func (b Board) Status() Status {
	check, moves := b.InCheck(b.turn), b.HasLegalMoves()
	switch {
	case moves && check:
		return Check
	case moves:
		return Ongoing
	case check:
		return Checkmate
	}
	return Stalemate
}
