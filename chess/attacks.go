package chess

import "bitchess/bitboard"

// forward shifts bb n ranks toward c's promotion rank.
func forward(bb uint64, c Color, n int) uint64 {
	if c == White {
		return bitboard.Up(bb, n)
	}
	return bitboard.Down(bb, n)
}

// PawnAttacks returns the squares diagonally ahead of every pawn in pawns.
func PawnAttacks(pawns uint64, c Color) uint64 {
	ahead := forward(pawns, c, 1)
	return bitboard.Left(ahead, 1) | bitboard.Right(ahead, 1)
}

// PawnPushes returns the empty squares the pawns can advance to: one step,
// or two from the home rank when both squares are empty.
func PawnPushes(pawns uint64, c Color, empty uint64) uint64 {
	home := bitboard.Rank2
	if c == Black {
		home = bitboard.Rank7
	}
	single := forward(pawns, c, 1) & empty
	double := forward(forward(pawns&home, c, 1)&empty, c, 1) & empty
	return single | double
}

func KnightAttacks(knights uint64) uint64 {
	one := bitboard.Left(knights, 1) | bitboard.Right(knights, 1)
	two := bitboard.Left(knights, 2) | bitboard.Right(knights, 2)
	return bitboard.Up(one, 2) | bitboard.Down(one, 2) | bitboard.Up(two, 1) | bitboard.Down(two, 1)
}

func KingAttacks(kings uint64) uint64 {
	row := kings | bitboard.Left(kings, 1) | bitboard.Right(kings, 1)
	return (row | bitboard.Up(row, 1) | bitboard.Down(row, 1)) &^ kings
}

type attackFunc func(origin, blockers uint64, c Color) uint64

var attackTable = [...]attackFunc{
	NoKind: func(uint64, uint64, Color) uint64 { return 0 },
	Pawn:   func(o, _ uint64, c Color) uint64 { return PawnAttacks(o, c) },
	Knight: func(o, _ uint64, _ Color) uint64 { return KnightAttacks(o) },
	Bishop: func(o, b uint64, _ Color) uint64 { return bitboard.BishopAttacks(o, b) },
	Rook:   func(o, b uint64, _ Color) uint64 { return bitboard.RookAttacks(o, b) },
	Queen:  func(o, b uint64, _ Color) uint64 { return bitboard.QueenAttacks(o, b) },
	King:   func(o, _ uint64, _ Color) uint64 { return KingAttacks(o) },
}

// Attacks returns the attack set of pieces of kind k and color c standing on
// origin. Origin may hold several pieces; the result is the union. Sliders
// stop on the first square of blockers, which is included.
func Attacks(k Kind, c Color, origin, blockers uint64) uint64 {
	if int(k) >= len(attackTable) {
		return 0
	}
	return attackTable[k](origin, blockers, c)
}

// Coverage returns every square c attacks that does not hold one of c's own
// pieces.
func (b Board) Coverage(c Color) uint64 {
	occ := b.Occupied()
	var out uint64
	for k := Pawn; k <= King; k++ {
		if pieces := b.Pieces(k, c); pieces != 0 {
			out |= Attacks(k, c, pieces, occ)
		}
	}
	return out &^ b.Colors(c)
}

// Attacked reports whether sq is in the coverage of by.
func (b Board) Attacked(sq Square, by Color) bool {
	return b.Coverage(by)&sq.Bit() != 0
}

// InCheck reports whether c's king is attacked. A side without a king is
// never in check.
func (b Board) InCheck(c Color) bool {
	king := b.Pieces(King, c)
	return king != 0 && b.Coverage(c.Other())&king != 0
}

// Destinations returns the squares the piece on sq may move to, ignoring
// whether the move would expose its own king. Castling targets are included
// when every castling condition holds. Empty squares give 0.
func (b Board) Destinations(sq Square) uint64 {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return 0
	}
	c := p.Color()
	own, enemy := b.Colors(c), b.Colors(c.Other())
	occ := own | enemy
	origin := sq.Bit()

	switch p.Kind() {
	case Pawn:
		targets := enemy
		if _, ok := b.enPassantVictim(c); ok {
			targets |= b.enPassant.Bit()
		}
		return PawnPushes(origin, c, ^occ) | PawnAttacks(origin, c)&targets
	case King:
		dests := KingAttacks(origin) &^ own
		for _, cs := range castles[c] {
			if cs.king == sq && b.checkCastle(cs, c) == nil {
				dests |= cs.kingTo.Bit()
			}
		}
		return dests
	}
	return Attacks(p.Kind(), c, origin, occ) &^ own
}
