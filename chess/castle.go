package chess

import "bitchess/bitboard"

// castleSide describes one castling move: the right it needs, where king and
// rook start and land, which squares must be empty and which the king must
// not stand on or cross while attacked.
type castleSide struct {
	right        CastlingRights
	king, kingTo Square
	rook, rookTo Square
	empty        uint64
	safe         uint64
}

var castles = [2][2]castleSide{
	White: {
		newCastleSide(WhiteKingside, E1, G1, H1, F1),
		newCastleSide(WhiteQueenside, E1, C1, A1, D1),
	},
	Black: {
		newCastleSide(BlackKingside, E8, G8, H8, F8),
		newCastleSide(BlackQueenside, E8, C8, A8, D8),
	},
}

func newCastleSide(right CastlingRights, king, kingTo, rook, rookTo Square) castleSide {
	return castleSide{
		right:  right,
		king:   king,
		kingTo: kingTo,
		rook:   rook,
		rookTo: rookTo,
		empty:  bitboard.Between(king.Bit(), rook.Bit()),
		safe:   king.Bit() | bitboard.Between(king.Bit(), kingTo.Bit()) | kingTo.Bit(),
	}
}

// castlingLost maps a square to the rights that vanish once anything moves
// from or to it.
var castlingLost = map[Square]CastlingRights{
	E1: WhiteKingside | WhiteQueenside,
	H1: WhiteKingside,
	A1: WhiteQueenside,
	E8: BlackKingside | BlackQueenside,
	H8: BlackKingside,
	A8: BlackQueenside,
}

// castleFor returns the castling move a king of color c makes by going from
// one square to the other, if any.
func castleFor(c Color, from, to Square) (castleSide, bool) {
	for _, cs := range castles[c] {
		if cs.king == from && cs.kingTo == to {
			return cs, true
		}
	}
	return castleSide{}, false
}

func (b Board) checkCastle(cs castleSide, c Color) error {
	if !b.castling.Has(cs.right) {
		return ErrCastleRights
	}
	if b.PieceAt(cs.king) != NewPiece(c, King) || b.PieceAt(cs.rook) != NewPiece(c, Rook) {
		return ErrCastleRights
	}
	if b.Occupied()&cs.empty != 0 {
		return ErrCastleBlocked
	}
	if b.Coverage(c.Other())&cs.safe != 0 {
		return ErrCastleAttacked
	}
	return nil
}
