package chess

import "math/rand"

// Key layout: 15*64 piece-square keys indexed by Piece code, 16 castling
// keys, 8 en passant file keys, then the side key.
const (
	zobristCastleBase    = 15 * 64
	zobristEnPassantBase = zobristCastleBase + 16
	zobristSideIndex     = zobristEnPassantBase + 8
)

var zobristKeys [zobristSideIndex + 1]uint64

func init() {
	// Fixed seed keeps hashes stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for i := range zobristKeys {
		zobristKeys[i] = rnd.Uint64()
	}
}

// Hash returns the Zobrist key of the position. The move counters do not
// contribute.
func (b Board) Hash() uint64 {
	var key uint64
	for c := White; c <= Black; c++ {
		for k := Pawn; k <= King; k++ {
			base := int(NewPiece(c, k)) * 64
			for bb := b.Pieces(k, c); bb != 0; bb &= bb - 1 {
				key ^= zobristKeys[base+int(lowest(bb))]
			}
		}
	}
	if b.turn == Black {
		key ^= zobristKeys[zobristSideIndex]
	}
	key ^= zobristKeys[zobristCastleBase+int(b.castling&AllCastling)]
	if b.enPassant != NoSquare {
		key ^= zobristKeys[zobristEnPassantBase+b.enPassant.File()]
	}
	return key
}
