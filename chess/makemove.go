package chess

// Move plays from→to for the side to move and returns the resulting board.
// promo selects the promotion piece; NoKind promotes to a queen. On error
// the receiver is returned unchanged along with a *MoveError.
func (b Board) Move(from, to Square, promo Kind) (Board, error) {
	next, err := b.play(from, to, promo)
	if err != nil {
		return b, &MoveError{From: from, To: to, Err: err}
	}
	return next, nil
}

// Play is Move for a packed move.
func (b Board) Play(m Move) (Board, error) {
	return b.Move(m.From(), m.To(), m.Promotion())
}

// Legal reports whether from→to is a legal move for the side to move.
func (b Board) Legal(from, to Square) bool {
	_, err := b.play(from, to, NoKind)
	return err == nil
}

// LegalDestinations returns the squares the piece on sq can legally reach.
// It is empty unless the piece belongs to the side to move.
func (b Board) LegalDestinations(sq Square) uint64 {
	var out uint64
	for dests := b.Destinations(sq); dests != 0; dests &= dests - 1 {
		to := lowest(dests)
		if _, err := b.play(sq, to, NoKind); err == nil {
			out |= to.Bit()
		}
	}
	return out
}

func (b Board) play(from, to Square, promo Kind) (Board, error) {
	if !from.Valid() || !to.Valid() {
		return b, ErrInvalidSquare
	}
	p := b.PieceAt(from)
	if p == NoPiece {
		return b, ErrSourceEmpty
	}
	c := p.Color()
	if c != b.turn {
		return b, ErrWrongTurn
	}
	if b.Colors(c)&to.Bit() != 0 {
		return b, ErrOwnPiece
	}

	if p.Kind() == King {
		if cs, ok := castleFor(c, from, to); ok {
			if err := b.checkCastle(cs, c); err != nil {
				return b, err
			}
			if promo != NoKind {
				return b, ErrInvalidPromotion
			}
			// The king's path is already known to be safe.
			return b.apply(from, to, p, NoKind), nil
		}
	}

	if b.Destinations(from)&to.Bit() == 0 {
		return b, ErrUnreachable
	}
	promo, err := promotion(p, to, promo)
	if err != nil {
		return b, err
	}
	next := b.apply(from, to, p, promo)
	if next.InCheck(c) {
		return b, ErrKingInCheck
	}
	return next, nil
}

// enPassantRank is the rank index of a target c can capture onto.
func enPassantRank(c Color) int {
	if c == White {
		return 5
	}
	return 2
}

// enPassantVictim returns the square of the pawn an en passant capture by c
// removes. It fails unless c is to move and an enemy pawn stands behind the
// target.
func (b Board) enPassantVictim(c Color) (Square, bool) {
	if b.enPassant == NoSquare || c != b.turn || b.enPassant.Rank() != enPassantRank(c) {
		return NoSquare, false
	}
	victim := b.enPassant - 8
	if c == Black {
		victim = b.enPassant + 8
	}
	if b.PieceAt(victim) != NewPiece(c.Other(), Pawn) {
		return NoSquare, false
	}
	return victim, true
}

// promotes reports whether a pawn arriving on to must promote.
func promotes(p Piece, to Square) bool {
	if p.Kind() != Pawn {
		return false
	}
	if p.Color() == White {
		return to.Rank() == 7
	}
	return to.Rank() == 0
}

func promotion(p Piece, to Square, promo Kind) (Kind, error) {
	if !promotes(p, to) {
		if promo != NoKind {
			return NoKind, ErrInvalidPromotion
		}
		return NoKind, nil
	}
	switch promo {
	case NoKind:
		return Queen, nil
	case Knight, Bishop, Rook, Queen:
		return promo, nil
	}
	return NoKind, ErrInvalidPromotion
}

// apply moves p from→to with no legality checks and updates the game state.
func (b Board) apply(from, to Square, p Piece, promo Kind) Board {
	c := p.Color()
	fromBit, toBit := from.Bit(), to.Bit()
	capture := b.Occupied()&toBit != 0

	b.remove(fromBit)
	b.remove(toBit)

	if p.Kind() == Pawn && to == b.enPassant {
		if victim, ok := b.enPassantVictim(c); ok {
			b.remove(victim.Bit())
			capture = true
		}
	}

	kind := p.Kind()
	if promo != NoKind {
		kind = promo
	}
	b.place(toBit, c, kind)

	if kind == King {
		if cs, ok := castleFor(c, from, to); ok {
			b.remove(cs.rook.Bit())
			b.place(cs.rookTo.Bit(), c, Rook)
		}
	}

	b.castling &^= castlingLost[from] | castlingLost[to]

	b.enPassant = NoSquare
	if p.Kind() == Pawn && (to-from == 16 || from-to == 16) {
		b.enPassant = (from + to) / 2
	}

	if p.Kind() == Pawn || capture {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if c == Black {
		b.fullmove++
	}
	b.turn = c.Other()
	return b
}
