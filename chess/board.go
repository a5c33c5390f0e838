// Package chess holds the bitboard position and the oracle built on it:
// per-piece attack generation, coverage, check detection, move legality and
// move application.
//
// A Board is a small value. Every operation that plays or tests a move
// returns a new Board and leaves the receiver untouched, so Boards can be
// shared between goroutines freely.
package chess

import (
	"fmt"

	"bitchess/bitboard"
)

// Kind is a colorless piece type.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the lowercase letter used for the kind in notation.
func (k Kind) Letter() byte {
	if int(k) < len(kindLetters) {
		return kindLetters[k]
	}
	return '?'
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// KindFromLetter maps a notation letter (either case) to its kind.
func KindFromLetter(ch byte) Kind {
	if ch >= 'A' && ch <= 'Z' {
		ch += 'a' - 'A'
	}
	for k, l := range kindLetters {
		if k != int(NoKind) && l == ch {
			return Kind(k)
		}
	}
	return NoKind
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece packs a kind and a color. Black pieces carry bit 3 so that
// p&7 is the kind and p&8 the color.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)

	BlackPawn   = Piece(Pawn) | 8
	BlackKnight = Piece(Knight) | 8
	BlackBishop = Piece(Bishop) | 8
	BlackRook   = Piece(Rook) | 8
	BlackQueen  = Piece(Queen) | 8
	BlackKing   = Piece(King) | 8
)

// NewPiece combines a color and a kind. NoKind gives NoPiece.
func NewPiece(c Color, k Kind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	return Piece(k) | Piece(c)<<3
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() Kind { return Kind(p & 7) }

// Color returns the side owning the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3 & 1) }

// Letter returns the notation letter, uppercase for White.
func (p Piece) Letter() byte {
	l := p.Kind().Letter()
	if p != NoPiece && p.Color() == White {
		l -= 'a' - 'A'
	}
	return l
}

func (p Piece) String() string { return string(p.Letter()) }

// CastlingRights is a set of four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every flag in r is present.
func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r == r }

// String renders the rights in FEN order ("KQkq"), or "-" when none remain.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := make([]byte, 0, 4)
	for i, ch := range []byte("KQkq") {
		if cr&(1<<uint(i)) != 0 {
			s = append(s, ch)
		}
	}
	return string(s)
}

// Board is a chess position: two color masks, six kind masks and the game
// state needed to decide legality.
type Board struct {
	colors [2]uint64
	kinds  [7]uint64 // indexed by Kind; kinds[NoKind] stays empty

	turn      Color
	castling  CastlingRights
	enPassant Square

	halfmove int
	fullmove int
}

// Empty returns a board with no pieces, White to move, no castling rights
// and the move counter at 1.
func Empty() Board {
	return Board{enPassant: NoSquare, fullmove: 1}
}

// New returns the standard starting position.
func New() Board {
	b := Empty()
	b.colors[White] = 0x000000000000FFFF
	b.colors[Black] = 0xFFFF000000000000
	b.kinds[Pawn] = 0x00FF00000000FF00
	b.kinds[Knight] = 0x4200000000000042
	b.kinds[Bishop] = 0x2400000000000024
	b.kinds[Rook] = 0x8100000000000081
	b.kinds[Queen] = 0x0800000000000008
	b.kinds[King] = 0x1000000000000010
	b.castling = AllCastling
	return b
}

// Description is a parsed position description as produced by a FEN reader.
// Placement is indexed [rank][file] with rank 0 the first rank.
type Description struct {
	Placement [8][8]Piece
	Turn      Color
	Castling  CastlingRights
	EnPassant Square
	Halfmove  int
	Fullmove  int
}

// FromDescription builds a board by placing every piece of d and copying its
// game state.
func FromDescription(d Description) (Board, error) {
	b := Empty()
	for rank, row := range d.Placement {
		for file, p := range row {
			if p == NoPiece {
				continue
			}
			if err := b.Set(NewSquare(file, rank), p); err != nil {
				return Board{}, err
			}
		}
	}
	if d.Turn > Black {
		return Board{}, fmt.Errorf("%w: side to move %d", ErrInvalidDescription, d.Turn)
	}
	if d.Castling&^AllCastling != 0 {
		return Board{}, fmt.Errorf("%w: castling rights %#x", ErrInvalidDescription, uint8(d.Castling))
	}
	if d.EnPassant != NoSquare {
		if !d.EnPassant.Valid() || d.EnPassant.Rank() != enPassantRank(d.Turn) {
			return Board{}, fmt.Errorf("%w: en passant square %v with %v to move", ErrInvalidDescription, d.EnPassant, d.Turn)
		}
		b.turn, b.enPassant = d.Turn, d.EnPassant
		if _, ok := b.enPassantVictim(d.Turn); !ok || b.Occupied()&d.EnPassant.Bit() != 0 {
			return Board{}, fmt.Errorf("%w: no pawn to capture en passant on %v", ErrInvalidDescription, d.EnPassant)
		}
	}
	if d.Halfmove < 0 || d.Fullmove < 0 {
		return Board{}, fmt.Errorf("%w: negative move counter", ErrInvalidDescription)
	}
	b.turn = d.Turn
	b.castling = d.Castling
	b.enPassant = d.EnPassant
	b.halfmove = d.Halfmove
	b.fullmove = d.Fullmove
	return b, nil
}

// Colors returns the occupancy mask of c.
func (b Board) Colors(c Color) uint64 { return b.colors[c&1] }

// Kinds returns the mask of every piece of kind k, both colors.
func (b Board) Kinds(k Kind) uint64 {
	if k > King {
		return 0
	}
	return b.kinds[k]
}

// Pieces returns the mask of c's pieces of kind k.
func (b Board) Pieces(k Kind, c Color) uint64 { return b.Kinds(k) & b.Colors(c) }

// Occupied returns every occupied square.
func (b Board) Occupied() uint64 { return b.colors[White] | b.colors[Black] }

func (b Board) Turn() Color              { return b.turn }
func (b Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the en passant target square, or NoSquare.
func (b Board) EnPassant() Square { return b.enPassant }

// Halfmove returns the number of half-moves since the last capture or pawn move.
func (b Board) Halfmove() int { return b.halfmove }

// Fullmove returns the move counter, incremented after each Black move.
func (b Board) Fullmove() int { return b.fullmove }

// King returns the square of c's king, or NoSquare if it has none.
func (b Board) King(c Color) Square {
	sq, ok := bitboard.LowestSquare(b.Pieces(King, c))
	if !ok {
		return NoSquare
	}
	return Square(sq)
}

// PieceAt returns the piece on sq, or NoPiece for an empty or invalid square.
func (b Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	bit := sq.Bit()
	var c Color
	switch {
	case b.colors[White]&bit != 0:
		c = White
	case b.colors[Black]&bit != 0:
		c = Black
	default:
		return NoPiece
	}
	for k := Pawn; k <= King; k++ {
		if b.kinds[k]&bit != 0 {
			return NewPiece(c, k)
		}
	}
	return NoPiece
}

// PieceAtCoord is PieceAt addressed by file and rank.
func (b Board) PieceAtCoord(file, rank int) (Piece, error) {
	sq, err := SquareAt(file, rank)
	if err != nil {
		return NoPiece, err
	}
	return b.PieceAt(sq), nil
}

// Set places p on sq, replacing whatever was there. NoPiece clears the square.
func (b *Board) Set(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
	}
	if p != NoPiece && (p.Kind() == NoKind || p.Kind() > King || p&^15 != 0) {
		return fmt.Errorf("chess: invalid piece code %d", uint8(p))
	}
	bit := sq.Bit()
	b.remove(bit)
	if p != NoPiece {
		b.place(bit, p.Color(), p.Kind())
	}
	return nil
}

// SetCoord is Set addressed by file and rank.
func (b *Board) SetCoord(file, rank int, p Piece) error {
	sq, err := SquareAt(file, rank)
	if err != nil {
		return err
	}
	return b.Set(sq, p)
}

// Clear empties sq.
func (b *Board) Clear(sq Square) error { return b.Set(sq, NoPiece) }

// remove clears every mask at bit.
func (b *Board) remove(bit uint64) {
	b.colors[White] &^= bit
	b.colors[Black] &^= bit
	for k := Pawn; k <= King; k++ {
		b.kinds[k] &^= bit
	}
}

// place sets bit in the masks of c and k. The square must already be empty.
func (b *Board) place(bit uint64, c Color, k Kind) {
	b.colors[c] |= bit
	b.kinds[k] |= bit
}

// Validate checks the mask invariants: disjoint colors, disjoint kinds and
// every occupied square carrying exactly one color and one kind.
func (b Board) Validate() error {
	if b.colors[White]&b.colors[Black] != 0 {
		return fmt.Errorf("%w: squares %v are both colors", ErrCorrupt, squareList(b.colors[White]&b.colors[Black]))
	}
	if b.kinds[NoKind] != 0 {
		return fmt.Errorf("%w: kindless mask is not empty", ErrCorrupt)
	}
	var seen uint64
	for k := Pawn; k <= King; k++ {
		if overlap := seen & b.kinds[k]; overlap != 0 {
			return fmt.Errorf("%w: %v mask overlaps another kind on %v", ErrCorrupt, k, squareList(overlap))
		}
		seen |= b.kinds[k]
	}
	if missing := seen &^ b.Occupied(); missing != 0 {
		return fmt.Errorf("%w: pieces without color on %v", ErrCorrupt, squareList(missing))
	}
	if orphan := b.Occupied() &^ seen; orphan != 0 {
		return fmt.Errorf("%w: colored squares without a piece on %v", ErrCorrupt, squareList(orphan))
	}
	if b.turn > Black {
		return fmt.Errorf("%w: side to move %d", ErrCorrupt, b.turn)
	}
	return nil
}

func squareList(bb uint64) []Square {
	var out []Square
	for _, s := range bitboard.Squares(bb) {
		out = append(out, Square(s))
	}
	return out
}
