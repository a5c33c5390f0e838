package notation

import (
	"fmt"
	"strconv"
	"strings"

	"bitchess/chess"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func fenError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidFEN}, args...)...)
}

// ParseFEN parses a FEN record. The move counters may be omitted and then
// default to 0 and 1.
func ParseFEN(fen string) (chess.Description, error) {
	var d chess.Description
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return d, fenError("want 4 to 6 fields, got %d", len(fields))
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return d, fenError("want 8 ranks, got %d", len(ranks))
	}
	for i, row := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := pieceFromLetter(ch)
			if p == chess.NoPiece {
				return d, fenError("%w %q", ErrInvalidPiece, ch)
			}
			if file >= 8 {
				return d, fenError("rank %d is longer than 8 squares", rank+1)
			}
			d.Placement[rank][file] = p
			file++
		}
		if file != 8 {
			return d, fenError("rank %d has %d squares", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		d.Turn = chess.White
	case "b":
		d.Turn = chess.Black
	default:
		return d, fenError("side to move %q", fields[1])
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			var r chess.CastlingRights
			switch fields[2][j] {
			case 'K':
				r = chess.WhiteKingside
			case 'Q':
				r = chess.WhiteQueenside
			case 'k':
				r = chess.BlackKingside
			case 'q':
				r = chess.BlackQueenside
			default:
				return d, fenError("castling rights %q", fields[2])
			}
			d.Castling |= r
		}
	}

	d.EnPassant = chess.NoSquare
	if fields[3] != "-" {
		sq, err := ParseSquareIndex(fields[3])
		if err != nil {
			return d, fenError("en passant square: %v", err)
		}
		want := 5
		if d.Turn == chess.Black {
			want = 2
		}
		if sq.Rank() != want {
			return d, fenError("en passant square %v with %v to move", sq, d.Turn)
		}
		d.EnPassant = sq
	}

	d.Fullmove = 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return d, fenError("halfmove clock %q", fields[4])
		}
		d.Halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return d, fenError("fullmove number %q", fields[5])
		}
		d.Fullmove = n
	}
	return d, nil
}

// Board parses fen and builds the position.
func Board(fen string) (chess.Board, error) {
	d, err := ParseFEN(fen)
	if err != nil {
		return chess.Board{}, err
	}
	return chess.FromDescription(d)
}

// MustBoard is Board for known-good constants; it panics on error.
func MustBoard(fen string) chess.Board {
	b, err := Board(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// FormatFEN writes b as a FEN record.
func FormatFEN(b chess.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(chess.NewSquare(file, rank))
			if p == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if b.Turn() == chess.Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, b.Castling(), b.EnPassant(), b.Halfmove(), b.Fullmove())
	return sb.String()
}

func pieceFromLetter(ch byte) chess.Piece {
	k := chess.KindFromLetter(ch)
	if k == chess.NoKind {
		return chess.NoPiece
	}
	if ch >= 'a' && ch <= 'z' {
		return chess.NewPiece(chess.Black, k)
	}
	return chess.NewPiece(chess.White, k)
}
