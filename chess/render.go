package chess

import "strings"

// String renders the board as an 8x8 grid, rank 8 first, with '.' for empty
// squares:
//
//	8 | r n b q k b n r
//	...
//	1 | R N B Q K B N R
//	  +----------------
//	    a b c d e f g h
func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte('1' + byte(rank))
		sb.WriteString(" |")
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.PieceAt(NewSquare(file, rank)).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  +----------------\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
