// Package render draws boards as SVG diagrams.
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"bitchess/chess"
)

const (
	squareSize = 45
	margin     = 20
	boardSize  = 8*squareSize + margin
)

type options struct {
	light, dark string
	mark        string
	marked      uint64
	blackSide   bool
	coords      bool
}

// Option configures SVG.
type Option func(*options)

// SquareColors sets the fill of light and dark squares.
func SquareColors(light, dark string) Option {
	return func(o *options) { o.light, o.dark = light, dark }
}

// Mark highlights the given squares with color.
func Mark(color string, squares ...chess.Square) Option {
	return func(o *options) {
		o.mark = color
		for _, sq := range squares {
			o.marked |= sq.Bit()
		}
	}
}

// MarkMask highlights every square set in mask, for example a coverage mask.
func MarkMask(color string, mask uint64) Option {
	return func(o *options) {
		o.mark = color
		o.marked |= mask
	}
}

// FromBlack draws the board with rank 8 at the bottom.
func FromBlack() Option {
	return func(o *options) { o.blackSide = true }
}

// NoCoordinates omits the file and rank labels.
func NoCoordinates() Option {
	return func(o *options) { o.coords = false }
}

var glyphs = map[chess.Piece]string{
	chess.WhiteKing: "♔", chess.WhiteQueen: "♕", chess.WhiteRook: "♖",
	chess.WhiteBishop: "♗", chess.WhiteKnight: "♘", chess.WhitePawn: "♙",
	chess.BlackKing: "♚", chess.BlackQueen: "♛", chess.BlackRook: "♜",
	chess.BlackBishop: "♝", chess.BlackKnight: "♞", chess.BlackPawn: "♟",
}

// errWriter keeps the first write error so SVG can report it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// SVG writes a diagram of b to w.
func SVG(w io.Writer, b chess.Board, opts ...Option) error {
	o := options{light: "#f0d9b5", dark: "#b58863", mark: "#cdd26a", coords: true}
	for _, opt := range opts {
		opt(&o)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(boardSize, boardSize)
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)
			x, y := position(file, rank, o.blackSide)

			fill := o.dark
			if (file+rank)%2 == 1 {
				fill = o.light
			}
			if o.marked&sq.Bit() != 0 {
				fill = o.mark
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			if g, ok := glyphs[b.PieceAt(sq)]; ok {
				canvas.Text(x+squareSize/2, y+squareSize*3/4, g,
					"text-anchor:middle;font-size:36px;font-family:sans-serif")
			}
		}
	}
	if o.coords {
		drawCoordinates(canvas, o.blackSide)
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("render: %w", ew.err)
	}
	return nil
}

// position returns the top-left corner of a square.
func position(file, rank int, blackSide bool) (x, y int) {
	if blackSide {
		return margin + (7-file)*squareSize, rank * squareSize
	}
	return margin + file*squareSize, (7 - rank) * squareSize
}

func drawCoordinates(canvas *svg.SVG, blackSide bool) {
	const style = "text-anchor:middle;font-size:12px;font-family:sans-serif"
	for i := 0; i < 8; i++ {
		x, _ := position(i, 0, blackSide)
		canvas.Text(x+squareSize/2, 8*squareSize+margin*3/4, string(rune('a'+i)), style)
		_, y := position(0, i, blackSide)
		canvas.Text(margin/2, y+squareSize/2+4, string(rune('1'+i)), style)
	}
}
