// Command chessboard loads a position, plays moves on it and reports what
// the position oracle sees.
//
//	chessboard -fen "<fen>" -moves "e2e4 e7e5" -list -coverage -svg board.svg
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"bitchess/bitboard"
	"bitchess/chess"
	"bitchess/notation"
	"bitchess/render"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "Starting position")
	moves := flag.String("moves", "", "Space separated coordinate moves to play, e.g. \"e2e4 e7e5\"")
	list := flag.Bool("list", false, "Print the legal moves of the side to move")
	coverage := flag.Bool("coverage", false, "Print each side's coverage mask")
	svgPath := flag.String("svg", "", "Write an SVG diagram to this file")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(*fen, strings.Fields(*moves), *list, *coverage, *svgPath); err != nil {
		log.WithError(err).Error("chessboard")
		os.Exit(1)
	}
}

func run(fen string, moves []string, list, coverage bool, svgPath string) error {
	b, err := notation.Board(fen)
	if err != nil {
		return err
	}
	for _, tok := range moves {
		next, err := notation.Apply(b, tok)
		if err != nil {
			return fmt.Errorf("move %q: %w", tok, err)
		}
		log.WithFields(log.Fields{"move": tok, "fen": notation.FormatFEN(next)}).Debug("played")
		b = next
	}

	fmt.Print(b)
	fmt.Println(notation.FormatFEN(b))
	fmt.Printf("%v to move: %v\n", b.Turn(), b.Status())

	if list {
		var sb strings.Builder
		for i, m := range b.LegalMoves() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(m.String())
		}
		fmt.Println(sb.String())
	}
	if coverage {
		for _, c := range []chess.Color{chess.White, chess.Black} {
			fmt.Printf("%v coverage:\n%s", c, bitboard.Draw(b.Coverage(c)))
		}
	}
	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return err
		}
		defer f.Close()
		var opts []render.Option
		if king := b.King(b.Turn()); b.InCheck(b.Turn()) {
			opts = append(opts, render.Mark("#e06c6c", king))
		}
		if err := render.SVG(f, b, opts...); err != nil {
			return err
		}
		log.WithField("path", svgPath).Info("wrote diagram")
	}
	return nil
}
