package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"bitchess/notation"
	"bitchess/perft"
)

func main() {
	fen := flag.String("fen", notation.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	workers := flag.Int("workers", 0, "Divide worker goroutines (0 = GOMAXPROCS)")
	hash := flag.Int("hash", 0, "Subtree count cache size in MB (0 = off)")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := notation.Board(*fen)
	if err != nil {
		log.WithError(err).WithField("fen", *fen).Error("parse position")
		os.Exit(2)
	}
	log.WithFields(log.Fields{"fen": *fen, "depth": *depth, "hash": *hash}).Debug("position loaded")

	if *divide {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		start := time.Now()
		div, err := perft.Divide(ctx, board, *depth, perft.Options{Workers: *workers, CacheMB: *hash})
		if err != nil {
			log.WithError(err).Error("divide")
			os.Exit(1)
		}
		for _, r := range perft.Sorted(div) {
			fmt.Printf("%s: %d\n", r.Move, r.Nodes)
		}
		fmt.Printf("Total: %d\n", perft.Total(div))
		log.WithField("elapsed", time.Since(start)).Debug("divide finished")
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.WithError(err).Error("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.WithError(err).Error("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += perft.NewCounter(*hash).Count(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
