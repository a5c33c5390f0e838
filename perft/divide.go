package perft

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"bitchess/chess"
)

// Options tunes Divide.
type Options struct {
	// Workers is the number of goroutines; 0 means GOMAXPROCS.
	Workers int
	// CacheMB gives each worker its own cache of that many megabytes.
	CacheMB int
}

// Result is the node count below one root move.
type Result struct {
	Move  chess.Move
	Nodes uint64
}

// Divide counts the nodes at depth below each legal root move of b. Root
// moves are shared out to a pool of workers; cancelling ctx stops the pool
// between root moves.
func Divide(ctx context.Context, b chess.Board, depth int, opts Options) (map[chess.Move]uint64, error) {
	result := make(map[chess.Move]uint64)
	if depth <= 0 {
		return result, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	roots := make(chan chess.Successor)

	g.Go(func() error {
		defer close(roots)
		for _, s := range b.Successors(nil) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case roots <- s:
			}
		}
		return nil
	})

	var mu sync.Mutex
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			counter := NewCounter(opts.CacheMB)
			for s := range roots {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := counter.Count(s.Board, depth-1)
				mu.Lock()
				result[s.Move] = n
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// Sorted orders a Divide result by move.
func Sorted(div map[chess.Move]uint64) []Result {
	moves := maps.Keys(div)
	slices.Sort(moves)
	out := make([]Result, len(moves))
	for i, m := range moves {
		out[i] = Result{m, div[m]}
	}
	return out
}

// Total sums a Divide result.
func Total(div map[chess.Move]uint64) uint64 {
	var sum uint64
	for _, n := range div {
		sum += n
	}
	return sum
}
