// Package perft counts move paths to a fixed depth. The counts are the
// standard way to check a move generator against published figures.
package perft

import "bitchess/chess"

// Counter counts leaf nodes. It reuses successor buffers between calls and,
// when built with a cache, memoizes subtree counts by position hash.
// A Counter is not safe for concurrent use.
type Counter struct {
	bufs  [][]chess.Successor
	cache *table
}

// NewCounter returns a Counter with a cache of cacheMB megabytes. Zero
// disables the cache.
func NewCounter(cacheMB int) *Counter {
	c := &Counter{}
	if cacheMB > 0 {
		c.cache = newTable(cacheMB)
	}
	return c
}

// Count returns the number of legal move sequences of length depth from b.
func Count(b chess.Board, depth int) uint64 {
	return NewCounter(0).Count(b, depth)
}

func (c *Counter) Count(b chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	return c.count(b, depth)
}

func (c *Counter) bufFor(depth int) []chess.Successor {
	for depth >= len(c.bufs) {
		c.bufs = append(c.bufs, make([]chess.Successor, 0, 64))
	}
	return c.bufs[depth][:0]
}

func (c *Counter) count(b chess.Board, depth int) uint64 {
	var hash uint64
	if c.cache != nil && depth > 1 {
		hash = b.Hash()
		if n, ok := c.cache.get(hash, depth); ok {
			return n
		}
	}

	succ := b.Successors(c.bufFor(depth))
	c.bufs[depth] = succ
	if depth == 1 {
		return uint64(len(succ))
	}
	var nodes uint64
	for i := range succ {
		nodes += c.count(succ[i].Board, depth-1)
	}

	if c.cache != nil {
		c.cache.put(hash, depth, nodes)
	}
	return nodes
}
