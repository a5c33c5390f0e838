package perft

import "unsafe"

const clusterSize = 4

type entry struct {
	hash  uint64
	depth int32
	nodes uint64
}

// table is a fixed-size, clustered cache of subtree counts. Entries are
// matched on hash and exact depth.
type table struct {
	entries      []entry
	clusterCount uint64
}

func newTable(megabytes int) *table {
	entrySize := uint64(unsafe.Sizeof(entry{}))
	totalBytes := uint64(megabytes) * 1024 * 1024
	clusterCount := totalBytes / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &table{
		entries:      make([]entry, clusterCount*clusterSize),
		clusterCount: clusterCount,
	}
}

func (t *table) cluster(hash uint64) []entry {
	base := (hash % t.clusterCount) * clusterSize
	return t.entries[base : base+clusterSize]
}

func (t *table) get(hash uint64, depth int) (uint64, bool) {
	for _, e := range t.cluster(hash) {
		if e.hash == hash && int(e.depth) == depth {
			return e.nodes, true
		}
	}
	return 0, false
}

// put prefers the slot already holding (hash, depth), then an empty slot,
// then the shallowest entry of the cluster.
func (t *table) put(hash uint64, depth int, nodes uint64) {
	c := t.cluster(hash)
	target := -1
	for i := range c {
		if c[i].hash == hash && int(c[i].depth) == depth {
			target = i
			break
		}
	}
	if target == -1 {
		for i := range c {
			if c[i].depth == 0 {
				target = i
				break
			}
		}
	}
	if target == -1 {
		target = 0
		for i := 1; i < len(c); i++ {
			if c[i].depth < c[target].depth {
				target = i
			}
		}
	}
	c[target] = entry{hash: hash, depth: int32(depth), nodes: nodes}
}
