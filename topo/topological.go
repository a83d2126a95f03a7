package topo

import (
	"fmt"

	"github.com/katalvlaran/dagpath/dag"
)

// Sort computes a topological ordering of all nodes of g.
//
// Errors:
//   - dag.ErrGraphNil    if g is nil.
//   - ErrCycleDetected   if g contains a cycle; the order is discarded.
//   - any error returned by the OnVisit hook, unchanged.
//
// An empty graph yields an empty, non-nil order.
func Sort(g *dag.Graph, opts ...Option) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, dag.ErrGraphNil
	}
	// 2. Apply optional settings
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	// 3. Take one consistent snapshot; the graph is not locked while we sort
	adj := g.Adjacency()
	n := len(adj)
	indeg := countInDegrees(adj)

	// 4. Seed the queue with every start candidate in index order.
	//    The queue never holds more than n entries, so a slice with a head
	//    cursor serves as the FIFO.
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	order := make([]int, 0, n)

	// 5. Drain the queue
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(u); err != nil {
				return nil, err
			}
		}
		order = append(order, u)
		for _, e := range adj[u] {
			indeg[e.To]--
			if indeg[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	// 6. Anything left unordered sits on or behind a cycle
	if len(order) < n {
		return nil, fmt.Errorf("%w: ordered %d of %d nodes", ErrCycleDetected, len(order), n)
	}

	return order, nil
}

// InDegrees returns, for every node of g, the number of edges pointing into it.
// Parallel edges are counted separately.
func InDegrees(g *dag.Graph) ([]int, error) {
	if g == nil {
		return nil, dag.ErrGraphNil
	}

	return countInDegrees(g.Adjacency()), nil
}

// Sources returns the nodes of g with in-degree 0 in ascending index order.
func Sources(g *dag.Graph) ([]int, error) {
	indeg, err := InDegrees(g)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(indeg))
	for v, d := range indeg {
		if d == 0 {
			out = append(out, v)
		}
	}

	return out, nil
}

// countInDegrees scans every edge of adj once.
func countInDegrees(adj [][]dag.Edge) []int {
	indeg := make([]int, len(adj))
	for _, edges := range adj {
		for _, e := range edges {
			indeg[e.To]++
		}
	}

	return indeg
}
