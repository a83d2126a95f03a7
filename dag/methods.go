package dag

import "fmt"

// FromAdjacency builds a Graph from adj, where adj[u] lists the outgoing
// edges of node u. The number of nodes is len(adj).
//
// Steps:
//  1. Allocate len(adj) nodes.
//  2. Add every edge through AddEdge, so targets and self-loops are validated.
//  3. Stop at the first invalid edge and return the wrapped sentinel.
//
// adj is copied; later changes to it do not affect the Graph.
// Complexity: O(N + M).
func FromAdjacency(adj [][]Edge) (*Graph, error) {
	g := NewGraph(len(adj))
	for u, edges := range adj {
		for _, e := range edges {
			if err := g.AddEdge(u, e.To, e.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddNode appends a new isolated node and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddNode() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddEdge appends the edge from→to with the given weight.
//
// Errors (checked in this order):
//   - ErrNodeOutOfRange if from is not in [0, N).
//   - ErrInvalidTarget  if to is not in [0, N).
//   - ErrSelfLoop       if from == to.
//
// Parallel edges are allowed; relaxation keeps the heaviest one.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d, nodes=%d", ErrNodeOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: edge %d→%d, nodes=%d", ErrInvalidTarget, from, to, n)
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, from)
	}

	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: weight})
	g.size++

	return nil
}

// Order returns the number of nodes N.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Size returns the number of edges M.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Neighbors returns a copy of the outgoing edges of u in insertion order.
// Returns ErrNodeOutOfRange if u is not in [0, N).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.adj) {
		return nil, fmt.Errorf("%w: node=%d, nodes=%d", ErrNodeOutOfRange, u, len(g.adj))
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Adjacency returns a deep copy of the per-node edge lists, taken under a
// single read lock so the snapshot is consistent.
// Complexity: O(N + M).
func (g *Graph) Adjacency() [][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyAdjacency(g.adj)
}

// Clone returns an independent deep copy of g.
// Complexity: O(N + M).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return &Graph{adj: copyAdjacency(g.adj), size: g.size}
}

// copyAdjacency deep-copies adj. Nodes without edges stay nil.
func copyAdjacency(adj [][]Edge) [][]Edge {
	out := make([][]Edge, len(adj))
	for u, edges := range adj {
		if len(edges) == 0 {
			continue
		}
		out[u] = make([]Edge, len(edges))
		copy(out[u], edges)
	}

	return out
}
