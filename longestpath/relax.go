package longestpath

import (
	"fmt"

	"github.com/katalvlaran/dagpath/dag"
)

// Relax computes, for every node of g, the longest path length ending at it,
// processing nodes in the given topological order.
//
// Preconditions checked before any work (in order):
//  1. g must be non-nil (dag.ErrGraphNil).
//  2. len(order) must equal N (ErrIncompleteOrder).
//  3. every entry must be in [0, N) and appear once (ErrBadOrder).
//  4. every edge u→v must have u before v (ErrOrderViolation).
//
// Every returned Distance is Reached and at least 0: each node is first
// seeded as a path start of length 0, then raised by relaxation.
//
// An empty graph with an empty order yields an empty slice and no error;
// Max rejects that result with ErrEmptyGraph.
func Relax(g *dag.Graph, order []int, opts ...Option) ([]Distance, error) {
	if g == nil {
		return nil, dag.ErrGraphNil
	}

	return relaxWith(g, order, buildOptions(opts))
}

// relaxWith runs the relaxation stage with already-applied options.
func relaxWith(g *dag.Graph, order []int, cfg Options) ([]Distance, error) {
	r := &relaxer{adj: g.Adjacency(), order: order, options: cfg}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.seed()
	if err := r.process(); err != nil {
		return nil, err
	}
	cfg.debug("relaxed distances", "nodes", len(r.dist), "relaxations", r.relaxations)

	return r.dist, nil
}

// Max returns the largest reached value in dist.
// It returns ErrEmptyGraph if dist holds no reached entry.
func Max(dist []Distance) (int64, error) {
	var best Distance
	for _, d := range dist {
		if d.Reached && best.less(d.Value) {
			best = d
		}
	}
	if !best.Reached {
		return 0, ErrEmptyGraph
	}

	return best.Value, nil
}

// relaxer holds the mutable state of one Relax call.
type relaxer struct {
	adj         [][]dag.Edge // snapshot of the graph; read-only
	order       []int        // topological order supplied by the caller
	options     Options
	dist        []Distance // dist[v] is the longest path ending at v
	relaxations int        // number of improving updates
}

// validate checks that order is a topological permutation of the snapshot.
func (r *relaxer) validate() error {
	n := len(r.adj)
	if len(r.order) != n {
		return fmt.Errorf("%w: got %d entries for %d nodes", ErrIncompleteOrder, len(r.order), n)
	}

	// pos[v] is the 1-based position of v; 0 marks "not seen yet"
	pos := make([]int, n)
	for i, v := range r.order {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: index %d at position %d", ErrBadOrder, v, i)
		}
		if pos[v] != 0 {
			return fmt.Errorf("%w: index %d repeated at position %d", ErrBadOrder, v, i)
		}
		pos[v] = i + 1
	}

	for u, edges := range r.adj {
		for _, e := range edges {
			if pos[e.To] <= pos[u] {
				return fmt.Errorf("%w: edge %d→%d", ErrOrderViolation, u, e.To)
			}
		}
	}

	return nil
}

// seed allocates dist with every node unreached, then marks every node still
// unreached, in order, as a path start of length 0.
func (r *relaxer) seed() {
	r.dist = make([]Distance, len(r.adj))
	for _, v := range r.order {
		if !r.dist[v].Reached {
			r.dist[v] = Distance{Value: 0, Reached: true}
		}
	}
}

// process relaxes the outgoing edges of every node in order.
// validate and seed guarantee every node in order is already Reached.
func (r *relaxer) process() error {
	for _, u := range r.order {
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves dist[v] for every edge u→v. dist[u] must already be final.
func (r *relaxer) relax(u int) error {
	du := r.dist[u].Value
	for _, e := range r.adj[u] {
		cand, ok := addInt64(du, e.Weight)
		if !ok {
			return fmt.Errorf("%w: edge %d→%d, %d%+d", ErrDistanceOverflow, u, e.To, du, e.Weight)
		}
		if !r.dist[e.To].less(cand) {
			continue
		}
		r.dist[e.To] = Distance{Value: cand, Reached: true}
		r.relaxations++
		if r.options.OnRelax != nil {
			r.options.OnRelax(u, e.To, cand)
		}
	}

	return nil
}

// addInt64 returns a+b and false if the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, true
}
