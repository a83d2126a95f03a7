package longestpath

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dagpath/dag"
	"github.com/katalvlaran/dagpath/topo"
)

// LongestPath returns the maximum total weight over all paths of g,
// counting a single node as a path of length 0.
//
// Steps:
//  1. Reject a nil graph (dag.ErrGraphNil) and an empty one (ErrEmptyGraph).
//  2. Order the nodes with topo.Sort; a cycle fails with topo.ErrCycleDetected.
//  3. Relax in that order and return the maximum distance.
//
// Calling LongestPath repeatedly on an unmodified graph returns the same value.
func LongestPath(g *dag.Graph, opts ...Option) (int64, error) {
	cfg := buildOptions(opts)
	dist, err := distances(g, cfg)
	if err != nil {
		return 0, err
	}
	length, err := Max(dist)
	if err != nil {
		return 0, err
	}
	cfg.debug("longest path", "length", length)

	return length, nil
}

// Distances returns the longest path length ending at every node of g.
// It fails like LongestPath, including ErrEmptyGraph for a graph with no nodes.
func Distances(g *dag.Graph, opts ...Option) ([]Distance, error) {
	return distances(g, buildOptions(opts))
}

// distances validates g, sorts it and relaxes it.
func distances(g *dag.Graph, cfg Options) ([]Distance, error) {
	// 1) Validate input
	if g == nil {
		return nil, dag.ErrGraphNil
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Stage one: topological order
	start := time.Now()
	order, err := topo.Sort(g)
	if err != nil {
		return nil, fmt.Errorf("longestpath: %w", err)
	}
	cfg.debug("topological order", "nodes", len(order), "edges", g.Size(),
		"elapsed", time.Since(start).Round(time.Microsecond))

	// 3) Stage two: relaxation
	return relaxWith(g, order, cfg)
}
