// Package longestpath computes the length of the longest path in a weighted
// directed acyclic graph (dag.Graph).
//
// The computation runs in two stages over a read-only graph:
//
//  1. topo.Sort produces an order in which every edge points forward.
//  2. Relax walks that order twice. The first pass seeds every node that is
//     still unreached with distance 0, which is the same as adding a virtual
//     source with zero-weight edges to every node. The second pass relaxes
//     each outgoing edge u→v with weight w:
//     dist[v] = max(dist[v], dist[u] + w).
//
// Because u precedes all of its successors in the order, dist[u] is final by
// the time its edges are relaxed. The answer is the maximum over all nodes,
// so a path may start and end anywhere, and a single node is a path of
// length 0. With only negative weights the answer is therefore 0.
//
// Numeric width:
//
//	Weights and distances are int64. A sum that would overflow int64 fails
//	with ErrDistanceOverflow instead of wrapping.
//
// Errors (sentinel):
//
//   - ErrEmptyGraph        graph has no nodes, the maximum is undefined
//   - ErrIncompleteOrder   order passed to Relax does not have N entries
//   - ErrBadOrder          order has an out-of-range or repeated index
//   - ErrOrderViolation    order places an edge target before its source
//   - ErrDistanceOverflow  a path length does not fit in int64
//   - topo.ErrCycleDetected is passed through wrapped, dag.ErrGraphNil as is
//
// Options:
//
//   - WithLogger(l):  emit Debug events on l (github.com/charmbracelet/log)
//   - WithOnRelax(fn): call fn on every improving relaxation
//
// Example usage:
//
//	g, err := dag.FromAdjacency(adj)
//	if err != nil {
//	    return err
//	}
//	length, err := longestpath.LongestPath(g)
//
// Complexity:
//
//   - Time:   O(N + M) for each stage
//   - Memory: O(N + M) (graph snapshot, order, distances)
package longestpath
