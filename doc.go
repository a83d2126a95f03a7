// Package dagpath computes the length of the longest path in a weighted
// directed acyclic graph.
//
// The work is split across three subpackages, used in sequence:
//
//	dag/         — indexed graph: nodes [0,N), weighted outgoing edge lists
//	topo/        — Kahn topological sort, in-degrees, start candidates
//	longestpath/ — seeded DP relaxation over the order and the max-reduction
//
// Quick example:
//
//	g, _ := dag.FromAdjacency([][]dag.Edge{
//		{{To: 1, Weight: 5}, {To: 2, Weight: 3}},
//		{{To: 3, Weight: 6}},
//		{{To: 3, Weight: 4}},
//		{},
//	})
//	n, _ := longestpath.LongestPath(g) // 11: 0→1→3
//
// A path may start at any node and a single node is a path of length 0, so
// the result is never negative. Cyclic input is reported as
// topo.ErrCycleDetected and an empty graph as longestpath.ErrEmptyGraph.
//
//	go get github.com/katalvlaran/dagpath
package dagpath
