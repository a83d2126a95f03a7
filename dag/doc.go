// Package dag provides the indexed, weighted, directed graph consumed by the
// topo and longestpath packages.
//
// A Graph holds N nodes identified by the integers [0, N). Every node owns an
// ordered slice of outgoing edges; each Edge is a (target, weight) pair with a
// signed int64 weight, so negative weights are legal.
//
// What:
//
//   - NewGraph(n) creates n isolated nodes; AddNode appends one more.
//   - AddEdge(from, to, weight) appends an outgoing edge to from.
//   - FromAdjacency(adj) builds a Graph from a per-node edge-list literal,
//     validating every target index.
//   - Neighbors, Adjacency and Clone return copies, never internal slices.
//
// Acyclicity:
//
//	The graph is expected to be a DAG. Self-loops are rejected at construction
//	(ErrSelfLoop); longer cycles cannot be seen edge-by-edge and are reported
//	by topo.Sort as topo.ErrCycleDetected.
//
// Concurrency:
//
//	All methods are guarded by a sync.RWMutex, so a Graph may be built from
//	several goroutines. Algorithms read it and must not run concurrently with
//	mutations of the same graph.
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrNodeOutOfRange  source node index outside [0, N)
//   - ErrInvalidTarget   edge target index outside [0, N)
//   - ErrSelfLoop        edge from a node to itself
//
// Complexity:
//
//   - AddNode, AddEdge:       O(1) amortized
//   - Neighbors(u):           O(deg(u))
//   - Adjacency, Clone:       O(N + M)
//   - FromAdjacency:          O(N + M)
package dag
