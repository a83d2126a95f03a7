// Package topo computes topological orderings of a dag.Graph with Kahn's
// algorithm.
//
// What:
//
//   - Sort: a permutation of all N node indices such that for every edge
//     u→v, u appears strictly before v.
//   - InDegrees: the number of incoming edges of every node.
//   - Sources: nodes with in-degree 0, the valid path-start candidates.
//
// Algorithm (Sort):
//
//  1. Count in-degrees with one scan over all edges.
//  2. Seed a FIFO queue with every in-degree-0 node, ascending by index.
//  3. Pop u, append it to the order, decrement the in-degree of each target
//     of u and enqueue targets that reach 0.
//  4. Stop when the queue is empty.
//
// Ties are broken FIFO by discovery, so the result is deterministic for a
// given graph.
//
// Cycles:
//
//	Nodes on a cycle never reach in-degree 0. When the order ends up shorter
//	than N, Sort returns ErrCycleDetected instead of a partial order.
//
// Complexity:
//
//   - Time:   O(N + M)
//   - Memory: O(N) for in-degrees, queue and order
package topo
