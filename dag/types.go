package dag

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to an operation.
	ErrGraphNil = errors.New("dag: graph is nil")

	// ErrNodeOutOfRange indicates a source node index outside [0, N).
	ErrNodeOutOfRange = errors.New("dag: node index out of range")

	// ErrInvalidTarget indicates an edge whose target index lies outside [0, N).
	ErrInvalidTarget = errors.New("dag: invalid edge target")

	// ErrSelfLoop indicates an edge u→u, which is a cycle of length one.
	ErrSelfLoop = errors.New("dag: self-loop not allowed")
)

// Edge is one outgoing arc of a node: the target index and the weight.
type Edge struct {
	// To is the index of the target node.
	To int

	// Weight is the signed length contributed by the edge to a path.
	Weight int64
}

// Graph is an indexed directed graph with weighted outgoing edge lists.
//
// mu guards adj and size. adj[u] lists the outgoing edges of u in insertion order.
type Graph struct {
	mu   sync.RWMutex
	adj  [][]Edge
	size int // total number of edges
}

// NewGraph creates a Graph with n isolated nodes numbered 0..n-1.
// A negative n is treated as 0.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]Edge, n)}
}
