package dag_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dagpath/dag"
)

// ExampleFromAdjacency builds a small DAG from an edge-list literal:
//
//	0 ──5──▶ 1 ──6──▶ 3
//	└──3──▶ 2 ──4────┘
func ExampleFromAdjacency() {
	g, err := dag.FromAdjacency([][]dag.Edge{
		{{To: 1, Weight: 5}, {To: 2, Weight: 3}},
		{{To: 3, Weight: 6}},
		{{To: 3, Weight: 4}},
		{},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size())

	// Output:
	// 4 4
}

// ExampleGraph_AddEdge shows the error returned for a target outside the graph.
func ExampleGraph_AddEdge() {
	g := dag.NewGraph(2)
	err := g.AddEdge(0, 5, 1)
	fmt.Println(errors.Is(err, dag.ErrInvalidTarget))
	fmt.Println(err)

	// Output:
	// true
	// dag: invalid edge target: edge 0→5, nodes=2
}
