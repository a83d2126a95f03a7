package topo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagpath/dag"
	"github.com/katalvlaran/dagpath/topo"
)

// position returns index of v in order or -1 if not found
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build creates a graph of n nodes from {from, to} pairs with weight 1.
func build(t *testing.T, n int, edges [][2]int) *dag.Graph {
	t.Helper()
	g := dag.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], 1), "AddEdge(%d→%d)", e[0], e[1])
	}

	return g
}

// TestSort_NilGraph verifies that passing a nil graph returns dag.ErrGraphNil.
func TestSort_NilGraph(t *testing.T) {
	order, err := topo.Sort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dag.ErrGraphNil)
}

// TestSort_EmptyGraph covers a graph with no nodes.
func TestSort_EmptyGraph(t *testing.T) {
	order, err := topo.Sort(dag.NewGraph(0))
	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Empty(t, order)
}

// TestSort_NoEdges checks that isolated nodes come out in index order.
func TestSort_NoEdges(t *testing.T) {
	order, err := topo.Sort(dag.NewGraph(3))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

// TestSort_ReverseChain verifies the chain 3→2→1→0 is ordered against index order.
func TestSort_ReverseChain(t *testing.T) {
	g := build(t, 4, [][2]int{{3, 2}, {2, 1}, {1, 0}})
	order, err := topo.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, order)
}

// TestSort_FIFOTieBreak checks the discovery-order tie-break on a diamond.
func TestSort_FIFOTieBreak(t *testing.T) {
	// 0→2, 0→1, 1→3, 2→3: 2 is discovered before 1
	g := build(t, 4, [][2]int{{0, 2}, {0, 1}, {1, 3}, {2, 3}})
	order, err := topo.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, order)
}

// TestSort_ComplexDAG builds a DAG of 10 nodes with cross-links and ensures validity.
func TestSort_ComplexDAG(t *testing.T) {
	edges := [][2]int{
		{0, 2}, {0, 1}, {1, 4}, {2, 4},
		{1, 3}, {3, 5}, {4, 6}, {5, 7},
		{6, 8}, {7, 9}, {9, 8},
	}
	g := build(t, 10, edges)
	order, err := topo.Sort(g)
	require.NoError(t, err)
	assert.Len(t, order, 10)
	for _, e := range edges {
		assert.Less(t,
			position(order, e[0]), position(order, e[1]),
			"edge %d→%d should be respected", e[0], e[1],
		)
	}
}

// TestSort_ParallelEdges ensures duplicate edges are decremented once each.
func TestSort_ParallelEdges(t *testing.T) {
	g := build(t, 2, [][2]int{{0, 1}, {0, 1}})
	order, err := topo.Sort(g)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)
}

// TestSort_Cycle ensures a cycle is reported rather than a partial order.
func TestSort_Cycle(t *testing.T) {
	// 0 → 1 → 2 → 1 ; 3 isolated
	g := build(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 1}})
	order, err := topo.Sort(g)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, topo.ErrCycleDetected)
	assert.Contains(t, err.Error(), "ordered 2 of 4 nodes")
}

// TestSort_OnVisit records the visit sequence and checks it equals the order.
func TestSort_OnVisit(t *testing.T) {
	g := build(t, 3, [][2]int{{2, 0}, {0, 1}})
	var seen []int
	order, err := topo.Sort(g, topo.WithOnVisit(func(id int) error {
		seen = append(seen, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, order, seen)
}

// TestSort_OnVisitError aborts the sort with the hook error.
func TestSort_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	g := build(t, 3, [][2]int{{0, 1}, {1, 2}})
	order, err := topo.Sort(g, topo.WithOnVisit(func(id int) error {
		if id == 1 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, order)
	assert.ErrorIs(t, err, stop)
}

// TestInDegrees_And_Sources check the helper queries.
func TestInDegrees_And_Sources(t *testing.T) {
	g := build(t, 5, [][2]int{{0, 2}, {1, 2}, {2, 3}, {0, 3}})

	indeg, err := topo.InDegrees(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 2, 2, 0}, indeg)

	src, err := topo.Sources(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, src)

	_, err = topo.Sources(nil)
	assert.ErrorIs(t, err, dag.ErrGraphNil)
}
