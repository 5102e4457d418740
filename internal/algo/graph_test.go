package algo

import (
	"testing"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_DropsOutOfRangeEdges(t *testing.T) {
	g := NewGraph(2, []step.Edge{{From: 0, To: 1}, {From: 0, To: 5}, {From: -1, To: 0}}, true)
	require.Len(t, g.Adj, 2)
	assert.Len(t, g.Adj[0], 1)
	assert.Empty(t, g.Adj[1])

	assert.Empty(t, NewGraph(-3, nil, false).Adj)
}

func TestBFS_Order(t *testing.T) {
	last := lastOf[step.GraphStep](t, BFS(sampleGraph(), 0))
	assert.Equal(t, []int{0, 1, 2, 3}, last.Order)
	assert.Equal(t, []bool{true, true, true, true}, last.Visited)
	assert.Empty(t, last.Frontier)
}

func TestDFS_Order(t *testing.T) {
	last := lastOf[step.GraphStep](t, DFS(sampleGraph(), 0))
	assert.Equal(t, []int{0, 1, 3, 2}, last.Order)
}

func TestDFS_SkipsStaleStackEntries(t *testing.T) {
	seq := DFS(sampleGraph(), 0)
	var skipped int
	for _, s := range seq.Steps() {
		if s.Head().Kind == step.Pop {
			skipped++
		}
	}
	assert.Equal(t, 1, skipped)
}

func TestDijkstra(t *testing.T) {
	g := NewGraph(5, []step.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 1},
	}, true)

	seq := Dijkstra(g, 0)
	require.NoError(t, step.Validate(seq))

	last := lastOf[step.GraphStep](t, seq)
	assert.Equal(t, []int{0, 3, 1, 4, step.Unreachable}, last.Dist)
	assert.Equal(t, []int{0, 2, 1, 3}, last.Order)
	assert.Contains(t, last.Message, "4:∞")

	var relaxed int
	for _, s := range seq.Steps() {
		if gs := s.(step.GraphStep); gs.Kind == step.Relax {
			relaxed++
			require.NotNil(t, gs.Edge)
		}
	}
	assert.Equal(t, 4, relaxed)
}

func TestGraph_StartOutOfRange(t *testing.T) {
	for _, gen := range []func(Graph, int) *step.Sequence{BFS, DFS, Dijkstra} {
		for _, start := range []int{-1, 4} {
			seq := gen(sampleGraph(), start)
			require.Equal(t, 1, seq.Len())
			assert.Equal(t, step.Complete, lastOf[step.GraphStep](t, seq).Kind)
		}
	}
	assert.Equal(t, 1, BFS(NewGraph(0, nil, false), 0).Len())
}

func TestGraph_EdgesListedOnce(t *testing.T) {
	assert.Len(t, sampleGraph().Edges(), 4)

	directed := NewGraph(2, []step.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, true)
	assert.Len(t, directed.Edges(), 2)

	first := stepAt[step.GraphStep](t, BFS(sampleGraph(), 0), 0)
	assert.Len(t, first.Edges, 4)
}
