package algo

import (
	"testing"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generator struct {
	name string
	gen  func() *step.Sequence
}

func sampleGraph() Graph {
	return NewGraph(4, []step.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}}, false)
}

func generators() []generator {
	return []generator{
		{"linear found", func() *step.Sequence { return LinearSearch([]int{5, 3, 8, 1}, 8) }},
		{"linear empty", func() *step.Sequence { return LinearSearch(nil, 1) }},
		{"binary miss", func() *step.Sequence { return BinarySearch([]int{1, 3, 5, 7, 9, 11}, 4) }},
		{"binary empty", func() *step.Sequence { return BinarySearch([]int{}, 4) }},
		{"bubble", func() *step.Sequence { return BubbleSort([]int{5, 1, 4, 2, 8}) }},
		{"bubble sorted", func() *step.Sequence { return BubbleSort([]int{1, 2, 3}) }},
		{"selection", func() *step.Sequence { return SelectionSort([]int{64, 25, 12, 22, 11}) }},
		{"insertion", func() *step.Sequence { return InsertionSort([]int{3, 3, 1, 2}) }},
		{"merge", func() *step.Sequence { return MergeSort([]int{38, 27, 43, 3, 9, 82, 10}) }},
		{"quick", func() *step.Sequence { return QuickSort([]int{10, 80, 30, 90, 40, 50, 70}) }},
		{"quick empty", func() *step.Sequence { return QuickSort(nil) }},
		{"coin change", func() *step.Sequence { return CoinChange([]int{1, 3, 4}, 6) }},
		{"coin impossible", func() *step.Sequence { return CoinChange([]int{2}, 3) }},
		{"coin negative", func() *step.Sequence { return CoinChange([]int{1}, -1) }},
		{"lcs", func() *step.Sequence { return LCS("ABCBDAB", "BDCAB") }},
		{"lcs empty", func() *step.Sequence { return LCS("", "ABC") }},
		{"fib memo", func() *step.Sequence { return FibonacciMemo(6) }},
		{"fib tab", func() *step.Sequence { return FibonacciTab(10) }},
		{"fib negative", func() *step.Sequence { return FibonacciTab(-3) }},
		{"knapsack", func() *step.Sequence { return Knapsack([]int{1, 3, 4, 5}, []int{1, 4, 5, 7}, 7) }},
		{"bfs", func() *step.Sequence { return BFS(sampleGraph(), 0) }},
		{"dfs", func() *step.Sequence { return DFS(sampleGraph(), 0) }},
		{"dijkstra", func() *step.Sequence { return Dijkstra(sampleGraph(), 3) }},
		{"bfs bad start", func() *step.Sequence { return BFS(sampleGraph(), 9) }},
		{"heap sort", func() *step.Sequence { return HeapSort([]int{4, 10, 3, 5, 1}) }},
		{"priority queue", func() *step.Sequence { return PriorityQueue([]int{5, 3, 8, 1}) }},
		{"bst build", func() *step.Sequence { return BSTBuild([]int{50, 30, 70, 20, 40, 30}) }},
		{"bst traverse", func() *step.Sequence { return BSTTraverse([]int{50, 30, 70}, LevelOrder) }},
	}
}

func TestGenerators_WellFormed(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			seq := g.gen()
			require.NoError(t, step.Validate(seq))

			last, ok := seq.Last()
			require.True(t, ok)
			assert.True(t, last.Head().Kind.Terminal())
			assert.NotEmpty(t, last.Head().Message)
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	for _, g := range generators() {
		t.Run(g.name, func(t *testing.T) {
			assert.Equal(t, g.gen(), g.gen())
		})
	}
}

func lastOf[T step.Step](t *testing.T, seq *step.Sequence) T {
	t.Helper()
	s, ok := seq.Last()
	require.True(t, ok)
	v, ok := s.(T)
	require.Truef(t, ok, "last step is %T", s)
	return v
}

func stepAt[T step.Step](t *testing.T, seq *step.Sequence, i int) T {
	t.Helper()
	s, ok := seq.At(i)
	require.True(t, ok)
	v, ok := s.(T)
	require.Truef(t, ok, "step %d is %T", i, s)
	return v
}
