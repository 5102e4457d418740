package catalog

import (
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	intArray   = `{"type": "array", "items": {"type": "integer"}, "maxItems": 256}`
	smallArray = `{"type": "array", "items": {"type": "integer"}, "maxItems": 64}`
	edgeList   = `{"type": "array", "maxItems": 512, "items": {"type": "array", "items": {"type": "integer"}, "minItems": 2, "maxItems": 3}}`
)

func objectSchema(properties string, required ...string) string {
	req := "[]"
	if len(required) > 0 {
		req = `["` + required[0]
		for _, r := range required[1:] {
			req += `", "` + r
		}
		req += `"]`
	}
	return `{"type": "object", "additionalProperties": false, "required": ` + req + `, "properties": {` + properties + `}}`
}

var (
	arraySchema  = objectSchema(`"array": `+intArray, "array")
	searchSchema = objectSchema(`"array": `+intArray+`, "target": {"type": "integer"}`, "array", "target")
	valuesSchema = objectSchema(`"values": `+smallArray, "values")
	graphSchema  = objectSchema(`"nodes": {"type": "integer", "minimum": 0, "maximum": 64}, "edges": `+edgeList+
		`, "directed": {"type": "boolean"}, "start": {"type": "integer"}`, "nodes", "edges", "start")
)

func sortEntry(name, title, notes string, gen func([]int) *step.Sequence) *Entry {
	return newEntry(name, step.Sorting, title, notes, arraySchema,
		map[string]any{"array": []int{5, 1, 4, 2, 8, 3}},
		func(p ArrayParams) *step.Sequence { return gen(p.Array) })
}

func graphEntry(name, title, notes string, defaults map[string]any, gen func(algo.Graph, int) *step.Sequence) *Entry {
	return newEntry(name, step.Graph, title, notes, graphSchema, defaults,
		func(p GraphParams) *step.Sequence { return gen(p.Graph(), p.Start) })
}

func sampleGraph(weighted bool) map[string]any {
	edges := [][]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 5}}
	if weighted {
		edges = [][]int{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3}}
	}
	return map[string]any{"nodes": 6, "edges": edges, "directed": weighted, "start": 0}
}

func builtins() []*Entry {
	return []*Entry{
		newEntry("linear_search", step.Searching, "Linear search", notesLinear,
			searchSchema,
			map[string]any{"array": []int{5, 3, 8, 1}, "target": 8},
			func(p SearchParams) *step.Sequence { return algo.LinearSearch(p.Array, p.Target) }),
		newEntry("binary_search", step.Searching, "Binary search", notesBinary,
			searchSchema,
			map[string]any{"array": []int{1, 3, 5, 7, 9, 11}, "target": 4},
			func(p SearchParams) *step.Sequence { return algo.BinarySearch(p.SortedArray(), p.Target) }),

		sortEntry("bubble_sort", "Bubble sort", notesBubble, algo.BubbleSort),
		sortEntry("selection_sort", "Selection sort", notesSelection, algo.SelectionSort),
		sortEntry("insertion_sort", "Insertion sort", notesInsertion, algo.InsertionSort),
		sortEntry("merge_sort", "Merge sort", notesMerge, algo.MergeSort),
		sortEntry("quick_sort", "Quick sort", notesQuick, algo.QuickSort),

		newEntry("heap_sort", step.Heap, "Heap sort", notesHeapSort, arraySchema,
			map[string]any{"array": []int{4, 10, 3, 5, 1, 8}},
			func(p ArrayParams) *step.Sequence { return algo.HeapSort(p.Array) }),
		newEntry("priority_queue", step.Heap, "Priority queue (min-heap)", notesPriorityQueue, valuesSchema,
			map[string]any{"values": []int{5, 3, 8, 1, 9, 2}},
			func(p ValuesParams) *step.Sequence { return algo.PriorityQueue(p.Values) }),

		newEntry("coin_change", step.DP, "Coin change (fewest coins)", notesCoin,
			objectSchema(`"coins": `+smallArray+`, "amount": {"type": "integer"}`, "coins", "amount"),
			map[string]any{"coins": []int{1, 3, 4}, "amount": 6},
			func(p CoinParams) *step.Sequence { return algo.CoinChange(p.Coins, p.Amount) }),
		newEntry("lcs", step.DP, "Longest common subsequence", notesLCS,
			objectSchema(`"a": {"type": "string", "maxLength": 64}, "b": {"type": "string", "maxLength": 64}`, "a", "b"),
			map[string]any{"a": "ABCBDAB", "b": "BDCAB"},
			func(p LCSParams) *step.Sequence { return algo.LCS(p.A, p.B) }),
		newEntry("fibonacci_memo", step.DP, "Fibonacci (memoized)", notesFibMemo,
			objectSchema(`"n": {"type": "integer"}`, "n"),
			map[string]any{"n": 6},
			func(p FibParams) *step.Sequence { return algo.FibonacciMemo(p.N) }),
		newEntry("fibonacci_tab", step.DP, "Fibonacci (tabulated)", notesFibTab,
			objectSchema(`"n": {"type": "integer"}`, "n"),
			map[string]any{"n": 10},
			func(p FibParams) *step.Sequence { return algo.FibonacciTab(p.N) }),
		newEntry("knapsack", step.DP, "0/1 knapsack", notesKnapsack,
			objectSchema(`"weights": `+smallArray+`, "values": `+smallArray+`, "capacity": {"type": "integer"}`, "weights", "values", "capacity"),
			map[string]any{"weights": []int{1, 3, 4, 5}, "values": []int{1, 4, 5, 7}, "capacity": 7},
			func(p KnapsackParams) *step.Sequence { return algo.Knapsack(p.Weights, p.Values, p.Capacity) }),

		graphEntry("bfs", "Breadth-first search", notesBFS, sampleGraph(false), algo.BFS),
		graphEntry("dfs", "Depth-first search", notesDFS, sampleGraph(false), algo.DFS),
		graphEntry("dijkstra", "Dijkstra shortest paths", notesDijkstra, sampleGraph(true), algo.Dijkstra),

		newEntry("bst_build", step.Tree, "Binary search tree insert", notesBSTBuild, valuesSchema,
			map[string]any{"values": []int{50, 30, 70, 20, 40, 60, 80}},
			func(p ValuesParams) *step.Sequence { return algo.BSTBuild(p.Values) }),
		newEntry("bst_traverse", step.Tree, "Binary search tree traversal", notesBSTTraverse,
			objectSchema(`"values": `+smallArray+`, "order": {"enum": ["inorder", "preorder", "postorder", "levelorder"]}`, "values", "order"),
			map[string]any{"values": []int{50, 30, 70, 20, 40, 60, 80}, "order": algo.InOrder},
			func(p TraversalParams) *step.Sequence { return algo.BSTTraverse(p.Values, p.Order) }),
	}
}
