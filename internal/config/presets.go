package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnknownPreset indicates an algorithm or preset name with no entry.
var ErrUnknownPreset = errors.New("config: unknown preset")

type Preset struct {
	Description string
	Params      map[string]any
}

func sortPresets(key string) map[string]*Preset {
	return map[string]*Preset{
		"random":     {Description: "unordered input", Params: map[string]any{key: []int{5, 1, 4, 2, 8, 3}}},
		"sorted":     {Description: "already in order", Params: map[string]any{key: []int{1, 2, 3, 4, 5, 6, 7, 8}}},
		"reversed":   {Description: "strictly decreasing", Params: map[string]any{key: []int{8, 7, 6, 5, 4, 3, 2, 1}}},
		"duplicates": {Description: "repeated values", Params: map[string]any{key: []int{3, 1, 3, 2, 1, 2}}},
		"single":     {Description: "one element", Params: map[string]any{key: []int{42}}},
	}
}

func graphPresets(weighted bool) map[string]*Preset {
	w := func(e ...int) []int {
		if weighted {
			return e
		}
		return e[:2]
	}
	return map[string]*Preset{
		"tree": {Description: "binary tree shaped graph", Params: map[string]any{
			"nodes": 7, "directed": false, "start": 0,
			"edges": [][]int{w(0, 1, 2), w(0, 2, 3), w(1, 3, 1), w(1, 4, 4), w(2, 5, 2), w(2, 6, 1)},
		}},
		"cycle": {Description: "ring with a chord", Params: map[string]any{
			"nodes": 5, "directed": false, "start": 0,
			"edges": [][]int{w(0, 1, 1), w(1, 2, 1), w(2, 3, 1), w(3, 4, 1), w(4, 0, 1), w(0, 2, 3)},
		}},
		"disconnected": {Description: "two components", Params: map[string]any{
			"nodes": 6, "directed": weighted, "start": 0,
			"edges": [][]int{w(0, 1, 2), w(1, 2, 2), w(3, 4, 1), w(4, 5, 1)},
		}},
	}
}

func treePresets() map[string]*Preset {
	return map[string]*Preset{
		"balanced":   {Description: "inserts that keep the tree balanced", Params: map[string]any{"values": []int{50, 30, 70, 20, 40, 60, 80}}},
		"skewed":     {Description: "sorted inserts build a linked list", Params: map[string]any{"values": []int{10, 20, 30, 40, 50}}},
		"duplicates": {Description: "repeated keys are ignored", Params: map[string]any{"values": []int{8, 3, 10, 3, 8, 1}}},
	}
}

var Presets = map[string]map[string]*Preset{
	"linear_search": {
		"found":   {Description: "target in the middle", Params: map[string]any{"array": []int{5, 3, 8, 1}, "target": 8}},
		"missing": {Description: "target absent", Params: map[string]any{"array": []int{4, 2, 7}, "target": 9}},
		"empty":   {Description: "no elements", Params: map[string]any{"array": []int{}, "target": 1}},
	},
	"binary_search": {
		"missing": {Description: "target between elements", Params: map[string]any{"array": []int{1, 3, 5, 7, 9, 11}, "target": 4}},
		"found":   {Description: "target present", Params: map[string]any{"array": []int{2, 4, 6, 8, 10, 12, 14}, "target": 10}},
		"edge":    {Description: "target is the last element", Params: map[string]any{"array": []int{1, 2, 3, 4, 5, 6, 7, 8}, "target": 8}},
	},
	"bubble_sort":    sortPresets("array"),
	"selection_sort": sortPresets("array"),
	"insertion_sort": sortPresets("array"),
	"merge_sort":     sortPresets("array"),
	"quick_sort":     sortPresets("array"),
	"heap_sort":      sortPresets("array"),
	"priority_queue": sortPresets("values"),
	"coin_change": {
		"classic":    {Description: "greedy fails, dp finds 3+3", Params: map[string]any{"coins": []int{1, 3, 4}, "amount": 6}},
		"impossible": {Description: "odd amount with even coins", Params: map[string]any{"coins": []int{2}, "amount": 3}},
		"us":         {Description: "US coins", Params: map[string]any{"coins": []int{1, 5, 10, 25}, "amount": 63}},
	},
	"lcs": {
		"classic":   {Description: "textbook pair", Params: map[string]any{"a": "ABCBDAB", "b": "BDCAB"}},
		"disjoint":  {Description: "no common characters", Params: map[string]any{"a": "ABC", "b": "XYZ"}},
		"identical": {Description: "same string", Params: map[string]any{"a": "GOLANG", "b": "GOLANG"}},
	},
	"fibonacci_memo": {
		"small":  {Description: "n = 5", Params: map[string]any{"n": 5}},
		"medium": {Description: "n = 12", Params: map[string]any{"n": 12}},
	},
	"fibonacci_tab": {
		"small":  {Description: "n = 5", Params: map[string]any{"n": 5}},
		"medium": {Description: "n = 20", Params: map[string]any{"n": 20}},
	},
	"knapsack": {
		"classic": {Description: "four items, capacity 7", Params: map[string]any{"weights": []int{1, 3, 4, 5}, "values": []int{1, 4, 5, 7}, "capacity": 7}},
		"heavy":   {Description: "nothing fits", Params: map[string]any{"weights": []int{9, 10}, "values": []int{5, 6}, "capacity": 5}},
	},
	"bfs":          graphPresets(false),
	"dfs":          graphPresets(false),
	"dijkstra":     graphPresets(true),
	"bst_build":    treePresets(),
	"bst_traverse": treePresets(),
}

// GetPreset returns the named preset for an algorithm.
func GetPreset(algorithm, preset string) (*Preset, error) {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: no presets for %s", ErrUnknownPreset, algorithm)
	}
	p, ok := algoPresets[preset]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPreset, algorithm, preset)
	}
	return p, nil
}

// ListPresets returns preset names for an algorithm, sorted.
func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(algoPresets))
}
