package algo

import (
	"slices"
	"testing"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSorts_ProduceSortedArray(t *testing.T) {
	sorts := map[string]func([]int) *step.Sequence{
		"bubble":    BubbleSort,
		"selection": SelectionSort,
		"insertion": InsertionSort,
		"merge":     MergeSort,
		"quick":     QuickSort,
	}
	inputs := [][]int{
		{},
		{7},
		{2, 1},
		{5, 1, 4, 2, 8},
		{3, 3, 3},
		{9, 8, 7, 6, 5, 4, 3, 2, 1},
		{-4, 10, 0, -4, 6},
	}

	for name, sortFn := range sorts {
		for _, in := range inputs {
			want := slices.Clone(in)
			slices.Sort(want)

			seq := sortFn(in)
			require.NoError(t, step.Validate(seq), "%s %v", name, in)

			last := lastOf[step.SortStep](t, seq)
			assert.Equal(t, step.Complete, last.Kind)
			assert.Equal(t, want, last.Array, "%s %v", name, in)
			for i, done := range last.Sorted {
				assert.True(t, done, "%s %v index %d", name, in, i)
			}
		}
	}
}

func TestBubbleSort_EarlyExit(t *testing.T) {
	seq := BubbleSort([]int{1, 2, 3, 4})
	last := lastOf[step.SortStep](t, seq)
	assert.Equal(t, 3, last.Counters.Comparisons)
	assert.Zero(t, last.Counters.Swaps)
}

func TestSortSnapshots_Independent(t *testing.T) {
	in := []int{3, 1, 2}
	seq := BubbleSort(in)
	assert.Equal(t, []int{3, 1, 2}, in)

	first := stepAt[step.SortStep](t, seq, 0)
	first.Array[0] = 99

	again := stepAt[step.SortStep](t, seq, 0)
	assert.Equal(t, 3, again.Array[0])
}

func TestSwapCounter_MatchesSwapSteps(t *testing.T) {
	seq := SelectionSort([]int{64, 25, 12, 22, 11})
	var swaps int
	for _, s := range seq.Steps() {
		if s.Head().Kind == step.Swap {
			swaps++
		}
	}
	assert.Equal(t, swaps, lastOf[step.SortStep](t, seq).Counters.Swaps)
}
