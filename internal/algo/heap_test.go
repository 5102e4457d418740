package algo

import (
	"testing"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapSort(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{nil, []int{}},
		{[]int{1}, []int{1}},
		{[]int{4, 10, 3, 5, 1}, []int{1, 3, 4, 5, 10}},
		{[]int{2, 2, 1, 2}, []int{1, 2, 2, 2}},
	}

	for _, tt := range tests {
		seq := HeapSort(tt.in)
		require.NoError(t, step.Validate(seq))
		last := lastOf[step.HeapStep](t, seq)
		assert.Equal(t, tt.want, last.Heap)
		assert.Zero(t, last.Size)
	}
}

func TestPriorityQueue(t *testing.T) {
	seq := PriorityQueue([]int{5, 3, 8, 1})
	require.NoError(t, step.Validate(seq))

	last := lastOf[step.HeapStep](t, seq)
	assert.Equal(t, []int{1, 3, 5, 8}, last.Output)
	assert.Empty(t, last.Heap)

	first := stepAt[step.HeapStep](t, seq, 0)
	assert.Equal(t, step.Insert, first.Kind)
	assert.Equal(t, []int{5}, first.Heap)
	assert.Equal(t, 1, first.Size)
}
