package algo

import (
	"testing"

	"github.com/san-kum/algoviz/internal/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var treeValues = []int{50, 30, 70, 20, 40, 30}

func TestBSTBuild(t *testing.T) {
	seq := BSTBuild(treeValues)
	last := lastOf[step.TreeStep](t, seq)

	require.Len(t, last.Nodes, 5)
	assert.Equal(t, 0, last.Root)
	assert.Equal(t, 50, last.Nodes[0].Value)
	assert.Equal(t, 30, last.Nodes[last.Nodes[0].Left].Value)
	assert.Equal(t, 70, last.Nodes[last.Nodes[0].Right].Value)
	assert.Contains(t, last.Message, "height 3")

	var dups int
	for _, s := range seq.Steps() {
		if s.Head().Kind == step.Duplicate {
			dups++
		}
	}
	assert.Equal(t, 1, dups)
}

func TestBSTBuild_Empty(t *testing.T) {
	last := lastOf[step.TreeStep](t, BSTBuild(nil))
	assert.Equal(t, -1, last.Root)
	assert.Empty(t, last.Nodes)
}

func TestBSTTraverse(t *testing.T) {
	tests := []struct {
		order string
		want  []int
	}{
		{InOrder, []int{20, 30, 40, 50, 70}},
		{PreOrder, []int{50, 30, 20, 40, 70}},
		{PostOrder, []int{20, 40, 30, 70, 50}},
		{LevelOrder, []int{50, 30, 70, 20, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			seq := BSTTraverse(treeValues, tt.order)
			require.NoError(t, step.Validate(seq))
			assert.Equal(t, tt.want, lastOf[step.TreeStep](t, seq).Output)
		})
	}
}

func TestBSTTraverse_UnknownOrder(t *testing.T) {
	seq := BSTTraverse(treeValues, "zigzag")
	require.Equal(t, 1, seq.Len())
	assert.Contains(t, lastOf[step.TreeStep](t, seq).Message, "zigzag")
}
