package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// Traversal orders accepted by BSTTraverse.
const (
	InOrder    = "inorder"
	PreOrder   = "preorder"
	PostOrder  = "postorder"
	LevelOrder = "levelorder"
)

// TraversalOrders lists the supported orders.
func TraversalOrders() []string {
	return []string{InOrder, PreOrder, PostOrder, LevelOrder}
}

type treeTrace struct {
	rec    *step.Recorder
	nodes  []step.Node
	root   int
	path   []int
	output []int
	c      step.Counters
}

func newTreeTrace(name string) *treeTrace {
	return &treeTrace{rec: step.NewRecorder(name), root: -1}
}

func (t *treeTrace) emit(kind step.Kind, focus []int, format string, args ...any) {
	t.rec.Emit(step.TreeStep{
		Header: step.Header{
			Kind:     kind,
			Focus:    focus,
			Message:  fmt.Sprintf(format, args...),
			Counters: t.c,
		},
		Nodes:  step.CloneNodes(t.nodes),
		Root:   t.root,
		Path:   step.CloneInts(t.path),
		Output: step.CloneInts(t.output),
	})
}

func (t *treeTrace) newNode(v int) int {
	t.nodes = append(t.nodes, step.Node{Value: v, Left: -1, Right: -1})
	t.c.Writes++
	return len(t.nodes) - 1
}

// insert places v, emitting steps when quiet is false. It reports whether a
// node was added.
func (t *treeTrace) insert(v int, quiet bool) bool {
	if t.root == -1 {
		t.root = t.newNode(v)
		t.path = []int{t.root}
		if !quiet {
			t.emit(step.Insert, []int{t.root}, "%d becomes the root", v)
		}
		return true
	}

	t.path = t.path[:0]
	cur := t.root
	for {
		t.path = append(t.path, cur)
		node := t.nodes[cur]
		if !quiet {
			t.c.Comparisons++
		}
		if v == node.Value {
			if !quiet {
				t.emit(step.Duplicate, []int{cur}, "%d already present, ignored", v)
			}
			return false
		}

		left := v < node.Value
		next, side, rel := node.Right, "right", ">"
		if left {
			next, side, rel = node.Left, "left", "<"
		}
		if !quiet {
			t.emit(step.Compare, []int{cur}, "%d %s %d, go %s", v, rel, node.Value, side)
		}
		if next != -1 {
			cur = next
			continue
		}

		idx := t.newNode(v)
		if left {
			t.nodes[cur].Left = idx
		} else {
			t.nodes[cur].Right = idx
		}
		t.path = append(t.path, idx)
		if !quiet {
			t.emit(step.Insert, []int{idx}, "Insert %d as %s child of %d", v, side, node.Value)
		}
		return true
	}
}

func (t *treeTrace) height(i int) int {
	if i == -1 {
		return 0
	}
	return 1 + max(t.height(t.nodes[i].Left), t.height(t.nodes[i].Right))
}

// BSTBuild inserts values in order into an unbalanced binary search tree.
func BSTBuild(values []int) *step.Sequence {
	t := newTreeTrace("bst_build")
	for _, v := range values {
		t.insert(v, false)
	}
	t.path = nil
	t.emit(step.Complete, nil, "BST built: %d nodes, height %d", len(t.nodes), t.height(t.root))
	return t.rec.Sequence()
}

// BSTTraverse builds the tree without emitting steps and then walks it in
// the given order.
func BSTTraverse(values []int, order string) *step.Sequence {
	t := newTreeTrace("bst_traverse")
	for _, v := range values {
		t.insert(v, true)
	}
	t.c = step.Counters{}
	t.path = []int{}
	t.output = []int{}

	switch order {
	case InOrder, PreOrder, PostOrder:
		t.walk(t.root, order)
	case LevelOrder:
		t.levels()
	default:
		t.emit(step.Complete, nil, "Unknown traversal order %q", order)
		return t.rec.Sequence()
	}

	t.path = nil
	t.emit(step.Complete, nil, "%s traversal: %s", order, joinInts(t.output))
	return t.rec.Sequence()
}

func (t *treeTrace) walk(i int, order string) {
	if i == -1 {
		return
	}
	t.c.CallCount++
	t.path = append(t.path, i)
	n := t.nodes[i]

	if order == PreOrder {
		t.visit(i)
	}
	t.walk(n.Left, order)
	if order == InOrder {
		t.visit(i)
	}
	t.walk(n.Right, order)
	if order == PostOrder {
		t.visit(i)
	}
	t.path = t.path[:len(t.path)-1]
}

func (t *treeTrace) visit(i int) {
	t.output = append(t.output, t.nodes[i].Value)
	t.emit(step.Visit, []int{i}, "Visit %d", t.nodes[i].Value)
}

func (t *treeTrace) levels() {
	if t.root == -1 {
		return
	}
	queue := []int{t.root}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		n := t.nodes[i]
		for _, child := range []int{n.Left, n.Right} {
			if child != -1 {
				queue = append(queue, child)
			}
		}
		// Path holds the pending queue in level order.
		t.path = append(t.path[:0], queue...)
		t.visit(i)
	}
}
