package viz

import "github.com/san-kum/algoviz/internal/step"

type treePos struct {
	x, depth int
}

// treeLayout places nodes by in-order rank and depth.
func treeLayout(nodes []step.Node, root int) map[int]treePos {
	pos := make(map[int]treePos, len(nodes))
	rank := 0
	var walk func(i, depth int)
	walk = func(i, depth int) {
		if i < 0 || i >= len(nodes) || depth > len(nodes) {
			return
		}
		if _, seen := pos[i]; seen {
			return
		}
		walk(nodes[i].Left, depth+1)
		pos[i] = treePos{x: rank, depth: depth}
		rank++
		walk(nodes[i].Right, depth+1)
	}
	walk(root, 0)
	return pos
}

func treeDepth(pos map[int]treePos) int {
	d := 0
	for _, p := range pos {
		d = max(d, p.depth+1)
	}
	return d
}

func indexSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
