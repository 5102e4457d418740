package step

import "slices"

func CloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	c := make([]int, len(s))
	copy(c, s)
	return c
}

func CloneBools(s []bool) []bool {
	if s == nil {
		return nil
	}
	c := make([]bool, len(s))
	copy(c, s)
	return c
}

func CloneTable(t [][]int) [][]int {
	if t == nil {
		return nil
	}
	c := make([][]int, len(t))
	for i, row := range t {
		c[i] = CloneInts(row)
	}
	return c
}

func CloneMemo(m map[int]int) map[int]int {
	c := make(map[int]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

func CloneNodes(n []Node) []Node {
	c := make([]Node, len(n))
	copy(c, n)
	return c
}

func CloneEdges(e []Edge) []Edge {
	if e == nil {
		return nil
	}
	c := make([]Edge, len(e))
	copy(c, e)
	return c
}

// Clone deep-copies the payload of s, so a caller can mutate the result
// without touching the sequence it came from.
func Clone(s Step) Step {
	switch st := s.(type) {
	case SortStep:
		st.Header = st.Header.clone()
		st.Array = CloneInts(st.Array)
		st.Sorted = CloneBools(st.Sorted)
		return st
	case SearchStep:
		st.Header = st.Header.clone()
		st.Array = CloneInts(st.Array)
		if st.Discarded != nil {
			r := *st.Discarded
			st.Discarded = &r
		}
		return st
	case DPStep:
		st.Header = st.Header.clone()
		st.Table = CloneTable(st.Table)
		st.RowLabels = slices.Clone(st.RowLabels)
		st.ColLabels = slices.Clone(st.ColLabels)
		st.Cells = slices.Clone(st.Cells)
		if st.Memo != nil {
			st.Memo = CloneMemo(st.Memo)
		}
		st.Stack = CloneInts(st.Stack)
		return st
	case GraphStep:
		st.Header = st.Header.clone()
		st.Edges = CloneEdges(st.Edges)
		st.Visited = CloneBools(st.Visited)
		st.Frontier = CloneInts(st.Frontier)
		st.Dist = CloneInts(st.Dist)
		st.Order = CloneInts(st.Order)
		if st.Edge != nil {
			e := *st.Edge
			st.Edge = &e
		}
		return st
	case HeapStep:
		st.Header = st.Header.clone()
		st.Heap = CloneInts(st.Heap)
		st.Output = CloneInts(st.Output)
		return st
	case TreeStep:
		st.Header = st.Header.clone()
		st.Nodes = slices.Clone(st.Nodes)
		st.Path = CloneInts(st.Path)
		st.Output = CloneInts(st.Output)
		return st
	}
	return s
}

func (h Header) clone() Header {
	h.Focus = CloneInts(h.Focus)
	return h
}
