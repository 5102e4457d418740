package viz

import (
	"math"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// PlotStep paints the snapshot of s onto c, replacing its contents.
func PlotStep(c *Canvas, s step.Step) {
	c.Clear()
	switch st := s.(type) {
	case step.SortStep:
		c.DrawBars(st.Array)
	case step.SearchStep:
		c.DrawBars(searchWindow(st))
	case step.DPStep:
		c.DrawBars(dpBars(st))
	case step.GraphStep:
		plotGraph(c, st)
	case step.HeapStep:
		c.DrawBars(st.Heap)
	case step.TreeStep:
		plotTree(c, st)
	}
}

// searchWindow zeroes the values outside [Low, High] for binary search.
func searchWindow(s step.SearchStep) []int {
	out := slices.Clone(s.Array)
	if s.Low < 0 {
		return out
	}
	for i := range out {
		if i < s.Low || i > s.High {
			out[i] = 0
		}
	}
	return out
}

// dpBars picks the row to chart: the memo by key, the focused row, or the
// last row. Sentinel entries chart as zero.
func dpBars(s step.DPStep) []int {
	if len(s.Memo) > 0 {
		keys := make([]int, 0, len(s.Memo))
		for k := range s.Memo {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make([]int, len(keys))
		for i, k := range keys {
			out[i] = s.Memo[k]
		}
		return out
	}
	if len(s.Table) == 0 {
		return nil
	}
	row := len(s.Table) - 1
	if len(s.Cells) > 0 && s.Cells[0].Row < len(s.Table) {
		row = s.Cells[0].Row
	}
	out := slices.Clone(s.Table[row])
	if s.Sentinel > 0 {
		for i, v := range out {
			if v >= s.Sentinel {
				out[i] = 0
			}
		}
	}
	return out
}

func plotGraph(c *Canvas, s step.GraphStep) {
	n := len(s.Visited)
	if n == 0 {
		return
	}
	pw, ph := c.PixelSize()
	cx, cy := pw/2, ph/2
	radius := float64(min(pw, ph))/2 - 4
	pts := make([][2]int, n)
	for i := range pts {
		angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = [2]int{
			cx + int(math.Round(radius*math.Cos(angle))),
			cy + int(math.Round(radius*math.Sin(angle))),
		}
	}

	for _, e := range s.Edges {
		if e.From < n && e.To < n {
			c.DrawLine(pts[e.From][0], pts[e.From][1], pts[e.To][0], pts[e.To][1])
		}
	}
	for i, p := range pts {
		c.DrawCircle(p[0], p[1], 2)
		if s.Visited[i] {
			c.FillRect(p[0]-1, p[1]-1, p[0]+1, p[1]+1)
		}
	}
}

func plotTree(c *Canvas, s step.TreeStep) {
	pos := treeLayout(s.Nodes, s.Root)
	if len(pos) == 0 {
		return
	}
	pw, ph := c.PixelSize()
	xStep := float64(pw) / float64(len(pos)+1)
	yStep := float64(ph) / float64(treeDepth(pos)+1)
	at := func(i int) (int, int) {
		p := pos[i]
		return int(xStep * float64(p.x+1)), int(yStep * float64(p.depth+1))
	}

	for i := range pos {
		x0, y0 := at(i)
		for _, child := range []int{s.Nodes[i].Left, s.Nodes[i].Right} {
			if _, ok := pos[child]; ok {
				x1, y1 := at(child)
				c.DrawLine(x0, y0, x1, y1)
			}
		}
	}
	onPath := indexSet(s.Path)
	for i := range pos {
		x, y := at(i)
		c.DrawCircle(x, y, 2)
		if onPath[i] {
			c.FillRect(x-1, y-1, x+1, y+1)
		}
	}
}
