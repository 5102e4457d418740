package algo

import (
	"fmt"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// Graph is an adjacency list over vertices 0..Nodes-1. Neighbours are
// explored in insertion order.
type Graph struct {
	Nodes    int
	Adj      [][]step.Edge
	Directed bool
}

// NewGraph builds a graph, dropping edges whose endpoints are out of range.
// Undirected edges are stored in both directions.
func NewGraph(nodes int, edges []step.Edge, directed bool) Graph {
	if nodes < 0 {
		nodes = 0
	}
	g := Graph{Nodes: nodes, Adj: make([][]step.Edge, nodes), Directed: directed}
	for _, e := range edges {
		if e.From < 0 || e.From >= nodes || e.To < 0 || e.To >= nodes {
			continue
		}
		g.Adj[e.From] = append(g.Adj[e.From], e)
		if !directed && e.From != e.To {
			g.Adj[e.To] = append(g.Adj[e.To], step.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}
	return g
}

// Edges lists every edge once; undirected edges appear as stored from the
// lower endpoint.
func (g Graph) Edges() []step.Edge {
	out := []step.Edge{}
	for _, adj := range g.Adj {
		for _, e := range adj {
			if g.Directed || e.From <= e.To {
				out = append(out, e)
			}
		}
	}
	return out
}

type graphTrace struct {
	rec      *step.Recorder
	edges    []step.Edge
	visited  []bool
	frontier []int
	dist     []int
	order    []int
	c        step.Counters
}

func newGraphTrace(name string, g Graph) *graphTrace {
	return &graphTrace{
		rec:      step.NewRecorder(name),
		edges:    g.Edges(),
		visited:  make([]bool, g.Nodes),
		frontier: make([]int, 0, g.Nodes),
		order:    make([]int, 0, g.Nodes),
	}
}

func (t *graphTrace) emit(kind step.Kind, focus []int, edge *step.Edge, format string, args ...any) {
	var e *step.Edge
	if edge != nil {
		cp := *edge
		e = &cp
	}
	t.rec.Emit(step.GraphStep{
		Header: step.Header{
			Kind:     kind,
			Focus:    focus,
			Message:  fmt.Sprintf(format, args...),
			Counters: t.c,
		},
		Edges:    step.CloneEdges(t.edges),
		Visited:  step.CloneBools(t.visited),
		Frontier: step.CloneInts(t.frontier),
		Dist:     step.CloneInts(t.dist),
		Order:    step.CloneInts(t.order),
		Edge:     e,
	})
}

// startOutOfRange emits the single terminal step for a bad start vertex.
func (t *graphTrace) startOutOfRange(g Graph, start int) bool {
	if start >= 0 && start < g.Nodes {
		return false
	}
	t.emit(step.Complete, nil, nil, "Start vertex %d is outside 0..%d", start, g.Nodes-1)
	return true
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " → ")
}

// BFS is a breadth-first traversal from start.
func BFS(g Graph, start int) *step.Sequence {
	t := newGraphTrace("bfs", g)
	if t.startOutOfRange(g, start) {
		return t.rec.Sequence()
	}

	t.visited[start] = true
	t.frontier = append(t.frontier, start)
	t.emit(step.Enqueue, []int{start}, nil, "Enqueue start vertex %d", start)

	for len(t.frontier) > 0 {
		u := t.frontier[0]
		t.frontier = t.frontier[1:]
		t.order = append(t.order, u)
		t.emit(step.Dequeue, []int{u}, nil, "Dequeue %d and visit it", u)

		for _, e := range g.Adj[u] {
			t.c.Comparisons++
			if t.visited[e.To] {
				t.emit(step.Explore, []int{u, e.To}, &e, "Edge %d → %d: %d already discovered", u, e.To, e.To)
				continue
			}
			t.visited[e.To] = true
			t.frontier = append(t.frontier, e.To)
			t.emit(step.Enqueue, []int{e.To}, &e, "Edge %d → %d: discover and enqueue %d", u, e.To, e.To)
		}
	}

	t.emit(step.Complete, nil, nil, "BFS order from %d: %s", start, joinInts(t.order))
	return t.rec.Sequence()
}

// DFS is an iterative depth-first traversal from start. Neighbours are
// pushed in reverse so they are visited in adjacency order.
func DFS(g Graph, start int) *step.Sequence {
	t := newGraphTrace("dfs", g)
	if t.startOutOfRange(g, start) {
		return t.rec.Sequence()
	}

	t.frontier = append(t.frontier, start)
	t.emit(step.Push, []int{start}, nil, "Push start vertex %d", start)

	for len(t.frontier) > 0 {
		u := t.frontier[len(t.frontier)-1]
		t.frontier = t.frontier[:len(t.frontier)-1]
		if t.visited[u] {
			t.emit(step.Pop, []int{u}, nil, "Pop %d: already visited, skip", u)
			continue
		}
		t.visited[u] = true
		t.order = append(t.order, u)
		t.emit(step.Visit, []int{u}, nil, "Pop %d and visit it", u)

		adj := g.Adj[u]
		for i := len(adj) - 1; i >= 0; i-- {
			e := adj[i]
			t.c.Comparisons++
			if t.visited[e.To] {
				t.emit(step.Explore, []int{u, e.To}, &e, "Edge %d → %d: %d already visited", u, e.To, e.To)
				continue
			}
			t.frontier = append(t.frontier, e.To)
			t.emit(step.Push, []int{e.To}, &e, "Edge %d → %d: push %d", u, e.To, e.To)
		}
	}

	t.emit(step.Complete, nil, nil, "DFS order from %d: %s", start, joinInts(t.order))
	return t.rec.Sequence()
}

// Dijkstra settles the nearest unvisited vertex each round (ties go to the
// lower index). Negative weights terminate but give no shortest-path
// guarantee.
func Dijkstra(g Graph, start int) *step.Sequence {
	t := newGraphTrace("dijkstra", g)
	if t.startOutOfRange(g, start) {
		return t.rec.Sequence()
	}

	t.dist = make([]int, g.Nodes)
	for i := range t.dist {
		t.dist[i] = step.Unreachable
	}
	t.dist[start] = 0
	t.refreshFrontier()
	t.emit(step.Init, []int{start}, nil, "dist[%d] = 0, every other vertex ∞", start)

	for {
		u := -1
		for v := 0; v < g.Nodes; v++ {
			if t.visited[v] || t.dist[v] == step.Unreachable {
				continue
			}
			if u == -1 || t.dist[v] < t.dist[u] {
				u = v
			}
		}
		if u == -1 {
			break
		}

		t.visited[u] = true
		t.order = append(t.order, u)
		t.refreshFrontier()
		t.emit(step.Visit, []int{u}, nil, "Settle %d at distance %d", u, t.dist[u])

		for _, e := range g.Adj[u] {
			if t.visited[e.To] {
				continue
			}
			t.c.Comparisons++
			nd := t.dist[u] + e.Weight
			if t.dist[e.To] == step.Unreachable || nd < t.dist[e.To] {
				old := distString(t.dist[e.To])
				t.dist[e.To] = nd
				t.c.Writes++
				t.refreshFrontier()
				t.emit(step.Relax, []int{u, e.To}, &e, "Relax %d → %d (w=%d): %s → %d", u, e.To, e.Weight, old, nd)
				continue
			}
			t.emit(step.Explore, []int{u, e.To}, &e, "Edge %d → %d (w=%d): %d + %d >= %d, keep", u, e.To, e.Weight, t.dist[u], e.Weight, t.dist[e.To])
		}
	}

	parts := make([]string, g.Nodes)
	for v, d := range t.dist {
		parts[v] = fmt.Sprintf("%d:%s", v, distString(d))
	}
	t.emit(step.Complete, nil, nil, "Shortest distances from %d: %s", start, strings.Join(parts, " "))
	return t.rec.Sequence()
}

func (t *graphTrace) refreshFrontier() {
	t.frontier = t.frontier[:0]
	for v, d := range t.dist {
		if !t.visited[v] && d != step.Unreachable {
			t.frontier = append(t.frontier, v)
		}
	}
}

func distString(d int) string {
	if d == step.Unreachable {
		return "∞"
	}
	return fmt.Sprint(d)
}
