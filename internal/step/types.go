package step

// Counters are running totals carried by every step. Generators only ever
// increase them.
type Counters struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Writes      int `json:"writes"`
	CallCount   int `json:"callCount"`
}

// AtLeast reports whether every counter in c is >= the same counter in prev.
func (c Counters) AtLeast(prev Counters) bool {
	return c.Comparisons >= prev.Comparisons &&
		c.Swaps >= prev.Swaps &&
		c.Writes >= prev.Writes &&
		c.CallCount >= prev.CallCount
}

// Header is the part of a step shared by every family.
type Header struct {
	Kind     Kind     `json:"kind"`
	Focus    []int    `json:"focus,omitempty"`
	Message  string   `json:"message"`
	Counters Counters `json:"counters"`
}

func (h Header) Head() Header { return h }

func (Header) sealed() {}

// Step is implemented only by the family types in this package, so a type
// switch over them is exhaustive.
type Step interface {
	Head() Header
	Family() Family
	sealed()
}

// SortStep is a snapshot of an in-place sort.
type SortStep struct {
	Header
	Array  []int  `json:"array"`
	Sorted []bool `json:"sorted"`
}

func (SortStep) Family() Family { return Sorting }

// Range is an inclusive index interval.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// SearchStep is a snapshot of a search over an array. Low, High and Mid are
// -1 when they do not apply; Index is the match position or -1.
type SearchStep struct {
	Header
	Array     []int  `json:"array"`
	Target    int    `json:"target"`
	Low       int    `json:"low"`
	High      int    `json:"high"`
	Mid       int    `json:"mid"`
	Discarded *Range `json:"discarded,omitempty"`
	Index     int    `json:"index"`
}

func (SearchStep) Family() Family { return Searching }

// Cell addresses a DP table entry.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DPStep is a snapshot of a dynamic-programming table or memo. One
// dimensional tables are stored as a single row. Answer is -1 when there is
// no answer yet or none exists.
type DPStep struct {
	Header
	Table     [][]int     `json:"table,omitempty"`
	RowLabels []string    `json:"rowLabels,omitempty"`
	ColLabels []string    `json:"colLabels,omitempty"`
	Cells     []Cell      `json:"cells,omitempty"`
	Memo      map[int]int `json:"memo,omitempty"`
	Stack     []int       `json:"stack,omitempty"`
	Sentinel  int         `json:"sentinel,omitempty"`
	Answer    int         `json:"answer"`
	Result    string      `json:"result,omitempty"`
}

func (DPStep) Family() Family { return DP }

// Unreachable marks a graph distance that has not been reached.
const Unreachable = -1

// Edge is a directed, weighted edge.
type Edge struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// GraphStep is a snapshot of a traversal. Dist is nil for unweighted
// traversals; Edge is the edge under consideration, if any. Edges lists the
// whole graph, once per undirected edge.
type GraphStep struct {
	Header
	Edges    []Edge `json:"edges"`
	Visited  []bool `json:"visited"`
	Frontier []int  `json:"frontier"`
	Dist     []int  `json:"dist,omitempty"`
	Order    []int  `json:"order"`
	Edge     *Edge  `json:"edge,omitempty"`
}

func (GraphStep) Family() Family { return Graph }

// HeapStep is a snapshot of a binary heap held in an array. Only
// Heap[:Size] is inside the heap.
type HeapStep struct {
	Header
	Heap   []int `json:"heap"`
	Size   int   `json:"size"`
	Output []int `json:"output,omitempty"`
}

func (HeapStep) Family() Family { return Heap }

// Node is a binary tree node; Left and Right index into the node table or
// are -1.
type Node struct {
	Value int `json:"value"`
	Left  int `json:"left"`
	Right int `json:"right"`
}

// TreeStep is a snapshot of a binary search tree.
type TreeStep struct {
	Header
	Nodes  []Node `json:"nodes"`
	Root   int    `json:"root"`
	Path   []int  `json:"path,omitempty"`
	Output []int  `json:"output,omitempty"`
}

func (TreeStep) Family() Family { return Tree }
