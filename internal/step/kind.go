package step

// Kind tags the transition a step describes.
type Kind string

const (
	Compare   Kind = "compare"
	Swap      Kind = "swap"
	Overwrite Kind = "overwrite"
	Pivot     Kind = "pivot"
	Mark      Kind = "mark"

	Check     Kind = "check"
	Eliminate Kind = "eliminate"

	Init      Kind = "init"
	Fill      Kind = "fill"
	Call      Kind = "call"
	CacheHit  Kind = "cache-hit"
	Compute   Kind = "compute"
	Traceback Kind = "traceback"

	Visit   Kind = "visit"
	Enqueue Kind = "enqueue"
	Dequeue Kind = "dequeue"
	Push    Kind = "push"
	Pop     Kind = "pop"
	Explore Kind = "explore"
	Relax   Kind = "relax"

	SiftUp    Kind = "sift-up"
	SiftDown  Kind = "sift-down"
	Insert    Kind = "insert"
	Extract   Kind = "extract"
	Duplicate Kind = "duplicate"

	Found    Kind = "found"
	NotFound Kind = "not-found"
	Complete Kind = "complete"
)

// Terminal reports whether k ends a sequence.
func (k Kind) Terminal() bool {
	switch k {
	case Found, NotFound, Complete:
		return true
	}
	return false
}

// Family groups algorithms that share a snapshot shape.
type Family string

const (
	Sorting   Family = "sorting"
	Searching Family = "searching"
	DP        Family = "dp"
	Graph     Family = "graph"
	Heap      Family = "heap"
	Tree      Family = "tree"
)

// Families lists every family in display order.
func Families() []Family {
	return []Family{Sorting, Searching, DP, Graph, Heap, Tree}
}
