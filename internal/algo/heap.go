package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

type heapTrace struct {
	rec    *step.Recorder
	h      []int
	size   int
	output []int
	c      step.Counters
}

func (t *heapTrace) emit(kind step.Kind, focus []int, format string, args ...any) {
	t.rec.Emit(step.HeapStep{
		Header: step.Header{
			Kind:     kind,
			Focus:    focus,
			Message:  fmt.Sprintf(format, args...),
			Counters: t.c,
		},
		Heap:   step.CloneInts(t.h),
		Size:   t.size,
		Output: step.CloneInts(t.output),
	})
}

func (t *heapTrace) swap(i, j int) {
	t.h[i], t.h[j] = t.h[j], t.h[i]
	t.c.Swaps++
	t.emit(step.Swap, []int{i, j}, "Swap %d and %d", t.h[j], t.h[i])
}

// siftDown restores the heap property below i. before reports whether a
// should sit above b.
func (t *heapTrace) siftDown(i int, before func(a, b int) bool) {
	for {
		best := i
		focus := []int{i}
		for _, child := range []int{2*i + 1, 2*i + 2} {
			if child >= t.size {
				continue
			}
			focus = append(focus, child)
			t.c.Comparisons++
			if before(t.h[child], t.h[best]) {
				best = child
			}
		}
		if len(focus) == 1 {
			return
		}
		if best == i {
			t.emit(step.SiftDown, focus, "%d is in place at index %d", t.h[i], i)
			return
		}
		t.emit(step.SiftDown, focus, "%d at index %d must sink below %d", t.h[i], i, t.h[best])
		t.swap(i, best)
		i = best
	}
}

func greater(a, b int) bool { return a > b }
func less(a, b int) bool    { return a < b }

// HeapSort builds a max-heap in place and repeatedly moves the root behind
// the shrinking heap.
func HeapSort(arr []int) *step.Sequence {
	t := &heapTrace{rec: step.NewRecorder("heap_sort"), h: step.CloneInts(arr), size: len(arr)}
	if t.h == nil {
		t.h = []int{}
	}
	n := len(t.h)

	for i := n/2 - 1; i >= 0; i-- {
		t.siftDown(i, greater)
	}
	if n > 1 {
		t.emit(step.Mark, nil, "Max-heap built, root %d", t.h[0])
	}

	for end := n - 1; end > 0; end-- {
		t.swap(0, end)
		t.size = end
		t.emit(step.Extract, []int{end}, "%d settled at index %d", t.h[end], end)
		t.siftDown(0, greater)
	}
	t.size = 0

	t.emit(step.Complete, nil, "Heap sort complete: %d comparisons, %d swaps", t.c.Comparisons, t.c.Swaps)
	return t.rec.Sequence()
}

// PriorityQueue inserts every value into a min-heap and then extracts the
// minimum until the heap is empty.
func PriorityQueue(values []int) *step.Sequence {
	t := &heapTrace{rec: step.NewRecorder("priority_queue"), h: make([]int, 0, len(values)), output: []int{}}

	for _, v := range values {
		t.h = append(t.h, v)
		t.size = len(t.h)
		t.c.Writes++
		i := len(t.h) - 1
		t.emit(step.Insert, []int{i}, "Insert %d at index %d", v, i)
		for i > 0 {
			p := (i - 1) / 2
			t.c.Comparisons++
			if t.h[i] >= t.h[p] {
				t.emit(step.SiftUp, []int{i, p}, "%d >= parent %d, stop", t.h[i], t.h[p])
				break
			}
			t.emit(step.SiftUp, []int{i, p}, "%d < parent %d, move up", t.h[i], t.h[p])
			t.swap(i, p)
			i = p
		}
	}

	for len(t.h) > 0 {
		top := t.h[0]
		last := len(t.h) - 1
		t.h[0] = t.h[last]
		t.h = t.h[:last]
		t.size = len(t.h)
		t.output = append(t.output, top)
		t.c.Writes++
		t.emit(step.Extract, []int{0}, "Extract minimum %d", top)
		t.siftDown(0, less)
	}

	t.emit(step.Complete, nil, "Extraction order: %s", joinInts(t.output))
	return t.rec.Sequence()
}
