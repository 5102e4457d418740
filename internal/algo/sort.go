package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// sortTrace holds the working array of an in-place sort and snapshots it.
type sortTrace struct {
	rec    *step.Recorder
	a      []int
	sorted []bool
	c      step.Counters
}

func newSortTrace(name string, arr []int) *sortTrace {
	return &sortTrace{
		rec:    step.NewRecorder(name),
		a:      step.CloneInts(arr),
		sorted: make([]bool, len(arr)),
	}
}

func (t *sortTrace) emit(kind step.Kind, focus []int, format string, args ...any) {
	t.rec.Emit(step.SortStep{
		Header: step.Header{
			Kind:     kind,
			Focus:    focus,
			Message:  fmt.Sprintf(format, args...),
			Counters: t.c,
		},
		Array:  step.CloneInts(t.a),
		Sorted: step.CloneBools(t.sorted),
	})
}

func (t *sortTrace) swap(i, j int) {
	t.a[i], t.a[j] = t.a[j], t.a[i]
	t.c.Swaps++
	t.emit(step.Swap, []int{i, j}, "Swap a[%d]=%d and a[%d]=%d", i, t.a[i], j, t.a[j])
}

func (t *sortTrace) finish() *step.Sequence {
	for i := range t.sorted {
		t.sorted[i] = true
	}
	t.emit(step.Complete, nil, "Sorted %d elements: %d comparisons, %d swaps, %d writes",
		len(t.a), t.c.Comparisons, t.c.Swaps, t.c.Writes)
	return t.rec.Sequence()
}

// BubbleSort bubbles the largest remaining element to the end each pass and
// stops after a pass without swaps.
func BubbleSort(arr []int) *step.Sequence {
	t := newSortTrace("bubble_sort", arr)
	n := len(t.a)

	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			t.c.Comparisons++
			t.emit(step.Compare, []int{j, j + 1}, "Compare a[%d]=%d with a[%d]=%d", j, t.a[j], j+1, t.a[j+1])
			if t.a[j] > t.a[j+1] {
				t.swap(j, j+1)
				swapped = true
			}
		}

		last := n - 1 - pass
		if !swapped {
			rest := make([]int, 0, last+1)
			for i := 0; i <= last; i++ {
				t.sorted[i] = true
				rest = append(rest, i)
			}
			t.emit(step.Mark, rest, "No swaps in pass %d: indices 0..%d already in order", pass+1, last)
			break
		}
		t.sorted[last] = true
		t.emit(step.Mark, []int{last}, "a[%d]=%d is in its final position", last, t.a[last])
	}

	return t.finish()
}

// SelectionSort moves the minimum of the unsorted suffix to its front.
func SelectionSort(arr []int) *step.Sequence {
	t := newSortTrace("selection_sort", arr)
	n := len(t.a)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			t.c.Comparisons++
			t.emit(step.Compare, []int{minIdx, j}, "Compare current minimum a[%d]=%d with a[%d]=%d", minIdx, t.a[minIdx], j, t.a[j])
			if t.a[j] < t.a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			t.swap(i, minIdx)
		}
		t.sorted[i] = true
		t.emit(step.Mark, []int{i}, "a[%d]=%d is in its final position", i, t.a[i])
	}

	return t.finish()
}

// InsertionSort grows a sorted prefix by shifting larger elements right.
func InsertionSort(arr []int) *step.Sequence {
	t := newSortTrace("insertion_sort", arr)
	n := len(t.a)

	for i := 1; i < n; i++ {
		key := t.a[i]
		j := i - 1
		for j >= 0 {
			t.c.Comparisons++
			t.emit(step.Compare, []int{j, j + 1}, "Compare key %d with a[%d]=%d", key, j, t.a[j])
			if t.a[j] <= key {
				break
			}
			t.a[j+1] = t.a[j]
			t.c.Writes++
			t.emit(step.Overwrite, []int{j + 1}, "Shift %d from index %d to %d", t.a[j+1], j, j+1)
			j--
		}
		t.a[j+1] = key
		t.c.Writes++
		t.emit(step.Overwrite, []int{j + 1}, "Insert key %d at index %d", key, j+1)
	}

	return t.finish()
}

// MergeSort is a top-down merge sort; ties take from the left run.
func MergeSort(arr []int) *step.Sequence {
	t := newSortTrace("merge_sort", arr)

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if hi-lo <= 1 {
			return
		}
		mid := lo + (hi-lo)/2
		sortRange(lo, mid)
		sortRange(mid, hi)

		left := step.CloneInts(t.a[lo:mid])
		right := step.CloneInts(t.a[mid:hi])
		i, j, k := 0, 0, lo
		for i < len(left) && j < len(right) {
			t.c.Comparisons++
			t.emit(step.Compare, []int{k}, "Merge [%d,%d) and [%d,%d): compare %d with %d", lo, mid, mid, hi, left[i], right[j])
			if left[i] <= right[j] {
				t.a[k] = left[i]
				i++
			} else {
				t.a[k] = right[j]
				j++
			}
			t.c.Writes++
			t.emit(step.Overwrite, []int{k}, "Write %d to index %d", t.a[k], k)
			k++
		}
		for ; i < len(left); i++ {
			t.a[k] = left[i]
			t.c.Writes++
			t.emit(step.Overwrite, []int{k}, "Copy remaining %d to index %d", t.a[k], k)
			k++
		}
		for ; j < len(right); j++ {
			t.a[k] = right[j]
			t.c.Writes++
			t.emit(step.Overwrite, []int{k}, "Copy remaining %d to index %d", t.a[k], k)
			k++
		}
	}
	sortRange(0, len(t.a))

	return t.finish()
}

// QuickSort uses Lomuto partitioning with the last element as pivot.
func QuickSort(arr []int) *step.Sequence {
	t := newSortTrace("quick_sort", arr)

	var sortRange func(lo, hi int)
	sortRange = func(lo, hi int) {
		if lo > hi {
			return
		}
		if lo == hi {
			t.sorted[lo] = true
			t.emit(step.Mark, []int{lo}, "Single element a[%d]=%d is in place", lo, t.a[lo])
			return
		}

		pivot := t.a[hi]
		t.emit(step.Pivot, []int{hi}, "Partition [%d,%d] around pivot a[%d]=%d", lo, hi, hi, pivot)
		i := lo
		for j := lo; j < hi; j++ {
			t.c.Comparisons++
			t.emit(step.Compare, []int{j, hi}, "Compare a[%d]=%d with pivot %d", j, t.a[j], pivot)
			if t.a[j] < pivot {
				if i != j {
					t.swap(i, j)
				}
				i++
			}
		}
		if i != hi {
			t.swap(i, hi)
		}
		t.sorted[i] = true
		t.emit(step.Mark, []int{i}, "Pivot %d settled at index %d", pivot, i)

		sortRange(lo, i-1)
		sortRange(i+1, hi)
	}
	sortRange(0, len(t.a)-1)

	return t.finish()
}
