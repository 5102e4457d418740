package algo

import (
	"fmt"

	"github.com/san-kum/algoviz/internal/step"
)

// LinearSearch scans arr left to right for target.
func LinearSearch(arr []int, target int) *step.Sequence {
	rec := step.NewRecorder("linear_search")
	a := step.CloneInts(arr)
	var c step.Counters

	snap := func(kind step.Kind, focus []int, index int, msg string) step.SearchStep {
		return step.SearchStep{
			Header: step.Header{Kind: kind, Focus: focus, Message: msg, Counters: c},
			Array:  step.CloneInts(a),
			Target: target,
			Low:    -1,
			High:   -1,
			Mid:    -1,
			Index:  index,
		}
	}

	for i, v := range a {
		c.Comparisons++
		rec.Emit(snap(step.Check, []int{i}, -1, fmt.Sprintf("Checking index %d: %d == %d?", i, v, target)))
		if v == target {
			rec.Emit(snap(step.Found, []int{i}, i, fmt.Sprintf("Found %d at index %d after %d comparisons", target, i, c.Comparisons)))
			return rec.Sequence()
		}
	}

	rec.Emit(snap(step.NotFound, nil, -1, fmt.Sprintf("%d not found after %d comparisons", target, c.Comparisons)))
	return rec.Sequence()
}

// BinarySearch halves [low, high] around mid = low + (high-low)/2. arr is
// expected to be sorted ascending; unsorted input still terminates.
func BinarySearch(arr []int, target int) *step.Sequence {
	rec := step.NewRecorder("binary_search")
	a := step.CloneInts(arr)
	var c step.Counters

	low, high := 0, len(a)-1
	snap := func(kind step.Kind, mid int, discarded *step.Range, index int, msg string) step.SearchStep {
		var focus []int
		if mid >= 0 {
			focus = []int{mid}
		}
		return step.SearchStep{
			Header:    step.Header{Kind: kind, Focus: focus, Message: msg, Counters: c},
			Array:     step.CloneInts(a),
			Target:    target,
			Low:       low,
			High:      high,
			Mid:       mid,
			Discarded: discarded,
			Index:     index,
		}
	}

	for low <= high {
		mid := low + (high-low)/2
		c.Comparisons++
		rec.Emit(snap(step.Check, mid, nil, -1,
			fmt.Sprintf("low=%d high=%d mid=%d: comparing %d with %d", low, high, mid, a[mid], target)))

		switch {
		case a[mid] == target:
			rec.Emit(snap(step.Found, mid, nil, mid,
				fmt.Sprintf("Found %d at index %d after %d comparisons", target, mid, c.Comparisons)))
			return rec.Sequence()
		case a[mid] < target:
			gone := &step.Range{From: low, To: mid}
			low = mid + 1
			rec.Emit(snap(step.Eliminate, mid, gone, -1,
				fmt.Sprintf("%d < %d: discard indices %d..%d, low = %d", a[mid], target, gone.From, gone.To, low)))
		default:
			gone := &step.Range{From: mid, To: high}
			high = mid - 1
			rec.Emit(snap(step.Eliminate, mid, gone, -1,
				fmt.Sprintf("%d > %d: discard indices %d..%d, high = %d", a[mid], target, gone.From, gone.To, high)))
		}
	}

	rec.Emit(snap(step.NotFound, -1, nil, -1,
		fmt.Sprintf("%d not found after %d comparisons", target, c.Comparisons)))
	return rec.Sequence()
}
