package algo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

// Input bounds beyond which a generator reports instead of tabulating.
const (
	MaxCoinAmount       = 1000
	MaxFibonacci        = 90
	MaxKnapsackCapacity = 500
)

type dpTrace struct {
	rec *step.Recorder
	c   step.Counters
}

func newDPTrace(name string) *dpTrace {
	return &dpTrace{rec: step.NewRecorder(name)}
}

func (t *dpTrace) emit(s step.DPStep) {
	s.Counters = t.c
	t.rec.Emit(s)
}

func indexLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return labels
}

// CoinChange computes the fewest coins summing to amount. The table starts
// at the sentinel amount+1 so every comparison stays integral.
func CoinChange(coins []int, amount int) *step.Sequence {
	t := newDPTrace("coin_change")

	if amount < 0 {
		t.emit(step.DPStep{
			Header: step.Header{Kind: step.Complete, Message: fmt.Sprintf("Amount %d is negative: impossible", amount)},
			Answer: -1,
		})
		return t.rec.Sequence()
	}
	if amount > MaxCoinAmount {
		t.emit(step.DPStep{
			Header: step.Header{Kind: step.Complete, Message: fmt.Sprintf("Amount %d exceeds %d: too large to tabulate", amount, MaxCoinAmount)},
			Answer: -1,
		})
		return t.rec.Sequence()
	}

	usable := make([]int, 0, len(coins))
	for _, coin := range coins {
		if coin > 0 {
			usable = append(usable, coin)
		}
	}

	sentinel := amount + 1
	dp := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		dp[i] = sentinel
	}
	labels := indexLabels(amount + 1)
	show := func(v int) string {
		if v >= sentinel {
			return "∞"
		}
		return strconv.Itoa(v)
	}
	snap := func(kind step.Kind, focus []int, answer int, msg string) step.DPStep {
		cells := make([]step.Cell, len(focus))
		for i, f := range focus {
			cells[i] = step.Cell{Row: 0, Col: f}
		}
		return step.DPStep{
			Header:    step.Header{Kind: kind, Focus: focus, Message: msg},
			Table:     [][]int{step.CloneInts(dp)},
			ColLabels: labels,
			Cells:     cells,
			Sentinel:  sentinel,
			Answer:    answer,
		}
	}

	t.emit(snap(step.Init, []int{0}, -1, fmt.Sprintf("dp[0] = 0, dp[1..%d] = ∞ (sentinel %d); coins %v", amount, sentinel, usable)))

	if len(usable) == 0 && amount > 0 {
		t.emit(snap(step.Complete, []int{amount}, -1, fmt.Sprintf("No usable coins: %d is impossible", amount)))
		return t.rec.Sequence()
	}

	for i := 1; i <= amount; i++ {
		for _, coin := range usable {
			if coin > i {
				continue
			}
			candidate := dp[i-coin] + 1
			t.c.Comparisons++
			t.emit(snap(step.Compare, []int{i, i - coin}, -1,
				fmt.Sprintf("Coin %d: dp[%d] = min(%s, dp[%d]+1 = %s)", coin, i, show(dp[i]), i-coin, show(candidate))))
			if candidate < dp[i] {
				dp[i] = candidate
				t.c.Writes++
			}
		}
		if dp[i] >= sentinel {
			t.emit(snap(step.Fill, []int{i}, -1, fmt.Sprintf("dp[%d] = ∞: %d cannot be made", i, i)))
		} else {
			t.emit(snap(step.Fill, []int{i}, -1, fmt.Sprintf("dp[%d] = %d", i, dp[i])))
		}
	}

	if dp[amount] > amount {
		t.emit(snap(step.Complete, []int{amount}, -1, fmt.Sprintf("Amount %d is impossible with coins %v", amount, usable)))
	} else {
		t.emit(snap(step.Complete, []int{amount}, dp[amount], fmt.Sprintf("Minimum coins for %d: %d", amount, dp[amount])))
	}
	return t.rec.Sequence()
}

// LCS fills the longest-common-subsequence table of a and b, then walks it
// back. On a tie between top and left the traceback moves up.
func LCS(a, b string) *step.Sequence {
	t := newDPTrace("lcs")
	ra, rb := []rune(a), []rune(b)
	m, n := len(ra), len(rb)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	rows := make([]string, m+1)
	for i, r := range ra {
		rows[i+1] = string(r)
	}
	cols := make([]string, n+1)
	for j, r := range rb {
		cols[j+1] = string(r)
	}
	snap := func(kind step.Kind, cells []step.Cell, msg string) step.DPStep {
		return step.DPStep{
			Header:    step.Header{Kind: kind, Message: msg},
			Table:     step.CloneTable(dp),
			RowLabels: rows,
			ColLabels: cols,
			Cells:     cells,
			Answer:    -1,
		}
	}

	t.emit(snap(step.Init, nil, fmt.Sprintf("Table %dx%d initialised to 0 for %q and %q", m+1, n+1, a, b)))

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			t.c.Comparisons++
			t.c.Writes++
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				t.emit(snap(step.Fill, []step.Cell{{Row: i, Col: j}, {Row: i - 1, Col: j - 1}},
					fmt.Sprintf("%q == %q: dp[%d][%d] = dp[%d][%d] + 1 = %d", ra[i-1], rb[j-1], i, j, i-1, j-1, dp[i][j])))
				continue
			}
			dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			t.emit(snap(step.Compare, []step.Cell{{Row: i, Col: j}, {Row: i - 1, Col: j}, {Row: i, Col: j - 1}},
				fmt.Sprintf("%q != %q: dp[%d][%d] = max(top %d, left %d) = %d", ra[i-1], rb[j-1], i, j, dp[i-1][j], dp[i][j-1], dp[i][j])))
		}
	}

	path := make([]step.Cell, 0, m+n)
	out := make([]rune, 0, dp[m][n])
	i, j := m, n
	for i > 0 && j > 0 {
		path = append(path, step.Cell{Row: i, Col: j})
		switch {
		case ra[i-1] == rb[j-1]:
			out = append(out, ra[i-1])
			t.emit(snap(step.Traceback, clonePath(path), fmt.Sprintf("(%d,%d): characters match, move diagonally", i, j)))
			i--
			j--
		case dp[i-1][j] >= dp[i][j-1]:
			t.emit(snap(step.Traceback, clonePath(path), fmt.Sprintf("(%d,%d): top %d >= left %d, move up", i, j, dp[i-1][j], dp[i][j-1])))
			i--
		default:
			t.emit(snap(step.Traceback, clonePath(path), fmt.Sprintf("(%d,%d): left %d > top %d, move left", i, j, dp[i][j-1], dp[i-1][j])))
			j--
		}
	}
	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	final := snap(step.Complete, clonePath(path), fmt.Sprintf("LCS length %d: %q", dp[m][n], string(out)))
	final.Answer = dp[m][n]
	final.Result = string(out)
	t.emit(final)
	return t.rec.Sequence()
}

func clonePath(p []step.Cell) []step.Cell {
	c := make([]step.Cell, len(p))
	copy(c, p)
	return c
}

// FibonacciMemo traces top-down memoised Fibonacci. Every invocation,
// including cache hits and base cases, bumps CallCount once.
func FibonacciMemo(n int) *step.Sequence {
	t := newDPTrace("fibonacci_memo")
	if done := fibOutOfRange(t, n); done {
		return t.rec.Sequence()
	}

	memo := make(map[int]int)
	stack := make([]int, 0, n+1)
	snap := func(kind step.Kind, focus []int, msg string) step.DPStep {
		return step.DPStep{
			Header: step.Header{Kind: kind, Focus: focus, Message: msg},
			Memo:   step.CloneMemo(memo),
			Stack:  step.CloneInts(stack),
			Answer: -1,
		}
	}

	var fib func(k int) int
	fib = func(k int) int {
		t.c.CallCount++
		stack = append(stack, k)
		defer func() { stack = stack[:len(stack)-1] }()

		if v, ok := memo[k]; ok {
			t.emit(snap(step.CacheHit, []int{k}, fmt.Sprintf("fib(%d) is cached: %d", k, v)))
			return v
		}
		if k <= 1 {
			memo[k] = k
			t.c.Writes++
			t.emit(snap(step.Compute, []int{k}, fmt.Sprintf("fib(%d) is a base case: %d", k, k)))
			return k
		}

		t.emit(snap(step.Call, []int{k}, fmt.Sprintf("fib(%d) = fib(%d) + fib(%d)", k, k-1, k-2)))
		a := fib(k - 1)
		b := fib(k - 2)
		memo[k] = a + b
		t.c.Writes++
		t.emit(snap(step.Compute, []int{k, k - 1, k - 2}, fmt.Sprintf("fib(%d) = %d + %d = %d", k, a, b, memo[k])))
		return memo[k]
	}

	answer := fib(n)
	final := snap(step.Complete, []int{n}, fmt.Sprintf("fib(%d) = %d after %d calls", n, answer, t.c.CallCount))
	final.Answer = answer
	t.emit(final)
	return t.rec.Sequence()
}

// FibonacciTab fills dp[0..n] bottom-up; CallCount counts loop iterations.
func FibonacciTab(n int) *step.Sequence {
	t := newDPTrace("fibonacci_tab")
	if done := fibOutOfRange(t, n); done {
		return t.rec.Sequence()
	}

	dp := make([]int, n+1)
	if n >= 1 {
		dp[1] = 1
	}
	labels := indexLabels(n + 1)
	snap := func(kind step.Kind, focus []int, msg string) step.DPStep {
		cells := make([]step.Cell, len(focus))
		for i, f := range focus {
			cells[i] = step.Cell{Row: 0, Col: f}
		}
		return step.DPStep{
			Header:    step.Header{Kind: kind, Focus: focus, Message: msg},
			Table:     [][]int{step.CloneInts(dp)},
			ColLabels: labels,
			Cells:     cells,
			Answer:    -1,
		}
	}

	if n == 0 {
		t.emit(snap(step.Init, []int{0}, "dp[0] = 0"))
	} else {
		t.emit(snap(step.Init, []int{0, 1}, "dp[0] = 0, dp[1] = 1"))
	}
	for i := 2; i <= n; i++ {
		t.c.CallCount++
		dp[i] = dp[i-1] + dp[i-2]
		t.c.Writes++
		t.emit(snap(step.Fill, []int{i, i - 1, i - 2}, fmt.Sprintf("dp[%d] = dp[%d] + dp[%d] = %d + %d = %d", i, i-1, i-2, dp[i-1], dp[i-2], dp[i])))
	}

	final := snap(step.Complete, []int{n}, fmt.Sprintf("fib(%d) = %d after %d iterations", n, dp[n], t.c.CallCount))
	final.Answer = dp[n]
	t.emit(final)
	return t.rec.Sequence()
}

func fibOutOfRange(t *dpTrace, n int) bool {
	var msg string
	switch {
	case n < 0:
		msg = fmt.Sprintf("fib(%d) is undefined for negative n", n)
	case n > MaxFibonacci:
		msg = fmt.Sprintf("fib(%d) exceeds the supported range 0..%d", n, MaxFibonacci)
	default:
		return false
	}
	t.emit(step.DPStep{Header: step.Header{Kind: step.Complete, Message: msg}, Answer: -1})
	return true
}

// Knapsack solves 0/1 knapsack over min(len(weights), len(values)) items.
// Items with negative weight never fit.
func Knapsack(weights, values []int, capacity int) *step.Sequence {
	t := newDPTrace("knapsack")
	if capacity < 0 || capacity > MaxKnapsackCapacity {
		t.emit(step.DPStep{
			Header: step.Header{Kind: step.Complete, Message: fmt.Sprintf("Capacity %d is outside 0..%d", capacity, MaxKnapsackCapacity)},
			Answer: -1,
		})
		return t.rec.Sequence()
	}

	n := min(len(weights), len(values))
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, capacity+1)
	}
	rows := make([]string, n+1)
	for i := 1; i <= n; i++ {
		rows[i] = fmt.Sprintf("#%d w%d v%d", i, weights[i-1], values[i-1])
	}
	cols := indexLabels(capacity + 1)
	snap := func(kind step.Kind, cells []step.Cell, msg string) step.DPStep {
		return step.DPStep{
			Header:    step.Header{Kind: kind, Message: msg},
			Table:     step.CloneTable(dp),
			RowLabels: rows,
			ColLabels: cols,
			Cells:     cells,
			Answer:    -1,
		}
	}

	t.emit(snap(step.Init, nil, fmt.Sprintf("%d items, capacity %d: row 0 is all zeros", n, capacity)))

	for i := 1; i <= n; i++ {
		wt, val := weights[i-1], values[i-1]
		for w := 0; w <= capacity; w++ {
			skip := dp[i-1][w]
			t.c.Writes++
			if wt < 0 || wt > w {
				dp[i][w] = skip
				t.emit(snap(step.Fill, []step.Cell{{Row: i, Col: w}, {Row: i - 1, Col: w}},
					fmt.Sprintf("Item %d (w=%d) does not fit in %d: dp[%d][%d] = %d", i, wt, w, i, w, skip)))
				continue
			}
			take := dp[i-1][w-wt] + val
			t.c.Comparisons++
			dp[i][w] = max(skip, take)
			t.emit(snap(step.Compare, []step.Cell{{Row: i, Col: w}, {Row: i - 1, Col: w}, {Row: i - 1, Col: w - wt}},
				fmt.Sprintf("Item %d: dp[%d][%d] = max(skip %d, take %d+%d = %d) = %d", i, i, w, skip, dp[i-1][w-wt], val, take, dp[i][w])))
		}
	}

	path := make([]step.Cell, 0, n)
	chosen := make([]int, 0, n)
	w := capacity
	for i := n; i > 0; i-- {
		path = append(path, step.Cell{Row: i, Col: w})
		if dp[i][w] != dp[i-1][w] {
			chosen = append(chosen, i)
			t.emit(snap(step.Traceback, clonePath(path), fmt.Sprintf("dp[%d][%d] != dp[%d][%d]: take item %d", i, w, i-1, w, i)))
			w -= weights[i-1]
			continue
		}
		t.emit(snap(step.Traceback, clonePath(path), fmt.Sprintf("dp[%d][%d] == dp[%d][%d]: skip item %d", i, w, i-1, w, i)))
	}

	names := make([]string, len(chosen))
	for k := range chosen {
		names[len(chosen)-1-k] = "#" + strconv.Itoa(chosen[k])
	}
	final := snap(step.Complete, clonePath(path), fmt.Sprintf("Best value %d using items [%s]", dp[n][capacity], strings.Join(names, " ")))
	final.Answer = dp[n][capacity]
	final.Result = strings.Join(names, " ")
	t.emit(final)
	return t.rec.Sequence()
}
