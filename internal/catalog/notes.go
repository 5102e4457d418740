package catalog

const notesLinear = `# Linear search

Scan the array left to right and stop at the first element equal to the target.

| | |
|---|---|
| Time | O(n) |
| Space | O(1) |

Every **check** step costs one comparison. The trace ends with **found** at the
first matching index, or **not-found** after the last index.
`

const notesBinary = `# Binary search

Repeatedly halve the window [low, high] around mid = low + (high-low)/2.

| | |
|---|---|
| Time | O(log n) |
| Space | O(1) |

The input is sorted before the search starts. Each **check** is followed by
**found** or by **eliminate**, which names the discarded half and the new bound.
`

const notesBubble = `# Bubble sort

Compare adjacent pairs and swap them when out of order. Each pass settles the
largest remaining value at the end. A pass with no swaps stops the sort early.

| | |
|---|---|
| Best | O(n) |
| Worst | O(n²) |
| Stable | yes |
`

const notesSelection = `# Selection sort

Find the minimum of the unsorted suffix and swap it to the front of the suffix.

| | |
|---|---|
| Time | O(n²) comparisons, O(n) swaps |
| Stable | no |
`

const notesInsertion = `# Insertion sort

Grow a sorted prefix: shift larger elements right, then write the key into the gap.
Shifts and placements are **overwrite** steps.

| | |
|---|---|
| Best | O(n) |
| Worst | O(n²) |
| Stable | yes |
`

const notesMerge = `# Merge sort

Top-down: split in half, sort each half, then merge. Ties take the left run,
which keeps the sort stable. Every merged value is an **overwrite**.

| | |
|---|---|
| Time | O(n log n) |
| Space | O(n) |
`

const notesQuick = `# Quick sort

Lomuto partition around the last element. Values smaller than the pivot are
swapped into the growing left region; the pivot then moves to its final index.

| | |
|---|---|
| Average | O(n log n) |
| Worst | O(n²) on sorted input |
`

const notesHeapSort = `# Heap sort

Build a max-heap bottom-up with **sift-down**, then swap the root behind the
shrinking heap and restore the heap property.

| | |
|---|---|
| Time | O(n log n) |
| Space | O(1) |
`

const notesPriorityQueue = `# Priority queue

Insert each value at the bottom of a min-heap and **sift-up**. Then extract the
minimum until the heap is empty; the extraction order is sorted.
`

const notesCoin = `# Coin change

dp[i] is the fewest coins summing to i. The table starts at the sentinel
amount+1, which no real answer can reach.

    dp[i] = min over coins c <= i of dp[i-c] + 1

If dp[amount] is still above amount the amount is impossible. Coins that are
zero or negative are ignored.
`

const notesLCS = `# Longest common subsequence

dp[i][j] is the LCS length of the first i runes of a and the first j runes of b.

- match: dp[i][j] = dp[i-1][j-1] + 1
- mismatch: dp[i][j] = max(top, left)

The traceback walks from the bottom-right corner. On a tie between top and
left it moves **up**.
`

const notesFibMemo = `# Fibonacci, memoized

Top-down recursion with a cache. Every invocation counts as a call, including
cache hits, so fib(n) makes 2n-1 calls for n >= 1.

Supported n: 0 to 90.
`

const notesFibTab = `# Fibonacci, tabulated

Fill dp[0..n] bottom-up, one **fill** per index from 2 to n.

Supported n: 0 to 90.
`

const notesKnapsack = `# 0/1 knapsack

dp[i][w] is the best value using the first i items within capacity w.

    dp[i][w] = max(dp[i-1][w], dp[i-1][w-wt] + val)

A traceback recovers the chosen items. Capacity must be between 0 and 500.
`

const notesBFS = `# Breadth-first search

Visit vertices in order of hop distance using a FIFO queue. Neighbours are
explored in adjacency order.
`

const notesDFS = `# Depth-first search

Iterative DFS with an explicit stack. Neighbours are pushed in reverse so they
are visited in adjacency order. Stale stack entries are popped and skipped.
`

const notesDijkstra = `# Dijkstra

Settle the nearest unvisited vertex each round and **relax** its outgoing edges.
Unreachable vertices keep distance ∞. Negative weights are accepted but give no
shortest-path guarantee.

| | |
|---|---|
| Time | O(V²) |
`

const notesBSTBuild = `# Binary search tree insert

Descend from the root comparing the new value: smaller goes left, larger goes
right. Duplicates are reported and ignored. The tree is not rebalanced.
`

const notesBSTTraverse = `# Binary search tree traversal

The tree is built first, then walked in the chosen order:

- **inorder**: left, node, right (sorted output)
- **preorder**: node, left, right
- **postorder**: left, right, node
- **levelorder**: breadth first
`
