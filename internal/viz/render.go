package viz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/algoviz/internal/step"
)

// Render draws s as styled text no wider than width columns, followed by
// its message and counters. A nil step renders as an empty placeholder.
func Render(s step.Step, width int) string {
	if s == nil {
		return current.muted.Render("(no steps loaded)")
	}
	width = max(width, 20)

	var body string
	switch st := s.(type) {
	case step.SortStep:
		body = renderSort(st, width)
	case step.SearchStep:
		body = renderSearch(st, width)
	case step.DPStep:
		body = renderDP(st, width)
	case step.GraphStep:
		body = renderGraph(st)
	case step.HeapStep:
		body = renderHeap(st, width)
	case step.TreeStep:
		body = renderTree(st)
	}

	h := s.Head()
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		kindBadge(h.Kind)+" "+current.message.Render(h.Message),
		renderCounters(h.Counters),
	)
}

func kindBadge(k step.Kind) string {
	label := "[" + string(k) + "]"
	switch k {
	case step.Found, step.Complete:
		return current.done.Render(label)
	case step.NotFound:
		return current.fail.Render(label)
	case step.Pivot, step.CacheHit, step.Duplicate:
		return current.warn.Render(label)
	}
	return current.focus.Render(label)
}

func renderCounters(c step.Counters) string {
	pair := func(name string, v int) string {
		return current.muted.Render(name+" ") + current.value.Render(strconv.Itoa(v))
	}
	return strings.Join([]string{
		pair("cmp", c.Comparisons),
		pair("swp", c.Swaps),
		pair("wr", c.Writes),
		pair("calls", c.CallCount),
	}, "  ")
}

// cellRow lays out cells of equal width, wrapping at width columns.
func cellRow(cells []string, width int) string {
	if len(cells) == 0 {
		return current.muted.Render("[]")
	}
	cw := 1
	for _, c := range cells {
		cw = max(cw, lipgloss.Width(c))
	}
	perLine := max(width/(cw+1), 1)

	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			if i%perLine == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(strings.Repeat(" ", cw-lipgloss.Width(c)))
		b.WriteString(c)
	}
	return b.String()
}

func renderSort(s step.SortStep, width int) string {
	focus := indexSet(s.Focus)
	cells := make([]string, len(s.Array))
	for i, v := range s.Array {
		txt := strconv.Itoa(v)
		switch {
		case focus[i] && s.Kind == step.Pivot:
			cells[i] = current.warn.Render(txt)
		case focus[i]:
			cells[i] = current.focus.Render(txt)
		case i < len(s.Sorted) && s.Sorted[i]:
			cells[i] = current.done.Render(txt)
		default:
			cells[i] = current.text.Render(txt)
		}
	}
	return cellRow(cells, width)
}

func renderSearch(s step.SearchStep, width int) string {
	cells := make([]string, len(s.Array))
	for i, v := range s.Array {
		txt := strconv.Itoa(v)
		switch {
		case i == s.Index:
			cells[i] = current.done.Render(txt)
		case i == s.Mid || slices.Contains(s.Focus, i):
			cells[i] = current.focus.Render(txt)
		case s.Low >= 0 && (i < s.Low || i > s.High):
			cells[i] = current.muted.Render(txt)
		default:
			cells[i] = current.text.Render(txt)
		}
	}

	info := current.label.Render("target") + current.value.Render(strconv.Itoa(s.Target))
	if s.Low >= 0 {
		info += "\n" + current.label.Render("low/mid/high") +
			current.value.Render(fmt.Sprintf("%d / %d / %d", s.Low, s.Mid, s.High))
	}
	if s.Discarded != nil {
		info += "\n" + current.label.Render("discarded") +
			current.muted.Render(fmt.Sprintf("[%d..%d]", s.Discarded.From, s.Discarded.To))
	}
	return cellRow(cells, width) + "\n\n" + info
}

func renderDP(s step.DPStep, width int) string {
	var parts []string
	if len(s.Table) > 0 {
		parts = append(parts, renderTable(s, width))
	}
	if s.Memo != nil || s.Stack != nil {
		parts = append(parts, renderMemo(s))
	}
	if s.Result != "" {
		parts = append(parts, current.label.Render("result")+current.done.Render(s.Result))
	} else if s.Answer >= 0 && s.Kind == step.Complete {
		parts = append(parts, current.label.Render("answer")+current.done.Render(strconv.Itoa(s.Answer)))
	}
	return strings.Join(parts, "\n\n")
}

func renderTable(s step.DPStep, width int) string {
	focus := make(map[step.Cell]bool, len(s.Cells))
	for _, c := range s.Cells {
		focus[c] = true
	}
	cellStyle := current.focus
	if s.Kind == step.Traceback {
		cellStyle = current.done
	}

	format := func(v int) string {
		if s.Sentinel > 0 && v >= s.Sentinel {
			return "∞"
		}
		return strconv.Itoa(v)
	}

	cw := 1
	for _, row := range s.Table {
		for _, v := range row {
			cw = max(cw, len(format(v)))
		}
	}
	for _, l := range s.ColLabels {
		cw = max(cw, lipgloss.Width(l))
	}
	lw := 0
	for _, l := range s.RowLabels {
		lw = max(lw, lipgloss.Width(l))
	}

	// Wide tables keep their leftmost columns.
	cols := len(s.Table[0])
	if fit := max((width-lw-1)/(cw+1), 1); cols > fit {
		cols = fit
	}
	pad := func(txt string, w int) string {
		return strings.Repeat(" ", max(w-lipgloss.Width(txt), 0)) + txt
	}

	var lines []string
	if len(s.ColLabels) > 0 {
		hdr := []string{pad("", lw)}
		for j := 0; j < cols && j < len(s.ColLabels); j++ {
			hdr = append(hdr, pad(s.ColLabels[j], cw))
		}
		lines = append(lines, current.muted.Render(strings.Join(hdr, " ")))
	}
	for i, row := range s.Table {
		label := ""
		if i < len(s.RowLabels) {
			label = s.RowLabels[i]
		}
		cells := []string{current.muted.Render(pad(label, lw))}
		for j := 0; j < cols && j < len(row); j++ {
			txt := pad(format(row[j]), cw)
			if focus[step.Cell{Row: i, Col: j}] {
				cells = append(cells, cellStyle.Render(txt))
			} else {
				cells = append(cells, current.text.Render(txt))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderMemo(s step.DPStep) string {
	keys := make([]int, 0, len(s.Memo))
	for k := range s.Memo {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	entries := make([]string, len(keys))
	for i, k := range keys {
		entries[i] = fmt.Sprintf("%d:%d", k, s.Memo[k])
	}
	frames := make([]string, len(s.Stack))
	for i, n := range s.Stack {
		frames[i] = fmt.Sprintf("f(%d)", n)
	}
	return current.label.Render("memo") + current.text.Render("{"+strings.Join(entries, " ")+"}") + "\n" +
		current.label.Render("stack") + current.pending.Render(strings.Join(frames, " → "))
}

func renderGraph(s step.GraphStep) string {
	frontier := indexSet(s.Frontier)
	focus := indexSet(s.Focus)

	lines := make([]string, 0, len(s.Visited)+4)
	for v, seen := range s.Visited {
		state := current.muted.Render("·")
		switch {
		case focus[v]:
			state = current.focus.Render("●")
		case seen:
			state = current.done.Render("●")
		case frontier[v]:
			state = current.pending.Render("○")
		}
		line := fmt.Sprintf("%s %s", state, current.text.Render(fmt.Sprintf("%2d", v)))
		if s.Dist != nil && v < len(s.Dist) {
			d := "∞"
			if s.Dist[v] != step.Unreachable {
				d = strconv.Itoa(s.Dist[v])
			}
			line += "  " + current.muted.Render("dist ") + current.value.Render(d)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "",
		current.label.Render("frontier")+current.pending.Render(intList(s.Frontier)),
		current.label.Render("order")+current.done.Render(intList(s.Order)))
	if s.Edge != nil {
		lines = append(lines, current.label.Render("edge")+
			current.focus.Render(fmt.Sprintf("%d → %d (w=%d)", s.Edge.From, s.Edge.To, s.Edge.Weight)))
	}
	return strings.Join(lines, "\n")
}

func renderHeap(s step.HeapStep, width int) string {
	focus := indexSet(s.Focus)
	cells := make([]string, len(s.Heap))
	for i, v := range s.Heap {
		txt := strconv.Itoa(v)
		switch {
		case focus[i]:
			cells[i] = current.focus.Render(txt)
		case i >= s.Size:
			cells[i] = current.done.Render(txt)
		default:
			cells[i] = current.text.Render(txt)
		}
	}

	var levels []string
	for start, n := 0, 1; start < s.Size; start, n = start+n, n*2 {
		end := min(start+n, s.Size)
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, cells[i])
		}
		levels = append(levels, strings.Join(row, " "))
	}

	parts := []string{cellRow(cells, width)}
	if len(levels) > 0 {
		parts = append(parts, strings.Join(levels, "\n"))
	}
	if s.Output != nil {
		parts = append(parts, current.label.Render("output")+current.done.Render(intList(s.Output)))
	}
	return strings.Join(parts, "\n\n")
}

func renderTree(s step.TreeStep) string {
	if s.Root < 0 || s.Root >= len(s.Nodes) {
		return current.muted.Render("(empty tree)")
	}
	onPath := indexSet(s.Path)
	focus := indexSet(s.Focus)

	var b strings.Builder
	var walk func(i int, prefix, branch string, depth int)
	walk = func(i int, prefix, branch string, depth int) {
		if i < 0 || i >= len(s.Nodes) || depth > len(s.Nodes) {
			return
		}
		txt := strconv.Itoa(s.Nodes[i].Value)
		switch {
		case focus[i]:
			txt = current.focus.Render(txt)
		case onPath[i]:
			txt = current.pending.Render(txt)
		default:
			txt = current.text.Render(txt)
		}
		b.WriteString(current.muted.Render(prefix+branch) + txt + "\n")

		next := prefix
		switch branch {
		case "├─L ":
			next += "│   "
		case "└─R ", "└─L ":
			next += "    "
		}
		n := s.Nodes[i]
		if n.Right >= 0 {
			walk(n.Left, next, "├─L ", depth+1)
			walk(n.Right, next, "└─R ", depth+1)
		} else {
			walk(n.Left, next, "└─L ", depth+1)
		}
	}
	walk(s.Root, "", "", 0)

	out := strings.TrimRight(b.String(), "\n")
	if s.Output != nil {
		out += "\n\n" + current.label.Render("output") + current.done.Render(intList(s.Output))
	}
	return out
}

func intList(xs []int) string {
	if len(xs) == 0 {
		return "-"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
