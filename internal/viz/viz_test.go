package viz

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func last(t *testing.T, seq *step.Sequence) step.Step {
	t.Helper()
	s, ok := seq.Last()
	if !ok {
		t.Fatal("empty sequence")
	}
	return s
}

func TestRender_Nil(t *testing.T) {
	if got := Render(nil, 40); !strings.Contains(got, "no steps") {
		t.Errorf("Render(nil) = %q", got)
	}
}

func TestRender_EveryFamily(t *testing.T) {
	g := algo.NewGraph(3, []step.Edge{{From: 0, To: 1, Weight: 2}}, false)
	seqs := map[string]*step.Sequence{
		"sort":   algo.BubbleSort([]int{3, 1, 2}),
		"search": algo.BinarySearch([]int{1, 3, 5, 7}, 5),
		"dp":     algo.CoinChange([]int{1, 2, 5}, 6),
		"memo":   algo.FibonacciMemo(5),
		"graph":  algo.Dijkstra(g, 0),
		"heap":   algo.HeapSort([]int{4, 1, 3}),
		"tree":   algo.BSTTraverse([]int{2, 1, 3}, algo.InOrder),
	}
	for name, seq := range seqs {
		t.Run(name, func(t *testing.T) {
			s := last(t, seq)
			out := Render(s, 60)
			if !strings.Contains(out, s.Head().Message) {
				t.Errorf("missing message %q in:\n%s", s.Head().Message, out)
			}
			if !strings.Contains(out, "cmp ") {
				t.Errorf("missing counters in:\n%s", out)
			}
		})
	}
}

func TestRender_UnreachableDistance(t *testing.T) {
	g := algo.NewGraph(2, nil, false)
	out := Render(last(t, algo.Dijkstra(g, 0)), 60)
	if !strings.Contains(out, "dist ∞") {
		t.Errorf("expected unreachable vertex, got:\n%s", out)
	}
}

func TestRender_DPSentinel(t *testing.T) {
	s := step.DPStep{
		Header:   step.Header{Kind: step.Fill, Message: "fill"},
		Table:    [][]int{{0, 100, 1}},
		Sentinel: 100,
		Answer:   -1,
	}
	if out := Render(s, 60); !strings.Contains(out, "∞") {
		t.Errorf("sentinel not shown as ∞:\n%s", out)
	}
}

func TestRender_TreeBranches(t *testing.T) {
	out := Render(last(t, algo.BSTBuild([]int{2, 1, 3})), 60)
	for _, want := range []string{"├─L 1", "└─R 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestCellRow_Wraps(t *testing.T) {
	out := cellRow([]string{"1", "2", "3", "4"}, 4)
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("got %d line breaks, want 1:\n%s", n, out)
	}
}

func TestTreeLayout_InOrderRanks(t *testing.T) {
	nodes := []step.Node{
		{Value: 2, Left: 1, Right: 2},
		{Value: 1, Left: -1, Right: -1},
		{Value: 3, Left: -1, Right: -1},
	}
	pos := treeLayout(nodes, 0)
	if pos[1].x != 0 || pos[0].x != 1 || pos[2].x != 2 {
		t.Errorf("ranks = %+v", pos)
	}
	if d := treeDepth(pos); d != 2 {
		t.Errorf("depth = %d, want 2", d)
	}
}

func TestPlotStep(t *testing.T) {
	c := NewCanvas(20, 5)
	PlotStep(c, last(t, algo.BubbleSort([]int{3, 1, 2})))
	if strings.Trim(c.String(), string(rune(brailleBlank))+"\n") == "" {
		t.Error("sort plot left the canvas blank")
	}

	PlotStep(c, nil)
	if strings.Trim(c.String(), string(rune(brailleBlank))+"\n") != "" {
		t.Error("nil step should clear the canvas")
	}
}

func TestDPBars_SentinelIsZero(t *testing.T) {
	s := step.DPStep{Table: [][]int{{0, 9, 2}}, Sentinel: 9}
	got := dpBars(s)
	if got[1] != 0 || got[2] != 2 {
		t.Errorf("dpBars = %v", got)
	}
}

func TestSearchWindow(t *testing.T) {
	s := step.SearchStep{Array: []int{1, 2, 3, 4}, Low: 1, High: 2}
	got := searchWindow(s)
	want := []int{0, 2, 3, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("searchWindow = %v, want %v", got, want)
		}
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	defer SetTheme(ThemeDefault.Name)
	SetTheme("nope")
	if CurrentTheme.Name != ThemeDefault.Name {
		t.Errorf("theme = %s", CurrentTheme.Name)
	}
	NextTheme()
	if CurrentTheme.Name == ThemeDefault.Name {
		t.Error("NextTheme did not advance")
	}
}

func TestThemes_RolesDistinguishable(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range Themes {
		if seen[th.Name] {
			t.Errorf("duplicate theme name %q", th.Name)
		}
		seen[th.Name] = true
		if th.Accent == th.Muted || th.Success == th.Error || th.Text == th.Muted {
			t.Errorf("theme %q collapses focus, settled or muted roles", th.Name)
		}
	}
	if len(ThemeNames()) != len(Themes) {
		t.Errorf("ThemeNames() = %v", ThemeNames())
	}
}
