package automation

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/step"
)

const scenarioYAML = `
name: warmup
description: two sorts and a search
runs:
  - algorithm: bubble_sort
    preset: reversed
  - algorithm: insertion_sort
    random: 12
    seed: 7
  - algorithm: linear_search
    params:
      array: [4, 9, 2]
      target: 2
    export: %s
    format: csv
sweeps:
  - algorithm: selection_sort
    min_size: 2
    max_size: 8
    num_steps: 4
    trials: 2
`

func writeScenario(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "search.csv")
	path := filepath.Join(dir, "scenario.yaml")
	body := []byte(strings.Replace(scenarioYAML, "%s", out, 1))
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}
	return path, out
}

func TestRunScenario(t *testing.T) {
	path, out := writeScenario(t)
	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sc.Name != "warmup" || len(sc.Runs) != 3 || len(sc.Sweeps) != 1 {
		t.Fatalf("scenario = %+v", sc)
	}

	results, err := RunScenario(context.Background(), sc, catalog.NewRegistry(), logging.NewNop())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}
	if got := results[0].Summary.Final.Swaps; got != 28 {
		t.Errorf("reversed bubble sort swaps = %d, want 28", got)
	}
	if results[2].Summary.Terminal != step.Found {
		t.Errorf("search terminal = %s", results[2].Summary.Terminal)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("export not written: %v", err)
	}
}

func TestRunScenario_StopsOnError(t *testing.T) {
	sc := &Scenario{Runs: []Run{
		{Algorithm: "bubble_sort"},
		{Algorithm: "no_such_algorithm"},
		{Algorithm: "merge_sort"},
	}}
	results, err := RunScenario(context.Background(), sc, catalog.NewRegistry(), logging.NewNop())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(results) != 1 {
		t.Errorf("got %d results before the failure, want 1", len(results))
	}
}

func TestRunScenario_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunScenario(ctx, &Scenario{Runs: []Run{{Algorithm: "bubble_sort"}}}, catalog.NewRegistry(), logging.NewNop())
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestResolve_RandomNeedsArray(t *testing.T) {
	if _, err := Resolve(catalog.NewRegistry(), Run{Algorithm: "lcs", Random: 5}); err == nil {
		t.Error("expected error for lcs with random input")
	}
	params, err := Resolve(catalog.NewRegistry(), Run{Algorithm: "priority_queue", Random: 5, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if vals, ok := params["values"].([]int); !ok || len(vals) != 5 {
		t.Errorf("values = %v", params["values"])
	}
}

func TestSweep_Sizes(t *testing.T) {
	tests := []struct {
		sweep Sweep
		want  []int
	}{
		{Sweep{MinSize: 2, MaxSize: 8, NumSteps: 4}, []int{2, 4, 6, 8}},
		{Sweep{MinSize: 1, MaxSize: 2, NumSteps: 5}, []int{1, 2}},
		{Sweep{MinSize: 5, MaxSize: 5, NumSteps: 3}, []int{5}},
	}
	for _, tt := range tests {
		got := tt.sweep.Sizes()
		if len(got) != len(tt.want) {
			t.Errorf("%+v: got %v, want %v", tt.sweep, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%+v: got %v, want %v", tt.sweep, got, tt.want)
				break
			}
		}
	}
}

func TestRunSweep(t *testing.T) {
	sweep := Sweep{Algorithm: "selection_sort", MinSize: 2, MaxSize: 8, NumSteps: 4, Trials: 2, Seed: 3}
	results, err := RunSweep(context.Background(), sweep, catalog.NewRegistry(), logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d sizes", len(results))
	}
	for _, r := range results {
		// Selection sort always makes n(n-1)/2 comparisons.
		want := r.Size * (r.Size - 1) / 2
		if r.MinComparisons != want || r.MaxComparisons != want {
			t.Errorf("size %d: comparisons %d..%d, want %d", r.Size, r.MinComparisons, r.MaxComparisons, want)
		}
	}
}

func TestRunTrials_Deterministic(t *testing.T) {
	reg := catalog.NewRegistry()
	a, err := runTrials(context.Background(), reg, "quick_sort", 20, 6, 11)
	if err != nil {
		t.Fatal(err)
	}
	b, err := runTrials(context.Background(), reg, "quick_sort", 20, 6, 11)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i].Final != b[i].Final || a[i].Steps != b[i].Steps {
			t.Errorf("trial %d differs: %+v vs %+v", i, a[i].Final, b[i].Final)
		}
	}
}

func TestRunTrials_NoArrayInput(t *testing.T) {
	if _, err := runTrials(context.Background(), catalog.NewRegistry(), "dijkstra", 4, 2, 1); err == nil {
		t.Error("expected error for graph algorithm")
	}
}
