// Package automation runs scripted batches of generations from YAML
// scenario files.
package automation

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/export"
	"github.com/san-kum/algoviz/internal/metrics"
)

const randomLimit = 100

// Scenario is a scripted list of runs and size sweeps.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Runs        []Run   `yaml:"runs"`
	Sweeps      []Sweep `yaml:"sweeps"`
}

// Run generates one trace. Params override the preset, and Random replaces
// the array input with Random seeded values.
type Run struct {
	Algorithm string         `yaml:"algorithm"`
	Preset    string         `yaml:"preset"`
	Params    map[string]any `yaml:"params"`
	Random    int            `yaml:"random"`
	Seed      uint64         `yaml:"seed"`
	Export    string         `yaml:"export"`
	Format    string         `yaml:"format"`
}

// RunResult pairs a run with the summary of its trace.
type RunResult struct {
	Run     Run
	Summary metrics.Summary
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Resolve builds the parameter map for run: preset, then explicit params,
// then the random array.
func Resolve(reg *catalog.Registry, run Run) (map[string]any, error) {
	e, err := reg.Get(run.Algorithm)
	if err != nil {
		return nil, err
	}
	params := map[string]any{}
	if run.Preset != "" {
		p, err := config.GetPreset(run.Algorithm, run.Preset)
		if err != nil {
			return nil, err
		}
		for k, v := range p.Params {
			params[k] = v
		}
	}
	for k, v := range run.Params {
		params[k] = v
	}
	if run.Random > 0 {
		key := e.RandomKey()
		if key == "" {
			return nil, fmt.Errorf("%s takes no array input to randomise", run.Algorithm)
		}
		params[key] = catalog.RandomArray(run.Random, run.Seed, randomLimit)
	}
	return params, nil
}

// RunScenario executes the runs in order, exporting where asked. It stops
// at the first failing run and returns the results so far.
func RunScenario(ctx context.Context, scenario *Scenario, reg *catalog.Registry, logger *slog.Logger) ([]RunResult, error) {
	results := make([]RunResult, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		logger.Info("running", "run", i+1, "of", len(scenario.Runs), "algorithm", run.Algorithm)

		params, err := Resolve(reg, run)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}
		seq, err := reg.Generate(run.Algorithm, params)
		if err != nil {
			return results, fmt.Errorf("run %d: %w", i+1, err)
		}

		if run.Export != "" {
			format := export.JSON
			if run.Format != "" {
				if format, err = export.ParseFormat(run.Format); err != nil {
					return results, fmt.Errorf("run %d: %w", i+1, err)
				}
			}
			if err := export.WriteFile(run.Export, format, seq, seq.Len()-1); err != nil {
				return results, fmt.Errorf("run %d export: %w", i+1, err)
			}
			logger.Info("exported", "path", run.Export, "format", format)
		}

		results = append(results, RunResult{Run: run, Summary: metrics.Summarize(seq)})
	}

	return results, nil
}

// Sweep runs an algorithm on random inputs of growing size, Trials times
// per size, to show how its counters scale.
type Sweep struct {
	Algorithm string `yaml:"algorithm"`
	MinSize   int    `yaml:"min_size"`
	MaxSize   int    `yaml:"max_size"`
	NumSteps  int    `yaml:"num_steps"`
	Trials    int    `yaml:"trials"`
	Seed      uint64 `yaml:"seed"`
}

// SweepResult aggregates the trials at one input size.
type SweepResult struct {
	Size            int
	Trials          int
	MinComparisons  int
	MaxComparisons  int
	MeanComparisons float64
	MeanSwaps       float64
	MeanWrites      float64
	MeanSteps       float64
}

// Sizes lists the input sizes of the sweep, evenly spaced and deduplicated.
func (s Sweep) Sizes() []int {
	if s.NumSteps <= 1 || s.MaxSize <= s.MinSize {
		return []int{max(s.MinSize, 0)}
	}
	out := make([]int, 0, s.NumSteps)
	step := float64(s.MaxSize-s.MinSize) / float64(s.NumSteps-1)
	for i := 0; i < s.NumSteps; i++ {
		n := s.MinSize + int(math.Round(float64(i)*step))
		if len(out) == 0 || out[len(out)-1] != n {
			out = append(out, n)
		}
	}
	return out
}

// RunSweep executes a sweep. Trial t at every size uses seed Seed+t, so a
// sweep is reproducible.
func RunSweep(ctx context.Context, sweep Sweep, reg *catalog.Registry, logger *slog.Logger) ([]SweepResult, error) {
	trials := max(sweep.Trials, 1)
	sizes := sweep.Sizes()
	results := make([]SweepResult, 0, len(sizes))

	for i, n := range sizes {
		sums, err := runTrials(ctx, reg, sweep.Algorithm, n, trials, sweep.Seed)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", n, err)
		}

		res := SweepResult{Size: n, Trials: trials, MinComparisons: math.MaxInt}
		for _, sum := range sums {
			res.MinComparisons = min(res.MinComparisons, sum.Final.Comparisons)
			res.MaxComparisons = max(res.MaxComparisons, sum.Final.Comparisons)
			res.MeanComparisons += float64(sum.Final.Comparisons)
			res.MeanSwaps += float64(sum.Final.Swaps)
			res.MeanWrites += float64(sum.Final.Writes)
			res.MeanSteps += float64(sum.Steps)
		}
		k := float64(trials)
		res.MeanComparisons /= k
		res.MeanSwaps /= k
		res.MeanWrites /= k
		res.MeanSteps /= k
		results = append(results, res)

		logger.Info("sweep", "algorithm", sweep.Algorithm, "size", n, "done", i+1, "of", len(sizes))
	}

	return results, nil
}
