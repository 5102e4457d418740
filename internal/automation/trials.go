package automation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/metrics"
)

// runTrials generates one trace per seed, seedStart upwards, concurrently.
// Summaries are indexed by trial so the result does not depend on
// scheduling. The first failure cancels the remaining trials.
func runTrials(ctx context.Context, reg *catalog.Registry, algorithm string, size, trials int, seedStart uint64) ([]metrics.Summary, error) {
	e, err := reg.Get(algorithm)
	if err != nil {
		return nil, err
	}
	key := e.RandomKey()
	if key == "" {
		return nil, fmt.Errorf("%s takes no array input to randomise", algorithm)
	}

	sums := make([]metrics.Summary, trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range trials {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			params := map[string]any{key: catalog.RandomArray(size, seedStart+uint64(i), randomLimit)}
			seq, err := reg.Generate(algorithm, params)
			if err != nil {
				return err
			}
			sums[i] = metrics.Summarize(seq)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sums, nil
}
