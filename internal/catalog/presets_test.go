package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/step"
)

func TestPresets_GenerateValidTraces(t *testing.T) {
	r := catalog.NewRegistry()
	for algorithm := range config.Presets {
		_, err := r.Get(algorithm)
		require.NoError(t, err, "preset table names unknown algorithm %s", algorithm)

		for _, name := range config.ListPresets(algorithm) {
			p, err := config.GetPreset(algorithm, name)
			require.NoError(t, err)

			seq, err := r.Generate(algorithm, p.Params)
			require.NoError(t, err, "%s/%s", algorithm, name)
			assert.NoError(t, step.Validate(seq), "%s/%s", algorithm, name)
		}
	}
}

func TestPresets_CoverEveryAlgorithm(t *testing.T) {
	for _, name := range catalog.NewRegistry().List() {
		assert.NotEmpty(t, config.ListPresets(name), name)
	}
}
