package catalog

import (
	"slices"

	"github.com/mitchellh/mapstructure"

	"github.com/san-kum/algoviz/internal/algo"
	"github.com/san-kum/algoviz/internal/step"
)

// Typed inputs decoded from free-form parameter maps.
type (
	ArrayParams struct {
		Array []int `mapstructure:"array"`
	}

	SearchParams struct {
		Array  []int `mapstructure:"array"`
		Target int   `mapstructure:"target"`
	}

	ValuesParams struct {
		Values []int `mapstructure:"values"`
	}

	TraversalParams struct {
		Values []int  `mapstructure:"values"`
		Order  string `mapstructure:"order"`
	}

	CoinParams struct {
		Coins  []int `mapstructure:"coins"`
		Amount int   `mapstructure:"amount"`
	}

	LCSParams struct {
		A string `mapstructure:"a"`
		B string `mapstructure:"b"`
	}

	FibParams struct {
		N int `mapstructure:"n"`
	}

	KnapsackParams struct {
		Weights  []int `mapstructure:"weights"`
		Values   []int `mapstructure:"values"`
		Capacity int   `mapstructure:"capacity"`
	}

	// GraphParams lists edges as [from, to] or [from, to, weight].
	GraphParams struct {
		Nodes    int     `mapstructure:"nodes"`
		Edges    [][]int `mapstructure:"edges"`
		Directed bool    `mapstructure:"directed"`
		Start    int     `mapstructure:"start"`
	}
)

// Graph builds the adjacency list; edges without a weight get weight 1.
func (p GraphParams) Graph() algo.Graph {
	edges := make([]step.Edge, 0, len(p.Edges))
	for _, e := range p.Edges {
		if len(e) < 2 {
			continue
		}
		w := 1
		if len(e) > 2 {
			w = e[2]
		}
		edges = append(edges, step.Edge{From: e[0], To: e[1], Weight: w})
	}
	return algo.NewGraph(p.Nodes, edges, p.Directed)
}

// SortedArray returns a sorted copy for algorithms that require ordered input.
func (p SearchParams) SortedArray() []int {
	a := slices.Clone(p.Array)
	slices.Sort(a)
	return a
}

func decode[T any](params map[string]any) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &out,
		ErrorUnused: true,
	})
	if err != nil {
		return out, err
	}
	if err := dec.Decode(params); err != nil {
		return out, err
	}
	return out, nil
}
