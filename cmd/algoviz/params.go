package main

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
)

// inputFlags are the generator inputs shared by every command that
// generates a trace.
type inputFlags struct {
	preset     string
	paramsFile string
	array      []int
	target     int
	coins      []int
	amount     int
	a, b       string
	n          int
	values     []int
	weights    []int
	capacity   int
	order      string
	nodes      int
	edges      string
	directed   bool
	start      int
	random     int
	seed       uint64
}

func addInputFlags(cmd *cobra.Command, in *inputFlags) {
	f := cmd.Flags()
	f.StringVar(&in.preset, "preset", "", "use a built-in preset")
	f.StringVar(&in.paramsFile, "params", "", "parameter file (yaml or json)")
	f.IntSliceVar(&in.array, "array", nil, "input array, e.g. 5,1,4")
	f.IntVar(&in.target, "target", 0, "search target")
	f.IntSliceVar(&in.coins, "coins", nil, "coin denominations")
	f.IntVar(&in.amount, "amount", 0, "coin change amount")
	f.StringVar(&in.a, "a", "", "first LCS string")
	f.StringVar(&in.b, "b", "", "second LCS string")
	f.IntVar(&in.n, "n", 0, "fibonacci index")
	f.IntSliceVar(&in.values, "values", nil, "values (heap, tree, knapsack)")
	f.IntSliceVar(&in.weights, "weights", nil, "knapsack item weights")
	f.IntVar(&in.capacity, "capacity", 0, "knapsack capacity")
	f.StringVar(&in.order, "order", "", "tree traversal order")
	f.IntVar(&in.nodes, "nodes", 0, "graph vertex count")
	f.StringVar(&in.edges, "edges", "", "graph edges, e.g. 0-1:4,1-2")
	f.BoolVar(&in.directed, "directed", false, "treat edges as directed")
	f.IntVar(&in.start, "start", 0, "graph start vertex")
	f.IntVar(&in.random, "random", 0, "use a random array of this size")
	f.Uint64Var(&in.seed, "seed", 1, "seed for --random")
}

// resolve merges parameter sources, later ones winning: config file params
// for this algorithm, preset, params file, explicit flags, random input.
func (in *inputFlags) resolve(flags *pflag.FlagSet, algorithm string) (map[string]any, error) {
	e, err := cli.registry.Get(algorithm)
	if err != nil {
		return nil, err
	}

	params := map[string]any{}
	if cli.cfg.Algorithm == algorithm {
		maps.Copy(params, cli.cfg.Params)
	}
	if in.preset != "" {
		p, err := config.GetPreset(algorithm, in.preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets(algorithm))
		}
		maps.Copy(params, p.Params)
	}
	if in.paramsFile != "" {
		fromFile, err := config.LoadParams(in.paramsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load params: %w", err)
		}
		maps.Copy(params, fromFile)
	}

	set := func(flag, key string, v any) {
		if flags.Changed(flag) {
			params[key] = v
		}
	}
	set("array", "array", in.array)
	set("target", "target", in.target)
	set("coins", "coins", in.coins)
	set("amount", "amount", in.amount)
	set("a", "a", in.a)
	set("b", "b", in.b)
	set("n", "n", in.n)
	set("values", "values", in.values)
	set("weights", "weights", in.weights)
	set("capacity", "capacity", in.capacity)
	set("order", "order", in.order)
	set("nodes", "nodes", in.nodes)
	set("directed", "directed", in.directed)
	set("start", "start", in.start)
	if flags.Changed("edges") {
		edges, err := parseEdges(in.edges)
		if err != nil {
			return nil, err
		}
		params["edges"] = edges
	}

	if in.random > 0 {
		key := e.RandomKey()
		if key == "" {
			return nil, fmt.Errorf("--random: %s has no array input", algorithm)
		}
		params[key] = catalog.RandomArray(in.random, in.seed, 100)
	}
	return params, nil
}

// parseEdges reads "from-to[:weight]" pairs separated by commas.
func parseEdges(s string) ([][]int, error) {
	var out [][]int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ends, weight, weighted := strings.Cut(part, ":")
		from, to, ok := strings.Cut(ends, "-")
		if !ok {
			return nil, fmt.Errorf("edge %q: want from-to[:weight]", part)
		}
		edge := make([]int, 0, 3)
		for _, field := range []string{from, to} {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("edge %q: %w", part, err)
			}
			edge = append(edge, v)
		}
		if weighted {
			w, err := strconv.Atoi(strings.TrimSpace(weight))
			if err != nil {
				return nil, fmt.Errorf("edge %q weight: %w", part, err)
			}
			edge = append(edge, w)
		}
		out = append(out, edge)
	}
	return out, nil
}
