package catalog

import "math/rand/v2"

// RandomArray returns n values in [0, limit) from a seeded source, so the
// same seed always yields the same input.
func RandomArray(n int, seed uint64, limit int) []int {
	if n <= 0 {
		return []int{}
	}
	if limit <= 0 {
		limit = 100
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.IntN(limit)
	}
	return out
}
