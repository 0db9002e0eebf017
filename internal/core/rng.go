package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. A simulation owns exactly one RNG and draws every random decision
// from it, so a fixed seed reproduces a whole run.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n). It panics if n <= 0.
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	return r.r.Perm(n)
}

// SampleIndices returns k distinct indices drawn uniformly from [0, n),
// in selection order. k is clamped to [0, n].
func (r *RNG) SampleIndices(n, k int) []int {
	if n < 0 {
		n = 0
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: only the first k slots need settling.
	for i := 0; i < k; i++ {
		j := i + r.r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k:k]
}
