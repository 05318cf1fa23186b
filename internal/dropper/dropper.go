// Package dropper simulates packet loss and arrival reordering for
// exercising a decoder with something other than a clean, in-order stream.
package dropper

import (
	"math/rand"
)

// Bernoulli implements a simple u<p drop decision.
type Bernoulli struct {
	p   float64
	rng *rand.Rand
}

func New(p float64, rng *rand.Rand) *Bernoulli { return &Bernoulli{p: p, rng: rng} }

func (b *Bernoulli) Drop() bool {
	if b.p <= 0 {
		return false
	}
	if b.p >= 1 {
		return true
	}
	return b.rng.Float64() < b.p
}

// ShuffleIndices returns a random permutation of [0, n), letting a caller
// feed a decoder packets in an order other than the one they were
// generated in (spec.md §8 seed scenario 6: "shuffled arrival").
func ShuffleIndices(n int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx
}
