package dropper

import (
	"math/rand"
	"testing"
)

func TestBernoulli_Extremes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if New(0, rng).Drop() {
		t.Fatal("p=0 must never drop")
	}
	if !New(1, rng).Drop() {
		t.Fatal("p=1 must always drop")
	}
}

func TestShuffleIndices_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 20
	perm := ShuffleIndices(n, rng)
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			t.Fatalf("not a permutation of [0,%d): %v", n, perm)
		}
		seen[v] = true
	}
}
