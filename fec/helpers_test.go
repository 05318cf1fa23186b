package fec

import "math/rand"

// randomSymbols returns k independent random payloads of m bytes, used by
// the GF(256) round-trip tests (spec.md §8 scenarios 5 and 6).
func randomSymbols(k, m int) [][]byte {
	rng := rand.New(rand.NewSource(1))
	out := make([][]byte, k)
	for i := range out {
		row := make([]byte, m)
		rng.Read(row)
		out[i] = row
	}
	return out
}

// randomFullRankMatrix returns a k x k GF(256) Vandermonde matrix built
// from k distinct randomly-shuffled non-zero nodes. Distinct nodes make a
// Vandermonde matrix invertible by construction, so this is full rank
// without needing a rank check after the fact.
func randomFullRankMatrix(k int) [][]byte {
	rng := rand.New(rand.NewSource(2))
	nodes := rng.Perm(255)
	rows := make([][]byte, k)
	for r := 0; r < k; r++ {
		x := byte(nodes[r] + 1)
		row := make([]byte, k)
		pow := byte(1)
		for c := 0; c < k; c++ {
			row[c] = pow
			pow = gf256Mul(pow, x)
		}
		rows[r] = row
	}
	return rows
}
