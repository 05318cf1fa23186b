package fec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gofec/blockdecoder/fec"
	"github.com/gofec/blockdecoder/internal/dropper"
)

// TestRLC_SurvivesLossAndReorder drives EncodeRLC/DecodeRLC end to end: K
// source symbols, R parity packets with half of them dropped, and a shuffle
// before decoding, mirroring spec.md §8 scenario 6 at the batch-decoder
// level rather than the incremental one decoder_test.go exercises.
func TestRLC_SurvivesLossAndReorder(t *testing.T) {
	const k, r, l = 10, 6, 64
	rng := rand.New(rand.NewSource(42))
	src := make([][]byte, k)
	for i := range src {
		src[i] = make([]byte, l)
		rng.Read(src[i])
	}

	parity := fec.EncodeRLC(src, k, r, "gf256")
	all := make([]fec.Packet, 0, k+r)
	for i, s := range src {
		all = append(all, fec.Packet{Index: i, Data: append([]byte(nil), s...)})
	}
	all = append(all, parity...)

	// Drop exactly 3 of the 6 parity packets, deterministically: enough loss
	// to be a meaningful test of the "not all packets arrive" case, without
	// making the test's pass/fail depend on a PRNG seed leaving >= K
	// survivors by chance.
	survivors := append([]fec.Packet(nil), all[:k+3]...)

	order := dropper.ShuffleIndices(len(survivors), rng)
	shuffled := make([]fec.Packet, len(survivors))
	for i, j := range order {
		shuffled[i] = survivors[j]
	}

	out, err := fec.DecodeRLC(shuffled, k, "gf256")
	require.NoError(t, err)
	for i := range src {
		require.Equal(t, src[i], out[i], "symbol %d", i)
	}
}

// TestRLC_TooFewPacketsIsReported checks that a stream thinned below K
// packets is reported as such rather than silently returning a partial or
// wrong block.
func TestRLC_TooFewPacketsIsReported(t *testing.T) {
	const k, l = 5, 16
	src := make([][]byte, k)
	for i := range src {
		src[i] = make([]byte, l)
	}
	recv := []fec.Packet{{Index: 0, Data: src[0]}, {Index: 1, Data: src[1]}}
	_, err := fec.DecodeRLC(recv, k, "gf2")
	require.ErrorIs(t, err, fec.ErrNotEnoughPackets)
}

// TestRS_ExactlyKPacketsAnyCombination checks the Reed-Solomon systematic
// property: any K of the K+R packets, whether systematic or parity, in any
// order, reconstruct the block.
func TestRS_ExactlyKPacketsAnyCombination(t *testing.T) {
	const k, r, l = 8, 10, 48
	rng := rand.New(rand.NewSource(7))
	src := make([][]byte, k)
	for i := range src {
		src[i] = make([]byte, l)
		rng.Read(src[i])
	}

	parity, err := fec.EncodeRS(src, k, r)
	require.NoError(t, err)

	all := make([]fec.Packet, 0, k+r)
	for i, s := range src {
		all = append(all, fec.Packet{Index: i, Data: append([]byte(nil), s...)})
	}
	all = append(all, parity...)

	order := dropper.ShuffleIndices(len(all), rng)
	chosen := make([]fec.Packet, 0, k)
	for _, j := range order {
		chosen = append(chosen, all[j])
		if len(chosen) == k {
			break
		}
	}

	out, err := fec.DecodeRS(chosen, k, r)
	require.NoError(t, err)
	for i := range src {
		require.Equal(t, src[i], out[i], "symbol %d", i)
	}
}

// TestRS_RankDeficientIsReported checks that duplicate packets (carrying no
// new rank) are correctly reported as insufficient rather than spuriously
// completing.
func TestRS_RankDeficientIsReported(t *testing.T) {
	const k, r, l = 4, 4, 16
	src := make([][]byte, k)
	for i := range src {
		src[i] = make([]byte, l)
	}
	parity, err := fec.EncodeRS(src, k, r)
	require.NoError(t, err)

	dup := []fec.Packet{parity[0], parity[0], parity[0], parity[0]}
	_, err = fec.DecodeRS(dup, k, r)
	require.ErrorIs(t, err, fec.ErrRankDeficient)
}
