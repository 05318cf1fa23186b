package fec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGF256_MultiplyInvertRoundTrip(t *testing.T) {
	f := GF256{}
	for a := 1; a < 256; a++ {
		inv := f.Invert(byte(a))
		require.Equal(t, byte(1), gf256Mul(byte(a), inv), "a=%d", a)
	}
}

func TestGF256_MultiplySubtractMatchesMultiplyThenSubtract(t *testing.T) {
	f := GF256{}
	src := []byte{1, 2, 3, 250}
	for scalar := 0; scalar < 256; scalar++ {
		dst := []byte{10, 20, 30, 40}
		want := append([]byte(nil), dst...)
		scaled := append([]byte(nil), src...)
		f.Multiply(scaled, byte(scalar))
		f.Subtract(want, scaled)

		got := append([]byte(nil), dst...)
		f.MultiplySubtract(got, src, byte(scalar))

		require.Equal(t, want, got, "scalar=%d", scalar)
	}
}

func TestBinary_SubtractIsXOR(t *testing.T) {
	b := Binary{}
	dst := []byte{0xFF, 0x00, 0x0F}
	src := []byte{0x0F, 0xFF, 0x0F}
	b.Subtract(dst, src)
	require.Equal(t, []byte{0xF0, 0xFF, 0x00}, dst)
}

func TestBinary_InvertIsIdentity(t *testing.T) {
	require.Equal(t, byte(1), Binary{}.Invert(1))
}
