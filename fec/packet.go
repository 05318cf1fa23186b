package fec

import (
	crand "crypto/rand"
	"errors"
)

// Packet is a received unit of a linear block code: either a systematic
// (raw) symbol, carried at Index < K with no coefficient header, or a
// coded combination, carried at Index >= K. For RLC, a coded packet's Data
// holds a K-byte coefficient header (one byte per coefficient in both
// fields) followed by the payload; an RS parity packet's Data is the
// payload alone, its coefficients given by RSGeneratorRow.
//
// Packet itself is plumbing for the test/bench callers in this file and in
// cmd/blockdecoder_eval - encoder side and wire framing are out of scope
// for the decoder engine, per spec.md §1.
type Packet struct {
	Index int
	Data  []byte
}

var (
	// ErrNotEnoughPackets is returned when fewer than K packets were
	// supplied to a batch decode helper.
	ErrNotEnoughPackets = errors.New("fec: fewer than K packets supplied")
	// ErrRankDeficient is returned when the supplied packets did not
	// reach rank K. Per spec.md §1, there is no rank-deficient fallback:
	// this is reported, not recovered from.
	ErrRankDeficient = errors.New("fec: packets did not reach full rank")
)

// EncodeRLC generates R parity packets for K source symbols using random
// linear combinations over the given field ("gf2" or "gf256"). Grounded on
// the teacher's EncodeRLC; kept byte-for-byte in spirit, since the encoder
// side is an out-of-scope collaborator the decoder tests still need.
func EncodeRLC(src [][]byte, k, r int, field string) []Packet {
	l := 0
	if len(src) > 0 {
		l = len(src[0])
	}
	out := make([]Packet, r)
	for j := 0; j < r; j++ {
		coeff := randomNonZeroRow(k, field)
		y := make([]byte, l)
		if field == "gf2" {
			for i := 0; i < k; i++ {
				if coeff[i]&1 == 1 {
					Binary{}.Subtract(y, src[i])
				}
			}
		} else {
			for i := 0; i < k; i++ {
				GF256{}.MultiplySubtract(y, src[i], coeff[i])
			}
		}
		pkt := make([]byte, k+l)
		copy(pkt, coeff)
		copy(pkt[k:], y)
		out[j] = Packet{Index: k + j, Data: pkt}
	}
	return out
}

// randomNonZeroRow draws K coefficients, retrying until the row is
// non-trivial (not all-zero), matching the teacher's newCoeff.
func randomNonZeroRow(k int, field string) []byte {
	c := make([]byte, k)
	switch field {
	case "gf2":
		for {
			var b [32]byte
			crand.Read(b[:])
			for i := 0; i < k; i++ {
				c[i] = (b[i/8] >> uint(i%8)) & 1
			}
			if anyNonZero(c) {
				return c
			}
		}
	default:
		for i := 0; i < k; i++ {
			for c[i] == 0 {
				var x [1]byte
				crand.Read(x[:])
				c[i] = x[0]
			}
		}
		return c
	}
}

func anyNonZero(row []byte) bool {
	for _, v := range row {
		if v != 0 {
			return true
		}
	}
	return false
}

// DecodeRLC recovers K source symbols from received RLC packets, driving
// the incremental Decoder one packet at a time rather than re-implementing
// Gaussian elimination as a one-shot batch pass the way the teacher's
// DecodeRLC did - the whole point of this module is that the batch and
// streaming cases share one engine.
func DecodeRLC(recv []Packet, k int, field string) ([][]byte, error) {
	if len(recv) < k {
		return nil, ErrNotEnoughPackets
	}
	l, err := rlcSymbolLength(recv, k)
	if err != nil {
		return nil, err
	}

	var dec *Decoder
	if field == "gf2" {
		dec = NewBinaryDecoder(k, l)
	} else {
		dec = NewGF256Decoder(k, l)
	}
	dec.Reset(k, l)

	for _, p := range recv {
		if p.Data == nil {
			continue
		}
		if p.Index < k {
			if len(p.Data) < l {
				continue
			}
			dec.DecodeRaw(p.Data[:l], p.Index)
		} else {
			if len(p.Data) < k+l {
				continue
			}
			sv := append([]byte(nil), p.Data[:k]...)
			sd := append([]byte(nil), p.Data[k:k+l]...)
			dec.Decode(sd, sv)
		}
		if dec.IsComplete() {
			break
		}
	}

	if !dec.IsComplete() {
		return nil, ErrRankDeficient
	}
	out := make([][]byte, k)
	for i := 0; i < k; i++ {
		out[i] = append([]byte(nil), dec.Symbol(i)...)
	}
	return out, nil
}

func rlcSymbolLength(recv []Packet, k int) (int, error) {
	for _, p := range recv {
		if p.Data == nil {
			continue
		}
		if p.Index < k && len(p.Data) > 0 {
			return len(p.Data), nil
		}
	}
	for _, p := range recv {
		if p.Data == nil || len(p.Data) <= k {
			continue
		}
		return len(p.Data) - k, nil
	}
	return 0, errors.New("fec: could not determine symbol length")
}

// EncodeRS generates R Reed-Solomon parity packets over GF(256) for K
// systematic source symbols, using a Vandermonde generator matrix.
// Grounded on the teacher's EncodeRS.
func EncodeRS(src [][]byte, k, r int) ([]Packet, error) {
	if k <= 0 || r < 0 {
		return nil, errors.New("fec: bad k, r")
	}
	if k+r > 255 {
		return nil, errors.New("fec: RS over GF(256) requires k+r <= 255")
	}
	l := 0
	if len(src) > 0 {
		l = len(src[0])
	}
	rowP, err := rsParityRows(k, r)
	if err != nil {
		return nil, err
	}
	out := make([]Packet, r)
	for j := 0; j < r; j++ {
		y := make([]byte, l)
		for c := 0; c < k; c++ {
			GF256{}.MultiplySubtract(y, src[c], rowP[j][c])
		}
		out[j] = Packet{Index: k + j, Data: y}
	}
	return out, nil
}

// RSGeneratorRow returns the coefficient row EncodeRS used for parity
// packet j of an R-parity, K-source Reed-Solomon block, so a caller driving
// Decoder directly (rather than through DecodeRS) can supply it without
// re-deriving the systematic Vandermonde matrix itself.
func RSGeneratorRow(k, r, j int) ([]byte, error) {
	rows, err := rsParityRows(k, r)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= len(rows) {
		return nil, errors.New("fec: parity index out of range")
	}
	return append([]byte(nil), rows[j]...), nil
}

// rsParityRows derives the R systematic-Vandermonde parity rows (each of
// width K) by inverting the source generator matrix, exactly as the
// teacher's EncodeRS/DecodeRS both independently did; factored out once
// since now both share it.
func rsParityRows(k, r int) ([][]byte, error) {
	vsys := make([][]byte, k)
	for i := 0; i < k; i++ {
		vsys[i] = make([]byte, k)
		x := alphaPow(i)
		pow := byte(1)
		for j := 0; j < k; j++ {
			vsys[i][j] = pow
			pow = gf256Mul(pow, x)
		}
	}
	invV, ok := invertMatrix(vsys)
	if !ok {
		return nil, errors.New("fec: systematic Vandermonde matrix not invertible")
	}
	rows := make([][]byte, r)
	for j := 0; j < r; j++ {
		x := alphaPow(k + j)
		rowV := make([]byte, k)
		pow := byte(1)
		for c := 0; c < k; c++ {
			rowV[c] = pow
			pow = gf256Mul(pow, x)
		}
		row := make([]byte, k)
		for c := 0; c < k; c++ {
			var acc byte
			for t := 0; t < k; t++ {
				acc ^= gf256Mul(rowV[t], invV[t][c])
			}
			row[c] = acc
		}
		rows[j] = row
	}
	return rows, nil
}

// DecodeRS recovers K source symbols from any K received RS packets, again
// by driving the shared incremental Decoder instead of the teacher's
// from-scratch batch elimination.
func DecodeRS(recv []Packet, k, r int) ([][]byte, error) {
	if len(recv) < k {
		return nil, ErrNotEnoughPackets
	}
	if k+r > 255 {
		return nil, errors.New("fec: RS over GF(256) requires k+r <= 255")
	}
	l := -1
	for _, p := range recv {
		if p.Data != nil {
			l = len(p.Data)
			break
		}
	}
	if l <= 0 {
		return nil, errors.New("fec: could not determine symbol length")
	}
	rowP, err := rsParityRows(k, r)
	if err != nil {
		return nil, err
	}

	dec := NewGF256Decoder(k, l)
	dec.Reset(k, l)

	for _, p := range recv {
		if p.Data == nil || len(p.Data) < l {
			continue
		}
		sd := append([]byte(nil), p.Data[:l]...)
		if p.Index < k {
			dec.DecodeRaw(sd, p.Index)
		} else {
			j := p.Index - k
			if j < 0 || j >= r {
				continue
			}
			sv := append([]byte(nil), rowP[j]...)
			dec.Decode(sd, sv)
		}
		if dec.IsComplete() {
			break
		}
	}

	if !dec.IsComplete() {
		return nil, ErrRankDeficient
	}
	out := make([][]byte, k)
	for i := 0; i < k; i++ {
		out[i] = append([]byte(nil), dec.Symbol(i)...)
	}
	return out, nil
}
