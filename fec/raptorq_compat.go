package fec

import (
	"errors"

	rqq "github.com/xssnick/raptorq"
)

// ReferenceRaptorQDecoder wraps the xssnick/raptorq library's own decoder,
// solely so cmd/blockdecoder_eval can run -scheme=raptorq trials (same k,
// r, l, loss and shuffle settings, but the library's own symbol stream)
// through an independent, externally-implemented RaptorQ decoder as a
// success-rate and speed comparison for Decoder. It has no bearing on Decoder's own
// correctness - raptorq's internals are opaque and not Gaussian-elimination
// shaped at this API surface - it exists only as a second, trusted
// implementation to diff against in the eval harness, the same role the
// teacher's cmd/raptorq_eval gave this dependency.
type ReferenceRaptorQDecoder struct {
	K int
	L int
	d *rqq.Decoder
}

// NewReferenceRaptorQDecoder creates a reference decoder for a generation of
// the given original data size and symbol length.
func NewReferenceRaptorQDecoder(dataSize, l int) (*ReferenceRaptorQDecoder, error) {
	if dataSize < 0 || l <= 0 {
		return nil, errors.New("fec: bad dataSize or symbol length")
	}
	rq := rqq.NewRaptorQ(uint32(l))
	dec, err := rq.CreateDecoder(uint32(dataSize))
	if err != nil {
		return nil, err
	}
	return &ReferenceRaptorQDecoder{K: int(dec.FastSymbolsNumRequired()), L: l, d: dec}, nil
}

// AddSymbol feeds one symbol with its id. The return value reports whether
// decoding can now be attempted.
func (r *ReferenceRaptorQDecoder) AddSymbol(id uint32, data []byte) (bool, error) {
	return r.d.AddSymbol(id, data)
}

// Decode attempts to reconstruct the original payload.
func (r *ReferenceRaptorQDecoder) Decode() (bool, []byte, error) {
	return r.d.Decode()
}

// ReferenceRaptorQEncoder wraps the xssnick/raptorq encoder, generating the
// symbol stream that ReferenceRaptorQDecoder is driven with in the eval
// harness's -scheme=raptorq runs. Decoder is not fed this stream.
type ReferenceRaptorQEncoder struct {
	L int
	e *rqq.Encoder
}

// NewReferenceRaptorQEncoder creates an encoder for one generation of data,
// symbol length l.
func NewReferenceRaptorQEncoder(data []byte, l int) (*ReferenceRaptorQEncoder, error) {
	if l <= 0 {
		return nil, errors.New("fec: bad symbol length")
	}
	rq := rqq.NewRaptorQ(uint32(l))
	enc, err := rq.CreateEncoder(data)
	if err != nil {
		return nil, err
	}
	return &ReferenceRaptorQEncoder{L: l, e: enc}, nil
}

// GenSymbol returns the symbol bytes for a given symbol id. For
// 0 <= id < BaseSymbolsNum, these are the systematic source symbols.
func (e *ReferenceRaptorQEncoder) GenSymbol(id uint32) []byte {
	return e.e.GenSymbol(id)
}

// BaseSymbolsNum returns K for this generation as reported by the library.
func (e *ReferenceRaptorQEncoder) BaseSymbolsNum() uint32 { return e.e.BaseSymbolsNum() }
