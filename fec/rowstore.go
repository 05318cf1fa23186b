package fec

// RowStore is the symbol/vector backing storage the decoder mutates: one
// coefficient row and one payload row per slot, plus the accessors that
// hide how a row is packed. Grounded on kodo's deep_symbol_storage (a
// single flat buffer sliced per index).
type RowStore interface {
	// V returns the mutable coefficient row for slot i: VectorLength()
	// field elements.
	V(i int) []byte

	// S returns the mutable payload row for slot i: SymbolLength() bytes.
	S(i int) []byte

	// Coefficient decodes column j out of a coefficient row.
	Coefficient(j int, row []byte) byte

	// SetCoefficient writes column j of a coefficient row.
	SetCoefficient(j int, row []byte, x byte)

	VectorLength() int
	SymbolLength() int

	// Resize blanks storage for a new block of the given dimensions. A
	// RowStore is allocated once at its maximum capacity and resized by
	// whichever Decoder owns it each time that Decoder's Reset is called.
	Resize(k, m int)
}

// denseRowStore is the one RowStore both fields use: one byte per
// coefficient (a GF(2) coefficient is just 0 or 1 stored in a full byte),
// one flat backing buffer per row kind (kodo's "deep" storage strategy
// applied to both the V and S matrices). A packed-bit representation for
// GF(2) was tried and dropped: Decoder's coded-packet coefficient vectors
// arrive unpacked (one byte per column, the wire/caller convention
// EncodeRLC and the seed tests both use), so a packed V row would need an
// unpack/repack step on every absorption instead of the straight whole-row
// XOR Binary.Subtract does today - not worth it for coefficient rows that
// are at most k bytes.
type denseRowStore struct {
	kMax, mMax int
	k, m       int
	vecs       []byte // kMax*kMax, row i at [i*kMax : i*kMax+k]
	syms       []byte // kMax*mMax, row i at [i*mMax : i*mMax+m]
}

// newDenseRowStore allocates capacity for up to kMax slots of kMax
// coefficients and mMax payload bytes each.
func newDenseRowStore(kMax, mMax int) *denseRowStore {
	return &denseRowStore{
		kMax: kMax,
		mMax: mMax,
		vecs: make([]byte, kMax*kMax),
		syms: make([]byte, kMax*mMax),
	}
}

func (d *denseRowStore) Resize(k, m int) {
	d.k, d.m = k, m
	for i := range d.vecs {
		d.vecs[i] = 0
	}
	for i := range d.syms {
		d.syms[i] = 0
	}
}

func (d *denseRowStore) V(i int) []byte {
	off := i * d.kMax
	return d.vecs[off : off+d.k]
}

func (d *denseRowStore) S(i int) []byte {
	off := i * d.mMax
	return d.syms[off : off+d.m]
}

func (d *denseRowStore) Coefficient(j int, row []byte) byte       { return row[j] }
func (d *denseRowStore) SetCoefficient(j int, row []byte, x byte) { row[j] = x }

func (d *denseRowStore) VectorLength() int { return d.k }
func (d *denseRowStore) SymbolLength() int { return d.m }
