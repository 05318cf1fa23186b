package fec_test

import (
	"testing"

	"github.com/gofec/blockdecoder/fec"
	"github.com/gofec/blockdecoder/fec/fecmock"
	"go.uber.org/mock/gomock"
)

// TestDecoder_NonBinaryCallsNormalizeOnce exercises Decoder's control flow in
// isolation from either real FieldOps/RowStore implementation: a single
// coded packet into an empty one-symbol block must do exactly one pivot
// scan, one normalize step (Invert plus two Multiply calls), no forward or
// backward substitution (there is nothing stored yet to substitute
// against), and exactly one store into slot 0.
func TestDecoder_NonBinaryCallsNormalizeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	field := fecmock.NewMockFieldOps(ctrl)
	rows := fecmock.NewMockRowStore(ctrl)

	vBuf := make([]byte, 1)
	sBuf := make([]byte, 1)

	rows.EXPECT().Resize(1, 1)
	rows.EXPECT().Coefficient(0, gomock.Any()).Return(byte(5)).Times(2)
	field.EXPECT().IsBinary().Return(false)
	field.EXPECT().Invert(byte(5)).Return(byte(41))
	field.EXPECT().Multiply(gomock.Any(), byte(41)).Times(2)
	rows.EXPECT().V(0).Return(vBuf)
	rows.EXPECT().S(0).Return(sBuf)

	dec := fec.NewDecoder(field, rows, 1, 1)
	dec.Reset(1, 1)
	dec.Decode([]byte{7}, []byte{5})

	if dec.Rank() != 1 || !dec.IsComplete() {
		t.Fatalf("expected rank 1 complete, got rank=%d complete=%v", dec.Rank(), dec.IsComplete())
	}
}

// TestDecoder_DependentPacketSkipsNormalize checks the other branch of the
// same pivot scan: a coded row that lands on an already-occupied column
// must be eliminated against the stored row and dropped, without a second
// store call or any normalize/Invert work.
func TestDecoder_DependentPacketSkipsNormalize(t *testing.T) {
	ctrl := gomock.NewController(t)
	field := fecmock.NewMockFieldOps(ctrl)
	rows := fecmock.NewMockRowStore(ctrl)

	storedV := []byte{1}
	storedS := []byte{9}

	rows.EXPECT().Resize(1, 1)
	rows.EXPECT().Coefficient(0, gomock.Any()).Return(byte(1)).Times(2)
	field.EXPECT().IsBinary().Return(true).AnyTimes()
	rows.EXPECT().V(0).Return(storedV).Times(2)
	rows.EXPECT().S(0).Return(storedS).Times(2)
	field.EXPECT().Subtract(gomock.Any(), storedV)
	field.EXPECT().Subtract(gomock.Any(), storedS)

	dec := fec.NewDecoder(field, rows, 1, 1)
	dec.Reset(1, 1)
	dec.Decode([]byte{9}, []byte{1}) // stores into slot 0, rank -> 1
	dec.Decode([]byte{9}, []byte{1}) // dependent, must not change rank

	if dec.Rank() != 1 {
		t.Fatalf("dependent packet must not change rank, got %d", dec.Rank())
	}
}
