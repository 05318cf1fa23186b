//go:build !decoder_debug

package fec

// checkInvariants is a no-op in normal builds; see invariants_debug.go for
// the real check, enabled with -tags decoder_debug.
func (d *Decoder) checkInvariants() {}
