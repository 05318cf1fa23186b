//go:build decoder_debug

package fec

// checkInvariants re-derives rank from occupancy and checks every coded
// row is zero in every uncoded column, the two invariants spec.md §9 asks
// implementers to assert after a swap. Only compiled in with -tags
// decoder_debug: the hot elimination path never pays for it otherwise.
func (d *Decoder) checkInvariants() {
	occupied := 0
	for i := 0; i < d.k; i++ {
		if d.uncoded[i] && d.coded[i] {
			panic("fec: slot is both coded and uncoded")
		}
		if d.uncoded[i] || d.coded[i] {
			occupied++
		}
	}
	if occupied != d.rank {
		panic("fec: rank does not match occupied slot count")
	}
	for i := 0; i < d.k; i++ {
		if !d.coded[i] {
			continue
		}
		vi := d.rows.V(i)
		for j := 0; j < d.k; j++ {
			if d.uncoded[j] && d.rows.Coefficient(j, vi) != 0 {
				panic("fec: coded row non-zero in an uncoded column")
			}
		}
	}
}
