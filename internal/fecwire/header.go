// Package fecwire describes the on-disk packet header cmd/blockdecoder_eval's
// -record/-replay flags use to serialize a trial's packet stream for replay.
// Adapted from the teacher's FECHeader, trimmed to the schemes this module
// still implements.
package fecwire

import "encoding/binary"

// Scheme identifiers for the header's Scheme field.
const (
	SchemeRLCBinary uint8 = 0
	SchemeRLCGF256  uint8 = 1
	SchemeRS        uint8 = 2
)

// Header describes one serialized packet: which block it belongs to, which
// scheme and field generated it, and the dimensions needed to reconstruct
// a fec.Packet without a side channel.
type Header struct {
	Version    uint8  // 1
	Scheme     uint8  // SchemeRLCBinary, SchemeRLCGF256, or SchemeRS
	BlockID    uint16 // per-block counter
	K          uint8
	SymID      uint8  // packet index within the block
	Flags      uint8  // reserved
	PayloadLen uint32 // length in bytes of the packet data that follows
}

const HeaderLen = 1 + 1 + 2 + 1 + 1 + 1 + 4

func (h *Header) MarshalBinary(b []byte) []byte {
	if len(b) < HeaderLen {
		b = make([]byte, HeaderLen)
	}
	b[0] = h.Version
	b[1] = h.Scheme
	binary.LittleEndian.PutUint16(b[2:4], h.BlockID)
	b[4] = h.K
	b[5] = h.SymID
	b[6] = h.Flags
	binary.LittleEndian.PutUint32(b[7:11], h.PayloadLen)
	return b[:HeaderLen]
}

func (h *Header) UnmarshalBinary(b []byte) bool {
	if len(b) < HeaderLen {
		return false
	}
	h.Version = b[0]
	h.Scheme = b[1]
	h.BlockID = binary.LittleEndian.Uint16(b[2:4])
	h.K = b[4]
	h.SymID = b[5]
	h.Flags = b[6]
	h.PayloadLen = binary.LittleEndian.Uint32(b[7:11])
	return true
}
