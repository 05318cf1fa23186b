// Command blockdecoder_eval drives the fec package's Decoder against
// synthetic RLC, Reed-Solomon and RaptorQ packet streams, optionally under
// simulated loss and reordering, and reports rank/timing/correctness.
// Grounded on the teacher's cmd/fec_eval and cmd/raptorq_eval: same flag
// surface shape, same plain fmt.Printf reporting for the console, with an
// added -json flag for a machine-readable report.
package main

import (
	crand "crypto/rand"
	"errors"
	"flag"
	"fmt"
	mrand "math/rand"
	"os"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gofec/blockdecoder/fec"
	"github.com/gofec/blockdecoder/internal/dropper"
	"github.com/gofec/blockdecoder/internal/fecwire"
)

func main() {
	scheme := flag.String("scheme", "rlc", "scheme to evaluate: rlc, rs, or raptorq")
	field := flag.String("field", "gf256", "field for rlc: gf2 or gf256")
	k := flag.Int("k", 16, "source symbols per block")
	r := flag.Int("r", 6, "parity/repair symbols generated")
	l := flag.Int("l", 1200, "bytes per symbol")
	trials := flag.Int("trials", 2000, "independent trials")
	lossP := flag.Float64("p", 0.05, "per-packet loss probability")
	shuffle := flag.Bool("shuffle", true, "shuffle arrival order before feeding the decoder")
	seed := flag.Int64("seed", 1337, "PRNG seed for loss and shuffle")
	jsonPath := flag.String("json", "", "optional JSON report output path")
	recordPath := flag.String("record", "", "wire-frame trial 0's surviving packets to this file via internal/fecwire")
	replayPath := flag.String("replay", "", "replace trial 0's packet stream with one read back from a -record file")
	flag.Parse()

	rng := mrand.New(mrand.NewSource(*seed))
	drop := dropper.New(*lossP, rng)

	reg := prometheus.NewRegistry()
	metrics := fec.NewMetrics(reg)

	rep := &report{Scheme: *scheme, Field: *field, K: *k, R: *r, L: *l, Trials: *trials, LossP: *lossP}

	for t := 0; t < *trials; t++ {
		wire := wireIO{}
		if t == 0 {
			wire.recordPath, wire.replayPath = *recordPath, *replayPath
		}
		ok, decDur := runTrial(*scheme, *field, *k, *r, *l, drop, *shuffle, rng, metrics, wire)
		rep.TrialCount++
		if ok {
			rep.SuccessCount++
		}
		rep.TotalDecodeNanos += decDur.Nanoseconds()
	}

	fmt.Printf("scheme=%s field=%s k=%d r=%d l=%d trials=%d success=%d/%d avg_decode=%s\n",
		rep.Scheme, rep.Field, rep.K, rep.R, rep.L, rep.TrialCount, rep.SuccessCount, rep.TrialCount,
		time.Duration(rep.avgDecodeNanos()))

	mfs, err := reg.Gather()
	if err != nil {
		fmt.Fprintf(os.Stderr, "metrics: %v\n", err)
		os.Exit(1)
	}
	for _, mf := range mfs {
		fmt.Println(mf.String())
	}

	if *jsonPath != "" {
		if err := writeJSON(*jsonPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "json report: %v\n", err)
			os.Exit(1)
		}
	}
}

// wireIO optionally routes trial 0's packet stream through internal/fecwire
// instead of keeping it in memory, so the bench harness exercises the wire
// header the way a real replay-from-disk tool would.
type wireIO struct {
	recordPath string
	replayPath string
}

// runTrial generates one block of K random symbols, encodes R redundant
// packets, simulates loss and optional reordering, feeds the survivors
// through an InstrumentedDecoder, and reports whether the block decoded
// back to the original bytes.
func runTrial(scheme, field string, k, r, l int, drop *dropper.Bernoulli, shuffle bool, rng *mrand.Rand, metrics *fec.Metrics, wire wireIO) (bool, time.Duration) {
	src := make([][]byte, k)
	for i := range src {
		src[i] = make([]byte, l)
		crand.Read(src[i])
	}

	if scheme == "raptorq" {
		return runRaptorQTrial(src, k, r, l, drop, shuffle, rng)
	}

	var survivors []fec.Packet
	if wire.replayPath != "" {
		replayed, err := readWireTrial(wire.replayPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "replay %s: %v\n", wire.replayPath, err)
			return false, 0
		}
		survivors = replayed
	} else {
		var packets []fec.Packet
		switch scheme {
		case "rs":
			parity, err := fec.EncodeRS(src, k, r)
			if err != nil {
				return false, 0
			}
			packets = append(systematic(src), parity...)
		default:
			parity := fec.EncodeRLC(src, k, r, field)
			packets = append(systematic(src), parity...)
		}

		for _, p := range packets {
			if drop.Drop() {
				continue
			}
			survivors = append(survivors, p)
		}
		if shuffle {
			order := dropper.ShuffleIndices(len(survivors), rng)
			shuffled := make([]fec.Packet, len(survivors))
			for i, j := range order {
				shuffled[i] = survivors[j]
			}
			survivors = shuffled
		}

		if wire.recordPath != "" {
			if err := writeWireTrial(wire.recordPath, wireScheme(scheme, field), uint8(k), survivors); err != nil {
				fmt.Fprintf(os.Stderr, "record %s: %v\n", wire.recordPath, err)
			}
		}
	}

	var dec *fec.Decoder
	if field == "gf2" && scheme != "rs" {
		dec = fec.NewBinaryDecoder(k, l)
	} else {
		dec = fec.NewGF256Decoder(k, l)
	}
	inst := fec.NewInstrumentedDecoder(dec, metrics)
	inst.Reset(k, l)

	start := time.Now()
	for _, p := range survivors {
		if p.Index < k {
			inst.DecodeRaw(p.Data[:l], p.Index)
		} else if scheme == "rs" {
			row, err := fec.RSGeneratorRow(k, r, p.Index-k)
			if err != nil {
				return false, time.Since(start)
			}
			inst.Decode(p.Data[:l], row)
		} else {
			sv := append([]byte(nil), p.Data[:k]...)
			sd := append([]byte(nil), p.Data[k:k+l]...)
			inst.Decode(sd, sv)
		}
		if inst.IsComplete() {
			break
		}
	}
	dur := time.Since(start)

	if !inst.IsComplete() {
		return false, dur
	}
	for i := 0; i < k; i++ {
		if string(inst.Symbol(i)) != string(src[i]) {
			return false, dur
		}
	}
	return true, dur
}

// runRaptorQTrial drives the xssnick/raptorq reference implementation end
// to end on its own encoder's symbol stream, under the same loss and
// shuffle settings, as a second, independently-implemented decoder whose
// success rate and timing can be compared with -scheme=rs/-scheme=rlc
// runs, the same comparison role the teacher's cmd/raptorq_eval gave this
// dependency.
func runRaptorQTrial(src [][]byte, k, r, l int, drop *dropper.Bernoulli, shuffle bool, rng *mrand.Rand) (bool, time.Duration) {
	data := make([]byte, 0, k*l)
	for _, s := range src {
		data = append(data, s...)
	}
	enc, err := fec.NewReferenceRaptorQEncoder(data, l)
	if err != nil {
		return false, 0
	}
	base := int(enc.BaseSymbolsNum())
	total := base + r

	ids := make([]uint32, 0, total)
	for id := uint32(0); id < uint32(total); id++ {
		if drop.Drop() {
			continue
		}
		ids = append(ids, id)
	}
	if shuffle {
		order := dropper.ShuffleIndices(len(ids), rng)
		shuffledIDs := make([]uint32, len(ids))
		for i, j := range order {
			shuffledIDs[i] = ids[j]
		}
		ids = shuffledIDs
	}

	dec, err := fec.NewReferenceRaptorQDecoder(len(data), l)
	if err != nil {
		return false, 0
	}

	start := time.Now()
	var done bool
	for _, id := range ids {
		ready, err := dec.AddSymbol(id, enc.GenSymbol(id))
		if err != nil {
			return false, time.Since(start)
		}
		if ready {
			done = true
			break
		}
	}
	if !done {
		return false, time.Since(start)
	}
	ok, out, err := dec.Decode()
	dur := time.Since(start)
	if err != nil || !ok {
		return false, dur
	}
	return string(out[:len(data)]) == string(data), dur
}

// wireScheme maps the -scheme/-field flag pair to the fecwire.Header scheme
// identifier for the packets this trial is about to produce.
func wireScheme(scheme, field string) uint8 {
	switch {
	case scheme == "rs":
		return fecwire.SchemeRS
	case field == "gf2":
		return fecwire.SchemeRLCBinary
	default:
		return fecwire.SchemeRLCGF256
	}
}

// writeWireTrial frames each survivor as a fecwire.Header followed by its
// payload and writes the concatenation to path, the on-disk trial format
// internal/fecwire was built to describe.
func writeWireTrial(path string, scheme, k uint8, packets []fec.Packet) error {
	var buf []byte
	for _, p := range packets {
		h := fecwire.Header{
			Version:    1,
			Scheme:     scheme,
			BlockID:    0,
			K:          k,
			SymID:      uint8(p.Index),
			PayloadLen: uint32(len(p.Data)),
		}
		buf = append(buf, h.MarshalBinary(nil)...)
		buf = append(buf, p.Data...)
	}
	return os.WriteFile(path, buf, 0o644)
}

// readWireTrial reverses writeWireTrial, unframing a packet stream
// previously recorded with -record.
func readWireTrial(path string) ([]fec.Packet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var packets []fec.Packet
	for len(b) > 0 {
		var h fecwire.Header
		if !h.UnmarshalBinary(b) {
			return nil, errors.New("blockdecoder_eval: truncated fecwire header")
		}
		b = b[fecwire.HeaderLen:]
		if uint32(len(b)) < h.PayloadLen {
			return nil, errors.New("blockdecoder_eval: truncated fecwire payload")
		}
		data := append([]byte(nil), b[:h.PayloadLen]...)
		b = b[h.PayloadLen:]
		packets = append(packets, fec.Packet{Index: int(h.SymID), Data: data})
	}
	return packets, nil
}

func systematic(src [][]byte) []fec.Packet {
	out := make([]fec.Packet, len(src))
	for i, s := range src {
		out[i] = fec.Packet{Index: i, Data: append([]byte(nil), s...)}
	}
	return out
}

type report struct {
	Scheme           string
	Field            string
	K, R, L          int
	Trials           int
	LossP            float64
	TrialCount       int
	SuccessCount     int
	TotalDecodeNanos int64
}

func (r *report) avgDecodeNanos() int64 {
	if r.TrialCount == 0 {
		return 0
	}
	return r.TotalDecodeNanos / int64(r.TrialCount)
}

func (r *report) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("scheme", r.Scheme)
	enc.StringKey("field", r.Field)
	enc.IntKey("k", r.K)
	enc.IntKey("r", r.R)
	enc.IntKey("l", r.L)
	enc.IntKey("trials", r.Trials)
	enc.Float64Key("loss_p", r.LossP)
	enc.IntKey("trial_count", r.TrialCount)
	enc.IntKey("success_count", r.SuccessCount)
	enc.Int64Key("avg_decode_nanos", r.avgDecodeNanos())
}

func (r *report) IsNil() bool { return r == nil }

func writeJSON(path string, r *report) error {
	b, err := gojay.MarshalJSONObject(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

