package fec

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors an InstrumentedDecoder reports
// through. Callers own the registry; NewMetrics registers everything into
// it so a bench run can prometheus.Gather it for a report without standing
// up an HTTP server, the way cmd/blockdecoder_eval uses it.
type Metrics struct {
	DecodeDuration prometheus.Histogram
	Rank           prometheus.Gauge
	Dependent      prometheus.Counter
	Swaps          prometheus.Counter
}

// NewMetrics builds and registers a Metrics set under reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "blockdecoder_decode_duration_seconds",
			Help:    "Time to absorb one coded or raw packet.",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
		Rank: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "blockdecoder_rank",
			Help: "Current rank of the most recently driven decoder.",
		}),
		Dependent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdecoder_dependent_packets_total",
			Help: "Coded packets absorbed without a rank increase.",
		}),
		Swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blockdecoder_swaps_total",
			Help: "Raw packets that landed on an already-coded pivot.",
		}),
	}
	reg.MustRegister(m.DecodeDuration, m.Rank, m.Dependent, m.Swaps)
	return m
}

// InstrumentedDecoder wraps a Decoder with Metrics, recording duration and
// rank-progress around every Decode/DecodeRaw call. It does not change
// Decoder's semantics; it is a bench/observability shell around it, never
// imported by decoder.go itself, matching spec.md's instruction that the
// core carries no metrics surface of its own.
type InstrumentedDecoder struct {
	*Decoder
	m *Metrics
}

// NewInstrumentedDecoder wraps dec with metrics reported through m.
func NewInstrumentedDecoder(dec *Decoder, m *Metrics) *InstrumentedDecoder {
	return &InstrumentedDecoder{Decoder: dec, m: m}
}

func (d *InstrumentedDecoder) Decode(sd, sv []byte) {
	start := time.Now()
	rankBefore := d.Decoder.Rank()
	d.Decoder.Decode(sd, sv)
	d.m.DecodeDuration.Observe(time.Since(start).Seconds())
	d.m.Rank.Set(float64(d.Decoder.Rank()))
	if d.Decoder.Rank() == rankBefore {
		d.m.Dependent.Inc()
	}
}

func (d *InstrumentedDecoder) DecodeRaw(sd []byte, i int) {
	start := time.Now()
	wasCoded := d.Decoder.SymbolExists(i) && !d.Decoder.Uncoded(i)
	d.Decoder.DecodeRaw(sd, i)
	d.m.DecodeDuration.Observe(time.Since(start).Seconds())
	d.m.Rank.Set(float64(d.Decoder.Rank()))
	if wasCoded {
		d.m.Swaps.Inc()
	}
}
