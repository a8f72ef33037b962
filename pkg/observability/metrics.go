package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "x16r"

// Metrics holds the Prometheus collectors for the hash engine.
type Metrics struct {
	// Per-primitive invocations, labelled by primitive name.
	PrimitiveCalls    *prometheus.CounterVec
	PrimitiveFailures *prometheus.CounterVec

	// Whole-chain results, labelled by variant name.
	Hashes     *prometheus.CounterVec
	HashErrors *prometheus.CounterVec
}

// NewMetrics registers the engine collectors with reg. Passing nil registers
// with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		PrimitiveCalls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primitive_calls_total",
			Help:      "Hash primitive invocations.",
		}, []string{"primitive"}),
		PrimitiveFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primitive_failures_total",
			Help:      "Hash primitive invocations that returned an error.",
		}, []string{"primitive"}),
		Hashes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hashes_total",
			Help:      "Completed proof-of-work digests.",
		}, []string{"variant"}),
		HashErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hash_errors_total",
			Help:      "Digest computations that failed.",
		}, []string{"variant"}),
	}
}
