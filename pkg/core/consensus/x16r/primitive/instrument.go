package primitive

import (
	"github.com/chronodrachma/x16r/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// Instrumented wraps a Registry so that every capability it hands out counts
// its invocations and failures.
type Instrumented struct {
	next     Registry
	calls    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

var _ Registry = (*Instrumented)(nil)

// Instrument returns next wrapped with the primitive counters of m. With a nil
// m the capabilities of next are handed out unwrapped.
func Instrument(next Registry, m *observability.Metrics) *Instrumented {
	if m == nil {
		return &Instrumented{next: next}
	}
	return &Instrumented{
		next:     next,
		calls:    m.PrimitiveCalls,
		failures: m.PrimitiveFailures,
	}
}

// Lookup implements Registry.
func (r *Instrumented) Lookup(id ID) (Func, bool) {
	fn, ok := r.next.Lookup(id)
	if !ok {
		return nil, false
	}
	if r.calls == nil {
		return fn, true
	}

	// Resolve the label children once; engines look up at construction.
	calls := r.calls.WithLabelValues(id.String())
	failures := r.failures.WithLabelValues(id.String())

	return func(dst *Digest, in []byte) error {
		calls.Inc()
		if err := fn(dst, in); err != nil {
			failures.Inc()
			return err
		}
		return nil
	}, true
}
