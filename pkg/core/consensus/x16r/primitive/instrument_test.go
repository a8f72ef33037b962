package primitive

import (
	"errors"
	"testing"

	"github.com/chronodrachma/x16r/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsCallsAndFailures(t *testing.T) {
	boom := errors.New("boom")
	tbl := NewTable().
		MustRegister(Blake, fill(1)).
		MustRegister(Echo, func(*Digest, []byte) error { return boom })

	m := observability.NewMetrics(prometheus.NewRegistry())
	reg := Instrument(tbl, m)

	blake := mustLookup(t, reg, Blake)
	echo := mustLookup(t, reg, Echo)

	var d Digest
	for range 3 {
		require.NoError(t, blake(&d, nil))
	}
	require.ErrorIs(t, echo(&d, nil), boom)

	require.Equal(t, 3.0, testutil.ToFloat64(m.PrimitiveCalls.WithLabelValues("blake")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.PrimitiveFailures.WithLabelValues("blake")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PrimitiveCalls.WithLabelValues("echo")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.PrimitiveFailures.WithLabelValues("echo")))

	_, ok := reg.Lookup(Shabal)
	require.False(t, ok)
}

func TestInstrumentNilMetrics(t *testing.T) {
	tbl := NewTable().MustRegister(Blake, fill(7))
	reg := Instrument(tbl, nil)

	var d Digest
	require.NoError(t, mustLookup(t, reg, Blake)(&d, nil))
	require.Equal(t, byte(7), d[0])

	_, ok := reg.Lookup(Echo)
	require.False(t, ok)
}
