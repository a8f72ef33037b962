package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNewLoggerToTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "x16r", zerolog.InfoLevel)

	log.Debug().Msg("dropped")
	require.Zero(t, buf.Len())

	log.Info().Msg("kept")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "x16r", line["component"])
	require.Equal(t, "kept", line["message"])
}

func TestNewMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.PrimitiveCalls.WithLabelValues("blake").Add(3)
	m.Hashes.WithLabelValues("x16r").Inc()

	require.Equal(t, 3.0, testutil.ToFloat64(m.PrimitiveCalls.WithLabelValues("blake")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Hashes.WithLabelValues("x16r")))

	// A second registration on the same registry must collide.
	require.Panics(t, func() { NewMetrics(reg) })
}
