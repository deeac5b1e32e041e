package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestRecorder(t *testing.T) (*Recorder, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	r, err := New(Config{Enabled: true, TracerProvider: tp, MeterProvider: mp})
	require.NoError(t, err)

	return r, spans, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}

	return total
}

func TestRecorder_Run(t *testing.T) {
	r, spans, reader := newTestRecorder(t)
	ctx, span := r.StartRun(context.Background(), "run-1", "DFS")
	r.EndRun(ctx, span, "DFS", 3, nil)
	r.StepPlayed(ctx, "DFS")
	r.StepPlayed(ctx, "DFS")

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "graphwalk.run", ended[0].Name())
	assert.Equal(t, int64(1), sumOf(t, reader, "graphwalk_runs_total"))
	assert.Equal(t, int64(2), sumOf(t, reader, "graphwalk_steps_played_total"))
}

func TestRecorder_RunError(t *testing.T) {
	r, spans, _ := newTestRecorder(t)
	ctx, span := r.StartRun(context.Background(), "run-2", "BFS")
	r.EndRun(ctx, span, "BFS", 0, errors.New("boom"))

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "boom", ended[0].Status().Description)
}

func TestNoop(t *testing.T) {
	r := Noop()
	ctx, span := r.StartRun(context.Background(), "x", "DFS")
	assert.False(t, span.SpanContext().IsValid())
	r.EndRun(ctx, span, "DFS", 1, nil)
	r.StepPlayed(ctx, "DFS")
}
