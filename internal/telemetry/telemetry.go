// Package telemetry records traces and metrics for algorithm runs.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName names the tracer and meter.
const InstrumentationName = "graphwalk.session"

// Config selects the providers. Nil providers fall back to the otel globals.
type Config struct {
	Enabled        bool
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// DefaultConfig enables telemetry on the global providers.
func DefaultConfig() Config {
	return Config{Enabled: true}
}

// Recorder holds the instruments used by the session.
type Recorder struct {
	tracer   trace.Tracer
	runs     metric.Int64Counter
	steps    metric.Int64Counter
	runSteps metric.Int64Histogram
}

// New builds a Recorder. A disabled config yields no-op instruments.
func New(cfg Config) (*Recorder, error) {
	tp, mp := cfg.TracerProvider, cfg.MeterProvider
	switch {
	case !cfg.Enabled:
		tp, mp = tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider()
	default:
		if tp == nil {
			tp = otel.GetTracerProvider()
		}
		if mp == nil {
			mp = otel.GetMeterProvider()
		}
	}

	meter := mp.Meter(InstrumentationName)
	r := &Recorder{tracer: tp.Tracer(InstrumentationName)}

	var err error
	r.runs, err = meter.Int64Counter(
		"graphwalk_runs_total",
		metric.WithDescription("Total number of algorithm runs started"),
	)
	if err != nil {
		return nil, err
	}
	r.steps, err = meter.Int64Counter(
		"graphwalk_steps_played_total",
		metric.WithDescription("Total number of discovery steps played back"),
	)
	if err != nil {
		return nil, err
	}
	r.runSteps, err = meter.Int64Histogram(
		"graphwalk_run_steps",
		metric.WithDescription("Number of discovery steps produced per run"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Noop returns a Recorder that records nothing.
func Noop() *Recorder {
	r, err := New(Config{})
	if err != nil {
		panic(err)
	}

	return r
}

// StartRun opens the span that covers engine computation for one run.
func (r *Recorder) StartRun(ctx context.Context, runID, algorithm string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "graphwalk.run",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.String("run.algorithm", algorithm),
		),
	)
}

// EndRun closes the span and records run metrics.
func (r *Recorder) EndRun(ctx context.Context, span trace.Span, algorithm string, steps int, err error) {
	attrs := metric.WithAttributes(
		attribute.String("algorithm", algorithm),
		attribute.Bool("success", err == nil),
	)
	r.runs.Add(ctx, 1, attrs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		r.runSteps.Record(ctx, int64(steps), metric.WithAttributes(attribute.String("algorithm", algorithm)))
		span.SetAttributes(attribute.Int("run.steps", steps))
	}
	span.End()
}

// StepPlayed counts one step handed to observers.
func (r *Recorder) StepPlayed(ctx context.Context, algorithm string) {
	r.steps.Add(ctx, 1, metric.WithAttributes(attribute.String("algorithm", algorithm)))
}
