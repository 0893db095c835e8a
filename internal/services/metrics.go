package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/sumitsaluja27/n8n-Workflow/internal/services"

const (
	outcomeProcessed = "processed"
	outcomeFailed    = "failed"
)

type walkerMetrics struct {
	runs    metric.Int64Counter
	records metric.Int64Counter
}

func newWalkerMetrics(meter metric.Meter) (*walkerMetrics, error) {
	runs, err := meter.Int64Counter("translate_workflows.runs",
		metric.WithDescription("Directory walks started"),
	)
	if err != nil {
		return nil, err
	}
	records, err := meter.Int64Counter("translate_workflows.records",
		metric.WithDescription("Workflow records handled, by outcome"),
	)
	if err != nil {
		return nil, err
	}
	return &walkerMetrics{runs: runs, records: records}, nil
}

// walkerMetricsFrom creates the walker instruments on provider, or on the
// global provider when it is nil, and falls back to no-op instruments if the
// provider refuses to create them.
func walkerMetricsFrom(provider metric.MeterProvider) *walkerMetrics {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	m, err := newWalkerMetrics(provider.Meter(instrumentationName))
	if err != nil {
		m, _ = newWalkerMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return m
}

// WalkerOption configures a Walker.
type WalkerOption func(*walkerOptions)

type walkerOptions struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider records the walker counters on provider instead of the
// global meter provider.
func WithMeterProvider(provider metric.MeterProvider) WalkerOption {
	return func(o *walkerOptions) {
		o.meterProvider = provider
	}
}

func (m *walkerMetrics) recordRun(ctx context.Context, dir string) {
	m.runs.Add(ctx, 1, metric.WithAttributes(attribute.String("dir", dir)))
}

func (m *walkerMetrics) recordResult(ctx context.Context, res Result) {
	outcome := outcomeProcessed
	if !res.OK() {
		outcome = outcomeFailed
	}
	m.records.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
