package search

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type searchMetrics struct {
	requests         metric.Int64Counter
	upstreamDuration metric.Float64Histogram
	coercionFailures metric.Int64Counter
}

func newSearchMetrics(meter metric.Meter) (*searchMetrics, error) {
	requests, errReq := meter.Int64Counter("mileage.search.requests",
		metric.WithDescription("Searches handled, by outcome"))
	upstream, errUp := meter.Float64Histogram("mileage.upstream.duration",
		metric.WithDescription("Latency of the seats.aero search call"),
		metric.WithUnit("ms"))
	coercion, errCo := meter.Int64Counter("mileage.normalize.coercion_failures",
		metric.WithDescription("Mileage cost values that could not be parsed as integers"))

	if err := errors.Join(errReq, errUp, errCo); err != nil {
		return nil, err
	}

	return &searchMetrics{
		requests:         requests,
		upstreamDuration: upstream,
		coercionFailures: coercion,
	}, nil
}

func (m *searchMetrics) recordOutcome(ctx context.Context, outcome string) {
	m.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
