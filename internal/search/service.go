package search

import (
	"context"
	"time"

	"mileage/pkg/logger"
	"mileage/pkg/seatsaero"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

type UpstreamClient interface {
	Search(ctx context.Context, q seatsaero.Query) (*seatsaero.SearchResponse, error)
}

type Service struct {
	upstream  UpstreamClient
	validator *RequestValidator
	metrics   *searchMetrics
	logger    logger.Logger
}

func NewService(upstream UpstreamClient, log logger.Logger) *Service {
	metrics, err := newSearchMetrics(otel.Meter("mileage/search"))
	if err != nil {
		log.Warn("search metrics disabled", logger.Err(err))
		metrics, _ = newSearchMetrics(noop.NewMeterProvider().Meter("mileage/search"))
	}

	return &Service{
		upstream:  upstream,
		validator: NewRequestValidator(log),
		metrics:   metrics,
		logger:    log,
	}
}

// Search validates the raw query, fetches from seats.aero, normalizes and
// filters. Failures are returned as *AppError; no partial results are returned.
func (s *Service) Search(ctx context.Context, query map[string]string) ([]MileageEntry, error) {
	req, problems := s.validator.Validate(query)
	if len(problems) > 0 {
		s.metrics.recordOutcome(ctx, "invalid")
		s.logger.Info("search rejected", logger.Field{Key: "problems", Value: problems})
		return nil, newValidationError(problems)
	}

	start := time.Now()
	resp, err := s.upstream.Search(ctx, seatsaero.Query{
		OriginAirports:      req.OriginAirports,
		DestinationAirports: req.DestinationAirports,
		Date:                req.DepartureDate,
	})
	s.metrics.upstreamDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	if err != nil {
		s.metrics.recordOutcome(ctx, "upstream_failure")
		s.logger.Error("seats.aero search failed",
			logger.Err(err),
			logger.Field{Key: "origin", Value: req.OriginAirports},
			logger.Field{Key: "destination", Value: req.DestinationAirports},
			logger.Field{Key: "date", Value: req.DepartureDate},
		)
		return nil, newUpstreamError(err)
	}

	entries, stats, err := normalize(resp.Data)
	if err != nil {
		s.metrics.recordOutcome(ctx, "upstream_failure")
		s.logger.Error("failed to normalize seats.aero response", logger.Err(err))
		return nil, newUpstreamError(err)
	}
	if stats.CoercionFailures > 0 {
		s.metrics.coercionFailures.Add(ctx, int64(stats.CoercionFailures))
		s.logger.Warn("mileage cost coercion produced NaN",
			logger.Field{Key: "count", Value: stats.CoercionFailures},
		)
	}

	filtered := applyFilters(entries, req.filterOptions())

	s.metrics.recordOutcome(ctx, "ok")
	s.logger.Info("search completed",
		logger.Field{Key: "upstream_records", Value: len(entries)},
		logger.Field{Key: "results", Value: len(filtered)},
		logger.Field{Key: "search_time_ms", Value: time.Since(start).Milliseconds()},
	)

	return filtered, nil
}
