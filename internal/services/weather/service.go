package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const (
	opCurrent  = "current"
	opForecast = "forecast"

	tracerName = "github.com/Nazarious-ucu/one-weather/internal/services/weather"
)

type client interface {
	FetchCurrent(ctx context.Context, q models.LocationQuery) (models.CurrentWeather, error)
	FetchForecast(ctx context.Context, q models.LocationQuery) (models.Forecast, error)
}

type metricsRecorder interface {
	ObserveFetch(operation, result string, duration time.Duration)
}

// ServiceProvider is the boundary between presentation code and the
// provider client: every call returns an Outcome, errors never escape.
type ServiceProvider struct {
	logger   zerolog.Logger
	client   client
	recorder metricsRecorder
	workers  int
}

// NewService wires a client behind the Outcome boundary. recorder may be nil.
// workers > 1 lets CurrentMany run that many lookups at once.
func NewService(logger zerolog.Logger, cl client, recorder metricsRecorder, workers int) *ServiceProvider {
	if workers < 1 {
		workers = 1
	}
	return &ServiceProvider{
		logger:   logger.With().Str("component", "WeatherService").Logger(),
		client:   cl,
		recorder: recorder,
		workers:  workers,
	}
}

func (s *ServiceProvider) Current(ctx context.Context, q models.LocationQuery) (out models.Outcome[models.CurrentWeather]) {
	ctx, span := s.startSpan(ctx, opCurrent, q)
	defer span.End()

	start := time.Now()
	defer s.recoverInto(ctx, opCurrent, q, func(msg string) {
		out = models.Failed[models.CurrentWeather](msg)
	})

	data, err := s.client.FetchCurrent(ctx, q)
	s.observe(ctx, opCurrent, q, err, start)
	if err != nil {
		return models.Failed[models.CurrentWeather](Message(err))
	}
	return models.Succeeded(data)
}

func (s *ServiceProvider) Forecast(ctx context.Context, q models.LocationQuery) (out models.Outcome[models.Forecast]) {
	ctx, span := s.startSpan(ctx, opForecast, q)
	defer span.End()

	start := time.Now()
	defer s.recoverInto(ctx, opForecast, q, func(msg string) {
		out = models.Failed[models.Forecast](msg)
	})

	data, err := s.client.FetchForecast(ctx, q)
	s.observe(ctx, opForecast, q, err, start)
	if err != nil {
		return models.Failed[models.Forecast](Message(err))
	}
	return models.Succeeded(data)
}

// CurrentMany looks up every query and returns one result per query in
// input order. A failed item does not affect the others.
func (s *ServiceProvider) CurrentMany(ctx context.Context, queries []models.LocationQuery) []models.BatchResult {
	results := make([]models.BatchResult, len(queries))

	s.logger.Info().
		Ctx(ctx).
		Int("queries", len(queries)).
		Int("workers", s.workers).
		Msg("starting batch lookup")

	if s.workers == 1 {
		for i, q := range queries {
			results[i] = models.BatchResult{Query: q, Outcome: s.Current(ctx, q)}
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, q := range queries {
		g.Go(func() error {
			results[i] = models.BatchResult{Query: q, Outcome: s.Current(ctx, q)}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *ServiceProvider) startSpan(ctx context.Context, op string, q models.LocationQuery) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "weather."+op,
		trace.WithAttributes(
			attribute.String("weather.location", q.String()),
		),
	)
}

func (s *ServiceProvider) observe(ctx context.Context, op string, q models.LocationQuery, err error, start time.Time) {
	duration := time.Since(start)
	if s.recorder != nil {
		s.recorder.ObserveFetch(op, Kind(err), duration)
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("weather.result", Kind(err)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Kind(err))
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("operation", op).
			Str("location", q.String()).
			Str("kind", Kind(err)).
			Msg("fetch failed")
		return
	}
	s.logger.Info().
		Ctx(ctx).
		Str("operation", op).
		Str("location", q.String()).
		Dur("duration_ms", duration).
		Msg("fetch succeeded")
}

func (s *ServiceProvider) recoverInto(ctx context.Context, op string, q models.LocationQuery, fail func(string)) {
	r := recover()
	if r == nil {
		return
	}
	err := fmt.Errorf("%w: panic: %v", ErrUpstreamUnavailable, r)
	s.logger.Error().
		Ctx(ctx).
		Err(err).
		Str("operation", op).
		Str("location", q.String()).
		Msg("recovered from panic in fetch")
	if s.recorder != nil {
		s.recorder.ObserveFetch(op, Kind(err), 0)
	}
	fail(Message(err))
}
