package app

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/one-weather/internal/config"
	loggerT "github.com/Nazarious-ucu/one-weather/internal/services/logger"
	serviceWeather "github.com/Nazarious-ucu/one-weather/internal/services/weather"
)

const breakerName = "OpenWeatherMap"

// FetchRecorder receives one observation per provider lookup.
type FetchRecorder interface {
	ObserveFetch(operation, result string, duration time.Duration)
}

// NewHTTPClient builds the outbound client: zap round-trip logging wrapped
// in otelhttp, bounded by the configured request timeout.
func NewHTTPClient(cfg config.Config, fileLogger *zap.Logger) *http.Client {
	return &http.Client{
		Timeout: cfg.Timeout(),
		Transport: otelhttp.NewTransport(
			loggerT.NewRoundTripper(fileLogger, http.DefaultTransport),
		),
	}
}

// NewWeatherService wires the OpenWeatherMap client, the optional circuit
// breaker and the Outcome boundary. recorder may be nil.
func NewWeatherService(cfg config.Config, l zerolog.Logger,
	httpClient serviceWeather.HTTPClient, recorder FetchRecorder,
) *serviceWeather.ServiceProvider {
	openWeather := serviceWeather.NewClientOpenWeatherMap(
		cfg.OpenWeatherMapAPIKey,
		cfg.OpenWeatherMapURL,
		httpClient,
		l,
	)

	workers := cfg.BatchWorkers

	if !cfg.Breaker.Enabled {
		return serviceWeather.NewService(l, openWeather, recorder, workers)
	}

	breakerCfg := serviceWeather.BreakerConfig{
		TimeInterval: time.Duration(cfg.Breaker.TimeInterval) * time.Second,
		TimeTimeOut:  time.Duration(cfg.Breaker.TimeTimeOut) * time.Second,
		RepeatNumber: cfg.Breaker.RepeatNumber,
	}
	l.Info().
		Uint32("repeat_number", breakerCfg.RepeatNumber).
		Dur("timeout", breakerCfg.TimeTimeOut).
		Msg("circuit breaker enabled")

	return serviceWeather.NewService(l,
		serviceWeather.NewBreakerClient(breakerName, breakerCfg, openWeather),
		recorder,
		workers,
	)
}
