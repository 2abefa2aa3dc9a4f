package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const (
	currentPath  = "/weather"
	forecastPath = "/forecast"
	units        = "metric"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientOpenWeatherMap fetches current conditions and the 5 day / 3 hour
// forecast from OpenWeatherMap. The timeout lives on the HTTPClient.
type ClientOpenWeatherMap struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  zerolog.Logger
}

// NewClientOpenWeatherMap constructs a client for the API rooted at baseURL,
// e.g. https://api.openweathermap.org/data/2.5.
func NewClientOpenWeatherMap(apiKey, baseURL string,
	httpClient HTTPClient, logger zerolog.Logger,
) *ClientOpenWeatherMap {
	return &ClientOpenWeatherMap{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
		logger:  logger.With().Str("component", "OpenWeatherMap").Logger(),
	}
}

func (s *ClientOpenWeatherMap) FetchCurrent(ctx context.Context, q models.LocationQuery) (models.CurrentWeather, error) {
	var raw CurrentPayload
	if err := s.get(ctx, currentPath, q, &raw); err != nil {
		return models.CurrentWeather{}, err
	}
	return NormalizeCurrent(raw), nil
}

func (s *ClientOpenWeatherMap) FetchForecast(ctx context.Context, q models.LocationQuery) (models.Forecast, error) {
	var raw ForecastPayload
	if err := s.get(ctx, forecastPath, q, &raw); err != nil {
		return models.Forecast{}, err
	}
	return NormalizeForecast(raw), nil
}

// get issues exactly one request and decodes a 2xx body into out.
func (s *ClientOpenWeatherMap) get(ctx context.Context, path string, q models.LocationQuery, out any) error {
	start := time.Now()

	params, err := s.queryParams(q)
	if err != nil {
		s.logger.Warn().
			Ctx(ctx).
			Str("endpoint", path).
			Msg("rejected query without a usable location")
		return err
	}
	endpoint := s.baseURL + path + "?" + params.Encode()

	s.logger.Debug().
		Ctx(ctx).
		Str("endpoint", path).
		Str("location", q.String()).
		Msg("starting OpenWeatherMap request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("endpoint", path).
			Msg("failed to create HTTP request")
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("endpoint", path).
			Str("location", q.String()).
			Msg("error sending HTTP request to OpenWeatherMap")
		return fmt.Errorf("OpenWeatherMap %s: %w", path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Ctx(ctx).
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error().
			Ctx(ctx).
			Str("endpoint", path).
			Str("location", q.String()).
			Int("status_code", resp.StatusCode).
			Msg("OpenWeatherMap API returned non-2xx status")
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status %s", ErrUpstreamRejected, resp.Status)
	}

	if err := decodePayload(resp.Body, out); err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("endpoint", path).
			Msg("failed to decode OpenWeatherMap response")
		return fmt.Errorf("%w: decode: %w", ErrUpstreamUnavailable, err)
	}

	s.logger.Info().
		Ctx(ctx).
		Str("endpoint", path).
		Str("location", q.String()).
		Dur("duration_ms", time.Since(start)).
		Msg("successfully fetched weather data")

	return nil
}

func (s *ClientOpenWeatherMap) queryParams(q models.LocationQuery) (url.Values, error) {
	values := url.Values{}
	values.Set("appid", s.apiKey)
	values.Set("units", units)

	switch q.Kind() {
	case models.QueryCity:
		values.Set("q", strings.TrimSpace(q.City))
	case models.QueryCoordinates:
		values.Set("lat", strconv.FormatFloat(*q.Coordinates.Latitude, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(*q.Coordinates.Longitude, 'f', -1, 64))
	default:
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, models.ErrNoLocation)
	}

	return values, nil
}
