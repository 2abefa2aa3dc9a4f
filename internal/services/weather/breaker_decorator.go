package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

type BreakerConfig struct {
	TimeInterval time.Duration
	TimeTimeOut  time.Duration
	RepeatNumber uint32
}

// BreakerClient stops calling the provider after RepeatNumber consecutive
// transport failures. A bad city or coordinate pair is not a failure.
type BreakerClient struct {
	name    string
	cb      *gobreaker.CircuitBreaker
	wrapped client
}

func NewBreakerClient(name string, cfg BreakerConfig, wrapped client) *BreakerClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    cfg.TimeInterval,
		Timeout:     cfg.TimeTimeOut,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.RepeatNumber
		},
		IsSuccessful: func(err error) bool {
			switch Classify(err) {
			case nil, ErrInvalidInput, ErrUpstreamRejected:
				return true
			default:
				return false
			}
		},
	}
	return &BreakerClient{
		name:    name,
		cb:      gobreaker.NewCircuitBreaker(settings),
		wrapped: wrapped,
	}
}

func (b *BreakerClient) FetchCurrent(ctx context.Context, q models.LocationQuery) (models.CurrentWeather, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.FetchCurrent(ctx, q)
	})
	if err != nil {
		return models.CurrentWeather{}, b.wrap(err)
	}
	res, ok := result.(models.CurrentWeather)
	if !ok {
		return models.CurrentWeather{},
			fmt.Errorf("%w: %s returned unexpected result", ErrUpstreamUnavailable, b.name)
	}
	return res, nil
}

func (b *BreakerClient) FetchForecast(ctx context.Context, q models.LocationQuery) (models.Forecast, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.wrapped.FetchForecast(ctx, q)
	})
	if err != nil {
		return models.Forecast{}, b.wrap(err)
	}
	res, ok := result.(models.Forecast)
	if !ok {
		return models.Forecast{},
			fmt.Errorf("%w: %s returned unexpected result", ErrUpstreamUnavailable, b.name)
	}
	return res, nil
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerClient) wrap(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, b.name, err)
	}
	return fmt.Errorf("%s: %w", b.name, err)
}
