package weather

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

var testBreakerConfig = BreakerConfig{
	TimeInterval: time.Minute,
	TimeTimeOut:  time.Minute,
	RepeatNumber: 3,
}

func TestBreakerClient_TripsAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	q := models.CityQuery("Lviv")

	cl := &mockAPIClient{}
	cl.On("FetchCurrent", mock.Anything, q).
		Return(models.CurrentWeather{}, errors.New("connection reset")).Times(3)
	t.Cleanup(func() { cl.AssertExpectations(t) })

	b := NewBreakerClient("test", testBreakerConfig, cl)

	for range 3 {
		_, err := b.FetchCurrent(ctx, q)
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	_, err := b.FetchCurrent(ctx, q)
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, ErrUpstreamUnavailable, Classify(err))
	assert.Equal(t, MsgUpstreamUnavailable, Message(err))
}

func TestBreakerClient_RejectedIsNotFailure(t *testing.T) {
	ctx := context.Background()
	q := models.CityQuery("Atlantis")

	cl := &mockAPIClient{}
	cl.On("FetchForecast", mock.Anything, q).
		Return(models.Forecast{}, fmt.Errorf("%w: status 404", ErrUpstreamRejected)).Times(5)
	t.Cleanup(func() { cl.AssertExpectations(t) })

	b := NewBreakerClient("test", testBreakerConfig, cl)

	for range 5 {
		_, err := b.FetchForecast(ctx, q)
		require.Error(t, err)
		assert.Equal(t, MsgUpstreamRejected, Message(err))
	}
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreakerClient_PassesThroughSuccess(t *testing.T) {
	ctx := context.Background()
	q := models.CoordinatesQuery(49.84, 24.03)
	want := models.CurrentWeather{City: "Lviv"}

	cl := &mockAPIClient{}
	cl.On("FetchCurrent", mock.Anything, q).Return(want, nil).Once()
	t.Cleanup(func() { cl.AssertExpectations(t) })

	got, err := NewBreakerClient("test", testBreakerConfig, cl).FetchCurrent(ctx, q)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
