package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

type mockAPIClient struct {
	mock.Mock
}

func (m *mockAPIClient) FetchCurrent(ctx context.Context, q models.LocationQuery) (models.CurrentWeather, error) {
	args := m.Called(ctx, q)
	data, ok := args.Get(0).(models.CurrentWeather)
	if !ok {
		return models.CurrentWeather{}, args.Error(1)
	}
	return data, args.Error(1)
}

func (m *mockAPIClient) FetchForecast(ctx context.Context, q models.LocationQuery) (models.Forecast, error) {
	args := m.Called(ctx, q)
	data, ok := args.Get(0).(models.Forecast)
	if !ok {
		return models.Forecast{}, args.Error(1)
	}
	return data, args.Error(1)
}

type recordedFetch struct {
	operation string
	result    string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedFetch
}

func (r *fakeRecorder) ObserveFetch(operation, result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedFetch{operation: operation, result: result})
}

type panickingClient struct{}

func (panickingClient) FetchCurrent(context.Context, models.LocationQuery) (models.CurrentWeather, error) {
	panic("nil map")
}

func (panickingClient) FetchForecast(context.Context, models.LocationQuery) (models.Forecast, error) {
	panic("nil map")
}

func TestServiceProvider_Current(t *testing.T) {
	ctx := context.Background()
	lviv := models.CurrentWeather{City: "Lviv", Description: "clear sky"}

	t.Run("Success", func(t *testing.T) {
		cl := &mockAPIClient{}
		cl.On("FetchCurrent", mock.Anything, models.CityQuery("Lviv")).Return(lviv, nil).Once()
		t.Cleanup(func() { cl.AssertExpectations(t) })
		rec := &fakeRecorder{}

		out := NewService(zerolog.Nop(), cl, rec, 1).Current(ctx, models.CityQuery("Lviv"))

		require.True(t, out.Success)
		assert.Nil(t, out.Error)
		assert.Equal(t, lviv, *out.Data)
		assert.Equal(t, []recordedFetch{{operation: "current", result: "ok"}}, rec.calls)
	})

	t.Run("Rejected", func(t *testing.T) {
		cl := &mockAPIClient{}
		cl.On("FetchCurrent", mock.Anything, mock.Anything).
			Return(models.CurrentWeather{}, fmt.Errorf("%w: status 404", ErrUpstreamRejected)).Once()
		t.Cleanup(func() { cl.AssertExpectations(t) })
		rec := &fakeRecorder{}

		out := NewService(zerolog.Nop(), cl, rec, 1).Current(ctx, models.CityQuery("Atlantis"))

		assert.False(t, out.Success)
		assert.Nil(t, out.Data)
		assert.Equal(t, MsgUpstreamRejected, out.Message())
		assert.Equal(t, []recordedFetch{{operation: "current", result: "rejected"}}, rec.calls)
	})

	t.Run("Panic", func(t *testing.T) {
		out := NewService(zerolog.Nop(), panickingClient{}, nil, 1).Current(ctx, models.CityQuery("Lviv"))

		assert.False(t, out.Success)
		assert.Nil(t, out.Data)
		assert.Equal(t, MsgUpstreamUnavailable, out.Message())
	})
}

func TestServiceProvider_Forecast(t *testing.T) {
	ctx := context.Background()
	fc := models.Forecast{
		Location:  models.ForecastLocation{City: "Kyiv"},
		Intervals: []models.ForecastInterval{{Description: "mist"}},
	}

	t.Run("Success", func(t *testing.T) {
		cl := &mockAPIClient{}
		cl.On("FetchForecast", mock.Anything, models.CityQuery("Kyiv")).Return(fc, nil).Once()
		t.Cleanup(func() { cl.AssertExpectations(t) })

		out := NewService(zerolog.Nop(), cl, nil, 1).Forecast(ctx, models.CityQuery("Kyiv"))

		require.True(t, out.Success)
		assert.Equal(t, fc, *out.Data)
	})

	t.Run("Timeout", func(t *testing.T) {
		cl := &mockAPIClient{}
		cl.On("FetchForecast", mock.Anything, mock.Anything).
			Return(models.Forecast{}, context.DeadlineExceeded).Once()
		t.Cleanup(func() { cl.AssertExpectations(t) })

		out := NewService(zerolog.Nop(), cl, nil, 1).Forecast(ctx, models.CityQuery("Kyiv"))

		assert.False(t, out.Success)
		assert.Equal(t, MsgTimeout, out.Message())
	})

	t.Run("Panic", func(t *testing.T) {
		out := NewService(zerolog.Nop(), panickingClient{}, nil, 1).Forecast(ctx, models.CityQuery("Kyiv"))

		assert.False(t, out.Success)
		assert.Equal(t, MsgUpstreamUnavailable, out.Message())
	})
}

func TestServiceProvider_CurrentMany(t *testing.T) {
	queries := []models.LocationQuery{
		models.CityQuery("Lviv"),
		models.CityQuery("Atlantis"),
		models.CoordinatesQuery(50.45, 30.52),
	}

	for _, workers := range []int{0, 1, 3, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			cl := &mockAPIClient{}
			cl.On("FetchCurrent", mock.Anything, queries[0]).
				Return(models.CurrentWeather{City: "Lviv"}, nil).Once()
			cl.On("FetchCurrent", mock.Anything, queries[1]).
				Return(models.CurrentWeather{}, errors.New("connection reset")).Once()
			cl.On("FetchCurrent", mock.Anything, queries[2]).
				Return(models.CurrentWeather{City: "Kyiv"}, nil).Once()
			t.Cleanup(func() { cl.AssertExpectations(t) })

			results := NewService(zerolog.Nop(), cl, nil, workers).CurrentMany(context.Background(), queries)

			require.Len(t, results, 3)
			for i, r := range results {
				assert.Equal(t, queries[i], r.Query)
			}
			require.True(t, results[0].Outcome.Success)
			assert.Equal(t, "Lviv", results[0].Outcome.Data.City)
			assert.False(t, results[1].Outcome.Success)
			assert.Equal(t, MsgUpstreamUnavailable, results[1].Outcome.Message())
			require.True(t, results[2].Outcome.Success)
			assert.Equal(t, "Kyiv", results[2].Outcome.Data.City)
		})
	}
}

func TestServiceProvider_CurrentManyEmpty(t *testing.T) {
	cl := &mockAPIClient{}
	t.Cleanup(func() { cl.AssertNumberOfCalls(t, "FetchCurrent", 0) })

	results := NewService(zerolog.Nop(), cl, nil, 4).CurrentMany(context.Background(), nil)

	assert.Empty(t, results)
}
