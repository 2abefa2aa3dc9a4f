package watcher

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) CurrentMany(ctx context.Context, queries []models.LocationQuery) []models.BatchResult {
	return m.Called(ctx, queries).Get(0).([]models.BatchResult)
}

func TestWatcher_RunOnce(t *testing.T) {
	queries := []models.LocationQuery{models.CityQuery("Lviv"), models.CityQuery("Atlantis")}
	temp := 4.5

	m := &mockFetcher{}
	m.On("CurrentMany", mock.Anything, queries).Return([]models.BatchResult{
		{Query: queries[0], Outcome: models.Succeeded(models.CurrentWeather{City: "Lviv", Temperature: &temp})},
		{Query: queries[1], Outcome: models.Failed[models.CurrentWeather]("Invalid city name or coordinates.")},
	}).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })

	w := New(m, []string{"Lviv", "Atlantis"}, "@every 1h", zerolog.Nop())

	assert.Equal(t, 1, w.RunOnce(context.Background()))
}

func TestWatcher_StartWithoutCities(t *testing.T) {
	m := &mockFetcher{}
	t.Cleanup(func() { m.AssertNumberOfCalls(t, "CurrentMany", 0) })

	w := New(m, nil, "@every 1h", zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
}

func TestWatcher_StartBadSchedule(t *testing.T) {
	w := New(&mockFetcher{}, []string{"Lviv"}, "every now and then", zerolog.Nop())

	require.Error(t, w.Start(context.Background()))
}

func TestWatcher_StartAndStop(t *testing.T) {
	m := &mockFetcher{}
	w := New(m, []string{"Lviv"}, "@every 1h", zerolog.Nop())

	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	m.AssertNumberOfCalls(t, "CurrentMany", 0)
}
