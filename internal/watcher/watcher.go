package watcher

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const timeoutDuration = 2 * time.Minute

type batchFetcher interface {
	CurrentMany(ctx context.Context, queries []models.LocationQuery) []models.BatchResult
}

// Watcher periodically looks up a fixed list of cities and logs the result
// of every lookup.
type Watcher struct {
	service  batchFetcher
	queries  []models.LocationQuery
	schedule string
	logger   zerolog.Logger
	cron     *cron.Cron
	cancel   context.CancelFunc
}

func New(svc batchFetcher, cities []string, schedule string, logger zerolog.Logger) *Watcher {
	queries := make([]models.LocationQuery, 0, len(cities))
	for _, city := range cities {
		queries = append(queries, models.CityQuery(city))
	}

	return &Watcher{
		service:  svc,
		queries:  queries,
		schedule: schedule,
		logger:   logger.With().Str("component", "Watcher").Logger(),
		cron:     cron.New(),
	}
}

// Start schedules the watch job. It is a no-op without cities.
func (w *Watcher) Start(ctx context.Context) error {
	if len(w.queries) == 0 {
		w.logger.Info().Msg("no cities to watch, watcher disabled")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	if _, err := w.cron.AddFunc(w.schedule, func() { w.RunOnce(ctx) }); err != nil {
		cancel()
		w.logger.Error().Err(err).Str("schedule", w.schedule).Msg("failed to schedule watch job")
		return err
	}

	w.cron.Start()
	w.logger.Info().
		Str("schedule", w.schedule).
		Int("cities", len(w.queries)).
		Msg("Weather watcher started")
	return nil
}

// Stop cancels the running job, if any, and waits for it to finish.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("watch job finished, watcher stopped")
}

// RunOnce looks up every watched city and returns how many lookups failed.
func (w *Watcher) RunOnce(ctx context.Context) int {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, timeoutDuration)
	defer cancel()

	failed := 0
	for _, r := range w.service.CurrentMany(ctx, w.queries) {
		if !r.Outcome.Success {
			failed++
			w.logger.Warn().
				Str("location", r.Query.String()).
				Str("error", r.Outcome.Message()).
				Msg("watched city lookup failed")
			continue
		}

		data := r.Outcome.Data
		event := w.logger.Info().
			Str("location", r.Query.String()).
			Str("city", data.City).
			Str("description", data.Description)
		if data.Temperature != nil {
			event = event.Float64("temperature", *data.Temperature)
		}
		event.Msg("watched city weather")
	}

	w.logger.Info().
		Int("cities", len(w.queries)).
		Int("failed", failed).
		Dur("duration", time.Since(start)).
		Msg("completed watch run")
	return failed
}
