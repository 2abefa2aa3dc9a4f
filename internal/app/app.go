package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	_ "github.com/Nazarious-ucu/one-weather/docs"
	"github.com/Nazarious-ucu/one-weather/internal/config"
	weatherHandlers "github.com/Nazarious-ucu/one-weather/internal/handlers/weather"
	"github.com/Nazarious-ucu/one-weather/internal/handlers/web"
	metricsSvc "github.com/Nazarious-ucu/one-weather/internal/services/metrics"
	serviceWeather "github.com/Nazarious-ucu/one-weather/internal/services/weather"
	"github.com/Nazarious-ucu/one-weather/internal/watcher"
	fLogger "github.com/Nazarious-ucu/one-weather/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// ServiceContainer holds initialized dependencies for the server.
type ServiceContainer struct {
	WeatherService *serviceWeather.ServiceProvider
	Watcher        *watcher.Watcher

	Router     *gin.Engine
	Srv        *http.Server
	fileLogger *zap.Logger
}

// App ties together config, logger and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start serves the web page and JSON API until ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	if err := srvContainer.Watcher.Start(ctx); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.l.Info().Str("address", srvContainer.Srv.Addr).Msg("starting HTTP server")
		if err := srvContainer.Srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.l.Error().Err(err).Msg("HTTP server failed")
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.l.Info().Msg("shutdown signal received, stopping one-weather")
		return a.Shutdown(srvContainer)
	})

	if err := g.Wait(); err != nil {
		a.l.Error().Err(err).Msg("application stopped with error")
		return err
	}
	a.l.Info().Msg("application shutdown successfully")
	return nil
}

// Shutdown stops the watcher, drains the HTTP server and syncs the file logger.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	srvContainer.Watcher.Stop()

	defer func(logger *zap.Logger) {
		if err := logger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync file logger")
		}
	}(srvContainer.fileLogger)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		a.l.Error().Err(err).Msg("HTTP shutdown error")
		return err
	}
	a.l.Info().Msg("HTTP server stopped")
	return nil
}

// Init builds every dependency without starting anything.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("provider_url", a.cfg.OpenWeatherMapURL).
		Int("batch_workers", a.cfg.BatchWorkers).
		Bool("breaker", a.cfg.Breaker.Enabled).
		Msg("initializing one-weather")

	fileLogger, err := fLogger.NewFileLogger(a.cfg.HTTPLogsPath)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to create file logger")
		return ServiceContainer{}, err
	}

	weatherService := NewWeatherService(a.cfg, a.l, NewHTTPClient(a.cfg, fileLogger), a.m)

	router := NewRouter(weatherService, a.m, a.l)

	httpServer := &http.Server{
		Addr:        a.cfg.Server.Address(),
		Handler:     otelhttp.NewHandler(router, "one-weather"),
		ReadTimeout: time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
	}

	return ServiceContainer{
		WeatherService: weatherService,
		Watcher:        watcher.New(weatherService, a.cfg.WatchCities(), a.cfg.Watch.Schedule, a.l),
		Router:         router,
		Srv:            httpServer,
		fileLogger:     fileLogger,
	}, nil
}

// NewRouter mounts the page, the JSON API, metrics, docs and health check.
func NewRouter(svc *serviceWeather.ServiceProvider, m *metricsSvc.Metrics, l zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(m.HTTPMiddleware())

	router.GET("/", web.NewHandler(svc, l).Index)

	weatherHandlers.NewHandler(svc, l).Register(router.Group("/api/weather"))

	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
