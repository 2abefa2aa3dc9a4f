package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/Nazarious-ucu/one-weather/internal/app"
	"github.com/Nazarious-ucu/one-weather/internal/config"
	"github.com/Nazarious-ucu/one-weather/internal/services/metrics"
	"github.com/Nazarious-ucu/one-weather/pkg/logger"
)

// @title One Weather API
// @version 1.0
// @description Current conditions and 5 day forecasts from OpenWeatherMap
// @host localhost:8080
// @BasePath /
func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(os.Stderr, cfg.LogsPath, "one-weather", cfg.LogLevel)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	metr := metrics.NewMetrics("one_weather")

	application := app.New(*cfg, l, metr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		l.Fatal().Err(err).Msg("application failed")
	}
}
