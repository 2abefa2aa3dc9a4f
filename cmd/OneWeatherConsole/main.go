package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Nazarious-ucu/one-weather/internal/app"
	"github.com/Nazarious-ucu/one-weather/internal/config"
	"github.com/Nazarious-ucu/one-weather/internal/console"
	"github.com/Nazarious-ucu/one-weather/pkg/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Panicf("failed to load configuration: %v", err)
	}

	// Prompts own the terminal, so application logs only go to the file.
	l, err := logger.NewLogger(nil, cfg.LogsPath, "one-weather-console", cfg.LogLevel)
	if err != nil {
		log.Panicf("failed to create logger: %v", err)
	}

	fileLogger, err := logger.NewFileLogger(cfg.HTTPLogsPath)
	if err != nil {
		log.Panicf("failed to create file logger: %v", err)
	}
	defer func() { _ = fileLogger.Sync() }()

	svc := app.NewWeatherService(*cfg, l, app.NewHTTPClient(*cfg, fileLogger), nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := console.New(svc, os.Stdin, os.Stdout, l).Run(ctx); err != nil {
		l.Error().Err(err).Msg("console stopped with error")
	}
}
