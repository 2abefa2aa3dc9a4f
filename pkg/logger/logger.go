package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
)

// NewLogger builds the application logger. Human-readable lines go to
// console when it is non-nil; filePath, when set, gets rotated JSON lines.
func NewLogger(console io.Writer, filePath, serviceName, level string) (zerolog.Logger, error) {
	lvl := zerolog.DebugLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	}

	writers := []io.Writer{}
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}

	if filePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filePath, // log file location
			MaxSize:    maxSize,  // megabytes before rotation
			MaxBackups: maxBack,
			MaxAge:     maxAge, // days
			Compress:   true,
		})
	}

	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Logger().
		Level(lvl)

	logger.Debug().
		Str("logsFilePath", filePath).
		Str("serviceName", serviceName).
		Msg("Logger initialized")

	return logger, nil
}
