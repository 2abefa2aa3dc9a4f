package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ConsoleOnly(t *testing.T) {
	var buf bytes.Buffer

	l, err := NewLogger(&buf, "", "one-weather", "info")
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	l.Info().Str("city", "Lviv").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "Lviv")
	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewLogger(nil, path, "one-weather", "")
	require.NoError(t, err)
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"service":"one-weather"`)
	assert.Contains(t, string(data), "to file")
}

func TestNewLogger_BadLevel(t *testing.T) {
	_, err := NewLogger(nil, "", "one-weather", "loud")
	require.Error(t, err)
}

func TestNewFileLogger(t *testing.T) {
	nop, err := NewFileLogger("")
	require.NoError(t, err)
	require.NotNil(t, nop)

	path := filepath.Join(t.TempDir(), "nested", "http.log")
	l, err := NewFileLogger(path)
	require.NoError(t, err)

	l.Info("HTTP request completed")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "HTTP request completed")
}
