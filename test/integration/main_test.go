//go:build integration
// +build integration

package integration

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/app"
	"github.com/Nazarious-ucu/one-weather/internal/config"
	metricsSvc "github.com/Nazarious-ucu/one-weather/internal/services/metrics"
)

const apiKey = "integration-key"

var testServerURL string

func TestMain(m *testing.M) {
	fmt.Println("Starting integration tests...")

	provider := newFakeProvider()

	cfg := config.Config{
		OpenWeatherMapAPIKey: apiKey,
		OpenWeatherMapURL:    provider.URL,
		RequestTimeout:       5,
		BatchWorkers:         4,
	}
	cfg.Watch.Schedule = "@every 1h"

	application := app.New(cfg, zerolog.Nop(), metricsSvc.NewMetrics("integration"))
	srvContainer, err := application.Init()
	if err != nil {
		log.Panicf("failed to initialize application: %v", err)
	}

	testServer := httptest.NewServer(srvContainer.Srv.Handler)
	testServerURL = testServer.URL

	code := m.Run()

	testServer.Close()
	provider.Close()
	if err := application.Shutdown(srvContainer); err != nil {
		log.Printf("failed to shutdown application: %v", err)
	}
	os.Exit(code)
}

func newFakeProvider() *httptest.Server {
	current := `{
		"coord": {"lon": 30.52, "lat": 50.45},
		"weather": [{"description": "clear sky", "icon": "01d"}],
		"main": {"temp": 21.5, "feels_like": 20.9, "pressure": 1012, "humidity": 40},
		"visibility": 10000,
		"wind": {"speed": 3.1},
		"dt": 1700000000,
		"sys": {"country": "UA", "sunrise": 1699990000, "sunset": 1700020000},
		"timezone": 7200,
		"name": "Kyiv"
	}`
	forecast := `{
		"list": [
			{"dt": 1700000000, "main": {"temp": 5.2}, "weather": [{"description": "rain", "icon": "10n"}]},
			{"dt": 1700010800, "main": {"temp": 4.8}, "weather": [{"description": "snow", "icon": "13n"}]}
		],
		"city": {"name": "Kyiv", "country": "UA", "timezone": 7200, "coord": {"lat": 50.45, "lon": 30.52}}
	}`

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case q.Get("appid") != apiKey:
			http.Error(w, `{"cod":401}`, http.StatusUnauthorized)
		case q.Get("q") == "Atlantis":
			http.Error(w, `{"cod":"404","message":"city not found"}`, http.StatusNotFound)
		case r.URL.Path == "/forecast":
			_, _ = w.Write([]byte(forecast))
		case r.URL.Path == "/weather":
			_, _ = w.Write([]byte(current))
		default:
			http.NotFound(w, r)
		}
	})

	return httptest.NewServer(handler)
}
