package config

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	Port        string `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout int    `envconfig:"SERVER_READ_TIMEOUT" default:"10"`
}

func (s Server) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type Breaker struct {
	Enabled      bool   `envconfig:"BREAKER_ENABLED" default:"false"`
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

// Watch configures the periodic lookup of a fixed list of cities. An empty
// Cities list disables it.
type Watch struct {
	Schedule string   `envconfig:"WATCH_SCHEDULE" default:"@every 30m"`
	Cities   []string `envconfig:"WATCH_CITIES"`
}

type Config struct {
	OpenWeatherMapAPIKey string `envconfig:"OPEN_WEATHER_MAP_API_KEY" required:"true"`
	OpenWeatherMapURL    string `envconfig:"OPEN_WEATHER_MAP_URL" default:"https://api.openweathermap.org/data/2.5"`

	RequestTimeout int `envconfig:"REQUEST_TIMEOUT" default:"10"`
	BatchWorkers   int `envconfig:"BATCH_WORKERS" default:"1"`

	Server  Server
	Breaker Breaker
	Watch   Watch

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/one-weather.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/one-weather-http.log"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// WatchCities returns the configured cities with blanks dropped.
func (c *Config) WatchCities() []string {
	out := make([]string, 0, len(c.Watch.Cities))
	for _, city := range c.Watch.Cities {
		if city = strings.TrimSpace(city); city != "" {
			out = append(out, city)
		}
	}
	return out
}

var ErrEmptyAPIKey = errors.New("required key OPEN_WEATHER_MAP_API_KEY is empty")

// NewConfig reads the environment. A blank API key fails the same way a
// missing one does.
func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.OpenWeatherMapAPIKey) == "" {
		return nil, ErrEmptyAPIKey
	}
	return &cfg, nil
}
