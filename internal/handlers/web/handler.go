package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const requestTimeout = 30 * time.Second

//go:embed templates/index.html
var templatesFS embed.FS

var page = template.Must(template.New("index.html").Funcs(funcs).ParseFS(templatesFS, "templates/index.html"))

type weatherService interface {
	Current(ctx context.Context, q models.LocationQuery) models.Outcome[models.CurrentWeather]
	Forecast(ctx context.Context, q models.LocationQuery) models.Outcome[models.Forecast]
}

type pageData struct {
	City         string
	Lat          string
	Lon          string
	ShowForecast bool

	Current  *models.Outcome[models.CurrentWeather]
	Forecast *models.Outcome[models.Forecast]
}

// Handler serves the HTML front page. Nothing is fetched until the form
// has been submitted with at least one field.
type Handler struct {
	service weatherService
	logger  zerolog.Logger
}

func NewHandler(svc weatherService, logger zerolog.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger.With().Str("component", "WebHandler").Logger(),
	}
}

func (h *Handler) Index(c *gin.Context) {
	data := pageData{
		City:         c.Query("city"),
		Lat:          c.Query("lat"),
		Lon:          c.Query("lon"),
		ShowForecast: c.Query("forecast") == "on",
	}

	if data.City != "" || data.Lat != "" || data.Lon != "" {
		h.lookup(c, &data)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		h.logger.Error().
			Ctx(c.Request.Context()).
			Err(err).
			Msg("failed to render page")
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) lookup(c *gin.Context, data *pageData) {
	q, err := models.ParseLocation(data.City, data.Lat, data.Lon)
	if errors.Is(err, models.ErrInvalidCoordinates) {
		failed := models.Failed[models.CurrentWeather](models.MsgInvalidCoordinates)
		data.Current = &failed
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	current := h.service.Current(ctx, q)
	data.Current = &current

	if data.ShowForecast {
		forecast := h.service.Forecast(ctx, q)
		data.Forecast = &forecast
	}
}
