package weather

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/one-weather/internal/models"
)

const (
	requestTimeout = 30 * time.Second
	maxBatchSize   = 50
)

type weatherService interface {
	Current(ctx context.Context, q models.LocationQuery) models.Outcome[models.CurrentWeather]
	Forecast(ctx context.Context, q models.LocationQuery) models.Outcome[models.Forecast]
	CurrentMany(ctx context.Context, queries []models.LocationQuery) []models.BatchResult
}

type Handler struct {
	service weatherService
	logger  zerolog.Logger
}

func NewHandler(svc weatherService, logger zerolog.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger.With().Str("component", "WeatherHandler").Logger(),
	}
}

// Register mounts the JSON API under group.
func (h *Handler) Register(group *gin.RouterGroup) {
	group.GET("/current", h.GetCurrent)
	group.GET("/forecast", h.GetForecast)
	group.GET("/batch", h.GetBatch)
	group.POST("/batch", h.PostBatch)
}

// GetCurrent
// @Summary Get current weather
// @Description Returns current conditions for a city or a lat/lon pair. Lookup failures are reported inside the body with success=false.
// @Tags weather
// @Produce json
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} models.Outcome[models.CurrentWeather]
// @Failure 400 {object} models.Outcome[models.CurrentWeather]
// @Router /api/weather/current [get]
func (h *Handler) GetCurrent(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.Failed[models.CurrentWeather](models.MsgInvalidCoordinates))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.service.Current(ctx, q))
}

// GetForecast
// @Summary Get 5 day forecast
// @Description Returns the 3-hour forecast for a city or a lat/lon pair.
// @Tags weather
// @Produce json
// @Param city query string false "City name"
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} models.Outcome[models.Forecast]
// @Failure 400 {object} models.Outcome[models.Forecast]
// @Router /api/weather/forecast [get]
func (h *Handler) GetForecast(c *gin.Context) {
	q, ok := h.parseQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.Failed[models.Forecast](models.MsgInvalidCoordinates))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	c.JSON(http.StatusOK, h.service.Forecast(ctx, q))
}

// GetBatch
// @Summary Current weather for several cities
// @Tags weather
// @Produce json
// @Param city query []string true "City names" collectionFormat(multi)
// @Success 200 {array} models.BatchResult
// @Failure 400 {object} ErrorResponse
// @Router /api/weather/batch [get]
func (h *Handler) GetBatch(c *gin.Context) {
	cities := c.QueryArray("city")
	queries := make([]models.LocationQuery, 0, len(cities))
	for _, city := range cities {
		queries = append(queries, models.CityQuery(city))
	}
	h.batch(c, queries)
}

// PostBatch
// @Summary Current weather for several locations
// @Description Body is a JSON array of queries, each with either "city" or "coord".
// @Tags weather
// @Accept json
// @Produce json
// @Param queries body []models.LocationQuery true "Locations"
// @Success 200 {array} models.BatchResult
// @Failure 400 {object} ErrorResponse
// @Router /api/weather/batch [post]
func (h *Handler) PostBatch(c *gin.Context) {
	var queries []models.LocationQuery
	if err := c.ShouldBindJSON(&queries); err != nil {
		h.logger.Warn().
			Ctx(c.Request.Context()).
			Err(err).
			Msg("invalid batch body")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "body must be a JSON array of locations"})
		return
	}
	h.batch(c, queries)
}

func (h *Handler) batch(c *gin.Context, queries []models.LocationQuery) {
	if len(queries) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "at least one location is required"})
		return
	}
	if len(queries) > maxBatchSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "too many locations in one batch"})
		return
	}

	c.JSON(http.StatusOK, h.service.CurrentMany(c.Request.Context(), queries))
}

func (h *Handler) parseQuery(c *gin.Context) (models.LocationQuery, bool) {
	q, err := models.ParseLocation(c.Query("city"), c.Query("lat"), c.Query("lon"))
	if errors.Is(err, models.ErrInvalidCoordinates) {
		h.logger.Warn().
			Ctx(c.Request.Context()).
			Str("lat", c.Query("lat")).
			Str("lon", c.Query("lon")).
			Msg("unparsable coordinates")
		return models.LocationQuery{}, false
	}
	return q, true
}
