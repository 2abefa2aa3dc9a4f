package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveFetch(t *testing.T) {
	m := NewMetrics("test")

	m.ObserveFetch("current", "ok", 20*time.Millisecond)
	m.ObserveFetch("current", "ok", 30*time.Millisecond)
	m.ObserveFetch("forecast", "timeout", time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(m.FetchTotal.WithLabelValues("current", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchTotal.WithLabelValues("forecast", "timeout")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.FetchDuration))
}

func TestMetrics_HTTPMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics("test")

	r := gin.New()
	r.Use(m.HTTPMiddleware())
	r.GET("/api/weather/current", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/weather/current?city=Lviv", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/weather/current", "2xx")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "4xx")), 0)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_http_requests_total")
}

func TestGetStatusClass(t *testing.T) {
	assert.Equal(t, "2xx", getStatusClass(http.StatusOK))
	assert.Equal(t, "4xx", getStatusClass(http.StatusBadRequest))
	assert.Equal(t, "5xx", getStatusClass(http.StatusBadGateway))
}
