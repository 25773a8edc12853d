package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketbrief/config"
	"marketbrief/di"
	"marketbrief/utils/logger"
	"marketbrief/utils/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	logger.InitLogger()

	e := echo.New()
	container := &di.ApplicationComponents{MetricsCollector: metrics.NewCollector()}
	cfg := &config.Config{
		Server: config.ServerConfig{ReadTimeout: 30 * time.Second},
	}
	RegisterRoutes(e, container, cfg)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestMetricsEndpoint(t *testing.T) {
	logger.InitLogger()

	e := echo.New()
	container := &di.ApplicationComponents{MetricsCollector: metrics.NewCollector()}
	cfg := &config.Config{
		Server: config.ServerConfig{ReadTimeout: 30 * time.Second},
	}
	RegisterRoutes(e, container, cfg)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
