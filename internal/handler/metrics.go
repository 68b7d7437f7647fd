package handler

import (
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/deppfellow/v1-api/internal/service"
	"github.com/labstack/echo/v4"
)

type MetricsHandler struct {
	Handler
	metricsService *service.MetricsService
}

func NewMetricsHandler(s *server.Server, metricsService *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		Handler:        NewHandler(s),
		metricsService: metricsService,
	}
}

func (h *MetricsHandler) GetMetrics(c echo.Context, req *model.GetMetricsRequest) (*model.Metrics, error) {
	// Counters move on every call; intermediaries must not cache them.
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return h.metricsService.Get(c.Request().Context(), req)
}
