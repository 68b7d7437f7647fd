package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/middleware"
	"github.com/deppfellow/v1-api/internal/model"
	"github.com/deppfellow/v1-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves GET /health for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// probe is one dependency check.
type probe struct {
	name string
	ping func(ctx context.Context) error
}

// probes lists the checks to run: only dependencies that are both
// configured and enabled in observability.health_checks.
func (h *HealthHandler) probes() []probe {
	var probes []probe

	obs := h.server.Config.Observability

	if h.server.DB != nil && obs.HasCheck("database") {
		probes = append(probes, probe{name: "database", ping: h.server.DB.Ping})
	}

	if h.server.Redis != nil && obs.HasCheck("redis") {
		probes = append(probes, probe{name: "redis", ping: func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}})
	}

	return probes
}

// CheckHealth returns 200 with status "ok", or 503 with status "unhealthy"
// when any probed dependency is down.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := model.HealthResponse{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   config.Version,
	}

	probes := h.probes()
	if len(probes) > 0 {
		response.Checks = make(map[string]model.HealthCheck, len(probes))
	}

	timeout := h.server.Config.Observability.HealthChecks.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	for _, p := range probes {
		check := h.run(c.Request().Context(), p, timeout, &logger)
		if check.Status != model.HealthStatusOK {
			response.Status = model.HealthStatusUnhealthy
		}
		response.Checks[p.name] = check
	}

	if response.Status != model.HealthStatusOK {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) run(ctx context.Context, p probe, timeout time.Duration, logger *zerolog.Logger) model.HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	probeStart := time.Now()
	err := p.ping(ctx)
	elapsed := time.Since(probeStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", p.name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordHealthCheckError(map[string]interface{}{
			"check_type":       p.name,
			"operation":        "health_check",
			"error_type":       p.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return model.HealthCheck{
			Status:       model.HealthStatusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return model.HealthCheck{
		Status:       model.HealthStatusOK,
		ResponseTime: elapsed.String(),
	}
}

func (h *HealthHandler) recordHealthCheckError(attrs map[string]interface{}) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}
