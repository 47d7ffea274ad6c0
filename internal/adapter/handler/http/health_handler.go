package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping implements Pinger
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports liveness and dependency status
type HealthHandler struct {
	logger  *zap.Logger
	checks  map[string]Pinger
	timeout time.Duration
	started time.Time
}

// NewHealthHandler creates a new health handler. Nil checks are skipped.
func NewHealthHandler(logger *zap.Logger, checks map[string]Pinger) *HealthHandler {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &HealthHandler{
		logger:  logger,
		checks:  active,
		timeout: 2 * time.Second,
		started: time.Now(),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	status, label := http.StatusOK, "ok"
	deps := make(map[string]string, len(h.checks))
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			deps[name] = "down"
			status, label = http.StatusServiceUnavailable, "degraded"
			continue
		}
		deps[name] = "up"
	}

	return c.JSON(status, map[string]interface{}{
		"status":       label,
		"dependencies": deps,
		"uptime":       time.Since(h.started).Round(time.Second).String(),
	})
}
