package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusbridge/campus-bridge/internal/http/response"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

// Pinger is any dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log    *logger.Logger
	checks map[string]Pinger
}

// NewHealthHandler takes named checks; nil entries are skipped.
func NewHealthHandler(log *logger.Logger, checks map[string]Pinger) *HealthHandler {
	live := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			live[name] = p
		}
	}
	return &HealthHandler{log: log.With("handler", "HealthHandler"), checks: live}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	failed := gin.H{}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Error("Health check failed", "check", name, "error", err)
			failed[name] = "unavailable"
		}
	}
	if len(failed) > 0 {
		response.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "degraded", "checks": failed})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
}
