// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sportsday/internal/database/database"
)

// checkTimeout bounds a single probe.
const checkTimeout = 5 * time.Second

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// SessionStore probes the database that holds browser sessions.
func SessionStore(db *gorm.DB) CheckFunc {
	return func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}
}

// Handler handles health check requests.
type Handler struct {
	check  CheckFunc
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(check CheckFunc, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		check:  check,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string `json:"status"`
}

// Check handles GET /health. The remote API is not probed: the portal
// renders empty pages while it is down.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	if err := h.check(ctx); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, Response{Status: "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, Response{Status: "ok"})
}
