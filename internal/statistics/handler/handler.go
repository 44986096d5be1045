// Package handler provides HTTP handlers for the admin dashboard.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/statistics/model"
	"github.com/festy23/sportsday/internal/statistics/service"
	"github.com/festy23/sportsday/internal/web"
)

// Handler handles HTTP requests for the dashboard.
type Handler struct {
	service service.Service
	render  *web.Renderer
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, render *web.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: svc,
		render:  render,
		logger:  logger,
	}
}

// Dashboard handles GET /admin/dashboard. Counts fall back to zero when the
// API can't be read.
func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		h.logger.Warnw("rendering dashboard without statistics", "error", err)
		stats = model.EmptyDashboard()
	}

	h.render.HTML(c, http.StatusOK, "dashboard.html", gin.H{
		"PageTitle":    "Admin Dashboard",
		"ShowRegister": true,
		"Stats":        stats,
	})
}
