// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/statistics/handler"
	"github.com/festy23/sportsday/internal/statistics/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers statistics module routes on the admin group.
func RegisterRoutes(r gin.IRouter, api service.API, render *web.Renderer, logger *zap.SugaredLogger) {
	svc := service.New(api, logger)
	h := handler.New(svc, render, logger)

	r.GET("/admin/dashboard", h.Dashboard)
}
