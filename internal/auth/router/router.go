// Package router provides auth module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/auth/handler"
	"github.com/festy23/sportsday/internal/auth/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers auth module routes.
func RegisterRoutes(r gin.IRouter, api service.API, render *web.Renderer, logger *zap.SugaredLogger) {
	svc := service.New(api, logger)
	h := handler.New(svc, render, logger)

	r.GET("/admin/login", h.ShowLogin)
	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
}
