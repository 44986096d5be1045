// Package router provides student module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/student/handler"
	"github.com/festy23/sportsday/internal/student/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers student module routes on the admin group.
func RegisterRoutes(r gin.IRouter, api service.API, render *web.Renderer, logger *zap.SugaredLogger) {
	svc := service.New(api, logger)
	h := handler.New(svc, render, logger)

	r.GET("/admin/register", h.ShowRegister)
	r.POST("/admin/register", h.Register)
	r.POST("/admin/register/:id/delete", h.Delete)
}
