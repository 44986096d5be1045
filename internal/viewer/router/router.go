// Package router provides public page routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/viewer/handler"
	"github.com/festy23/sportsday/internal/viewer/service"
	"github.com/festy23/sportsday/internal/web"
)

// RegisterRoutes registers the entry page and the student view.
func RegisterRoutes(r gin.IRouter, api service.API, render *web.Renderer, logger *zap.SugaredLogger) {
	svc := service.New(api, logger)
	h := handler.New(svc, render, logger)

	r.GET("/", h.Entry)
	r.GET("/student", h.Sports)
	r.GET("/student/sport/:sport", h.Sport)
}
