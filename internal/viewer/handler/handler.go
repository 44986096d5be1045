// Package handler provides HTTP handlers for the entry page and the public
// student view.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/bracket/assembly"
	"github.com/festy23/sportsday/internal/sport"
	"github.com/festy23/sportsday/internal/viewer/service"
	"github.com/festy23/sportsday/internal/web"
)

const (
	// EmptyMessage is shown to students while a sport has no bracket.
	EmptyMessage = "Tournament bracket not generated yet"
	// ChampionTitle heads the student winner banner.
	ChampionTitle = "Champion"

	msgUnknownSport = "Unknown sport"
)

// Handler handles HTTP requests for public pages.
type Handler struct {
	service service.Service
	render  *web.Renderer
	logger  *zap.SugaredLogger
}

// New creates a new viewer handler instance.
func New(svc service.Service, render *web.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, render: render, logger: logger}
}

// Entry handles GET /.
func (h *Handler) Entry(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "entry.html", nil)
}

// Sports handles GET /student.
func (h *Handler) Sports(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "student_sports.html", gin.H{"PageTitle": "Sports"})
}

// Sport handles GET /student/sport/:sport.
func (h *Handler) Sport(c *gin.Context) {
	sp, ok := sport.Lookup(c.Param("sport"))
	if !ok {
		h.render.Error(c, "/student", msgUnknownSport)
		return
	}

	page := h.service.SportPage(c.Request.Context(), sp.Name)

	h.render.HTML(c, http.StatusOK, "student_sport.html", gin.H{
		"PageTitle": sp.Label,
		"Sport":     sp,
		"Teams":     page.Teams,
		"Bracket": web.BracketPanel{
			Sport:         sp.Name,
			View:          assembly.Build(page.Matches),
			EmptyMessage:  EmptyMessage,
			ChampionTitle: ChampionTitle,
		},
	})
}
