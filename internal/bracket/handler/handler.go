// Package handler provides HTTP handlers for bracket management.
package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	"github.com/festy23/sportsday/internal/bracket/assembly"
	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	"github.com/festy23/sportsday/internal/bracket/service"
	"github.com/festy23/sportsday/internal/web"
)

const (
	dashboardPath = "/admin/dashboard"

	// EmptyMessage is shown to admins while a sport has no bracket.
	EmptyMessage = "No teams created yet. Admin needs to create teams first."
	// ChampionTitle heads the admin winner banner.
	ChampionTitle = "Tournament Winner"

	msgGenerated       = "Bracket generated successfully!"
	msgGenerateFailed  = "Failed to generate bracket"
	msgNotEnoughTeams  = "Need at least 2 teams to generate bracket"
	msgSetWinnerFailed = "Failed to set match winner"
	msgResetFailed     = "Failed to reset bracket"
	msgUnknownSport    = "Unknown sport"
)

// Handler handles HTTP requests for bracket endpoints.
type Handler struct {
	service service.Service
	render  *web.Renderer
	logger  *zap.SugaredLogger
}

// New creates a new bracket handler instance.
func New(svc service.Service, render *web.Renderer, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, render: render, logger: logger}
}

func bracketPath(sportName string) string {
	return "/admin/sport/" + sportName + "?tab=bracket"
}

// AdminPanel builds the bracket tab of the sport page. Read failures render
// an empty bracket.
func (h *Handler) AdminPanel(ctx context.Context, sportName string) web.BracketPanel {
	matches, err := h.service.Get(ctx, sportName)
	if err != nil {
		h.logger.Warnw("rendering empty bracket", "sport", sportName, "error", err)
	}

	panel := web.BracketPanel{
		Sport:         sportName,
		View:          assembly.Build(matches),
		Admin:         true,
		EmptyMessage:  EmptyMessage,
		ChampionTitle: ChampionTitle,
	}
	if panel.View.Empty {
		count, err := h.service.TeamCount(ctx, sportName)
		if err != nil {
			h.logger.Warnw("team count unavailable", "sport", sportName, "error", err)
		}
		panel.CanGenerate = count >= service.MinTeams
	}
	return panel
}

// Generate handles POST /admin/sport/:sport/bracket/generate.
func (h *Handler) Generate(c *gin.Context) {
	sportName := c.Param("sport")
	back := bracketPath(sportName)

	err := h.service.Generate(c.Request.Context(), sportName)
	switch {
	case err == nil:
		h.render.Success(c, back, msgGenerated)
	case errors.Is(err, bracketModel.ErrNotEnoughTeams):
		h.render.Error(c, back, msgNotEnoughTeams)
	case errors.Is(err, bracketModel.ErrUnknownSport):
		h.render.Error(c, dashboardPath, msgUnknownSport)
	default:
		h.render.Error(c, back, apiclient.UserMessage(err, msgGenerateFailed))
	}
}

// SetWinner handles POST /admin/sport/:sport/bracket/matches/:id/winner.
func (h *Handler) SetWinner(c *gin.Context) {
	back := bracketPath(c.Param("sport"))

	matchID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.render.Error(c, back, msgSetWinnerFailed)
		return
	}

	var form bracketModel.SetWinnerForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid winner form", "match_id", matchID, "error", err)
		h.render.Error(c, back, msgSetWinnerFailed)
		return
	}

	if err := h.service.SetWinner(c.Request.Context(), matchID, form.WinnerID); err != nil {
		h.render.Error(c, back, apiclient.UserMessage(err, msgSetWinnerFailed))
		return
	}

	h.render.Redirect(c, back)
}

// Reset handles POST /admin/sport/:sport/bracket/reset.
func (h *Handler) Reset(c *gin.Context) {
	sportName := c.Param("sport")
	back := bracketPath(sportName)

	if err := h.service.Reset(c.Request.Context(), sportName); err != nil {
		if errors.Is(err, bracketModel.ErrUnknownSport) {
			h.render.Error(c, dashboardPath, msgUnknownSport)
			return
		}
		h.render.Error(c, back, apiclient.UserMessage(err, msgResetFailed))
		return
	}

	h.render.Redirect(c, back)
}
