// Package web holds the portal's HTML templates and the helpers handlers use
// to render pages and redirect with a flash message.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/bracket/assembly"
	"github.com/festy23/sportsday/internal/flash"
	"github.com/festy23/sportsday/internal/session"
	"github.com/festy23/sportsday/internal/sport"
)

//go:embed templates/*.html
var templateFS embed.FS

// Title is the portal name shown in page headers.
const Title = "AITM Sports Day 2025"

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"sportLabel": sport.Label,
		"sportIcon": func(name string) string {
			s, _ := sport.Lookup(name)
			return s.Icon
		},
		"sports": sport.All,
		"join":   strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// BracketPanel is the data of the shared bracket partial.
type BracketPanel struct {
	Sport string
	View  assembly.View
	// Admin enables the generate/reset/winner controls.
	Admin bool
	// CanGenerate is false when the sport has fewer than two teams.
	CanGenerate bool
	// EmptyMessage is shown when no matches exist.
	EmptyMessage string
	// ChampionTitle heads the winner banner.
	ChampionTitle string
}

// Renderer renders pages with the per-request chrome: the pending flash
// message and the admin flag.
type Renderer struct {
	flasher *flash.Flasher
	logger  *zap.SugaredLogger
}

// NewRenderer creates a Renderer.
func NewRenderer(flasher *flash.Flasher, logger *zap.SugaredLogger) *Renderer {
	return &Renderer{flasher: flasher, logger: logger}
}

// HTML renders the named template. data may be nil.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["SiteTitle"] = Title

	if s, ok := session.FromContext(c); ok {
		ctx := c.Request.Context()
		data["IsAdmin"] = s.IsAdmin(ctx)
		msg, err := r.flasher.Pop(ctx, s)
		if err != nil {
			r.logger.Warnw("failed to read flash message", "error", err)
		}
		data["Flash"] = msg
	}

	c.HTML(status, name, data)
}

// Redirect answers a form post with 303 See Other.
func (r *Renderer) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWith stores a flash message and redirects.
func (r *Renderer) RedirectWith(c *gin.Context, location string, kind flash.Kind, text string) {
	if s, ok := session.FromContext(c); ok {
		if err := r.flasher.Put(c.Request.Context(), s, kind, text); err != nil {
			r.logger.Warnw("failed to store flash message", "error", err)
		}
	}
	r.Redirect(c, location)
}

// Success redirects with a success message.
func (r *Renderer) Success(c *gin.Context, location, text string) {
	r.RedirectWith(c, location, flash.Success, text)
}

// Error redirects with an error message.
func (r *Renderer) Error(c *gin.Context, location, text string) {
	r.RedirectWith(c, location, flash.Error, text)
}
