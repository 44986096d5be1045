package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
	"github.com/festy23/sportsday/internal/viewer/model"
	"github.com/festy23/sportsday/internal/viewer/service"
	"github.com/festy23/sportsday/internal/web/webtest"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SportPage(ctx context.Context, sportName string) model.SportPage {
	return m.Called(ctx, sportName).Get(0).(model.SportPage)
}

var _ service.Service = (*mockService)(nil)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*webtest.Harness, *mockService) {
	h := webtest.New(t)
	svc := new(mockService)
	handler := New(svc, h.Renderer, h.Logger)
	h.Engine.GET("/", handler.Entry)
	h.Engine.GET("/student", handler.Sports)
	h.Engine.GET("/student/sport/:sport", handler.Sport)
	return h, svc
}

func TestHandler_Entry(t *testing.T) {
	h, _ := setup(t)

	w := h.Get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	doc := webtest.Doc(t, w)
	assert.Equal(t, 1, doc.Find(`a[href="/student"]`).Length())
	assert.Equal(t, 1, doc.Find(`a[href="/admin/login"]`).Length())
	assert.Equal(t, 6, doc.Find(".sports-section .sport-card").Length())
	assert.Equal(t, "AITM Sports Day 2025", doc.Find("title").Text())
}

func TestHandler_Sports(t *testing.T) {
	h, _ := setup(t)

	doc := webtest.Doc(t, h.Get("/student"))

	assert.Equal(t, 6, doc.Find("a.sport-card").Length())
	assert.Equal(t, "/student/sport/kho_kho", doc.Find(`a.sport-card[data-sport="kho_kho"]`).AttrOr("href", ""))
}

func TestHandler_Sport(t *testing.T) {
	t.Run("teams and bracket without admin controls", func(t *testing.T) {
		h, svc := setup(t)
		a, b := ptr(int64(1)), ptr(int64(2))
		svc.On("SportPage", mock.Anything, "cricket").Return(model.SportPage{
			Teams: []teamModel.Team{
				{ID: 1, TeamName: "Falcons", Members: []teamModel.Member{{Name: "Asha"}, {Name: "Ravi"}}},
				{ID: 2, TeamName: "Hawks"},
			},
			Matches: []bracketModel.Match{{
				ID: 5, Round: 1, MatchNumber: 1,
				Team1ID: a, Team2ID: b, Team1Name: ptr("Falcons"), Team2Name: ptr("Hawks"),
			}},
		})

		doc := webtest.Doc(t, h.Get("/student/sport/cricket"))

		assert.Equal(t, "Cricket", doc.Find(".sport-header h2").Text())
		assert.Equal(t, 2, doc.Find(".team-card-view").Length())
		assert.Equal(t, 2, doc.Find(`.team-card-view[data-team-id="1"] .member-badge`).Length())
		assert.Equal(t, 1, doc.Find(`.match-card[data-match-id="5"]`).Length())
		assert.Equal(t, 0, doc.Find("form").Length())
		assert.Equal(t, 0, doc.Find("#generate-bracket").Length())
	})

	t.Run("empty bracket message", func(t *testing.T) {
		h, svc := setup(t)
		svc.On("SportPage", mock.Anything, "relay").Return(model.SportPage{})

		doc := webtest.Doc(t, h.Get("/student/sport/relay"))

		assert.Equal(t, "Tournament bracket not generated yet", strings.TrimSpace(doc.Find(".empty-bracket p").Text()))
		assert.Equal(t, 1, doc.Find(".no-teams").Length())
	})

	t.Run("champion banner", func(t *testing.T) {
		h, svc := setup(t)
		a, b := ptr(int64(1)), ptr(int64(2))
		svc.On("SportPage", mock.Anything, "relay").Return(model.SportPage{
			Matches: []bracketModel.Match{{
				ID: 5, Round: 1, MatchNumber: 1,
				Team1ID: a, Team2ID: b, Team1Name: ptr("Falcons"), Team2Name: ptr("Hawks"),
				IsCompleted: true, WinnerID: a, WinnerName: ptr("Falcons"),
			}},
		})

		doc := webtest.Doc(t, h.Get("/student/sport/relay"))

		assert.Contains(t, doc.Find(".winner-announcement h2").Text(), "Champion")
		assert.Equal(t, "Falcons", doc.Find("h3.champion").Text())
	})

	t.Run("unknown sport", func(t *testing.T) {
		h, svc := setup(t)

		w := h.Get("/student/sport/chess")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/student", w.Header().Get("Location"))
		kind, text := webtest.Flash(webtest.Doc(t, h.Follow(w)))
		assert.Equal(t, "error", kind)
		assert.Equal(t, "Unknown sport", text)
		svc.AssertNotCalled(t, "SportPage", mock.Anything, mock.Anything)
	})
}
