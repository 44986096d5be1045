package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/festy23/sportsday/internal/sport"
	"github.com/festy23/sportsday/internal/statistics/model"
	"github.com/festy23/sportsday/internal/statistics/service"
	"github.com/festy23/sportsday/internal/web/webtest"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Dashboard), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setup(t *testing.T) (*webtest.Harness, *mockService) {
	h := webtest.New(t)
	svc := new(mockService)
	h.Engine.GET("/admin/dashboard", New(svc, h.Renderer, h.Logger).Dashboard)
	return h, svc
}

func TestHandler_Dashboard(t *testing.T) {
	t.Run("renders counts and sport links", func(t *testing.T) {
		h, svc := setup(t)
		d := model.EmptyDashboard()
		d.TotalStudents = 12
		d.Sports[0].Participants = 7
		svc.On("GetDashboard", mock.Anything).Return(d, nil)

		w := h.Get("/admin/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		doc := webtest.Doc(t, w)
		assert.Equal(t, "12", doc.Find("#total-students").Text())

		cards := doc.Find("a.sport-card")
		assert.Equal(t, len(sport.All()), cards.Length())
		cricket := doc.Find(`a.sport-card[data-sport="cricket"]`)
		href, _ := cricket.Attr("href")
		assert.Equal(t, "/admin/sport/cricket", href)
		assert.Equal(t, "7 participants", cricket.Find(".participant-count").Text())
		assert.Equal(t, 1, doc.Find(`a[href="/admin/register"]`).Length())
		assert.Equal(t, 1, doc.Find(`form[action="/admin/logout"]`).Length())
	})

	t.Run("api failure renders zeros", func(t *testing.T) {
		h, svc := setup(t)
		svc.On("GetDashboard", mock.Anything).Return(nil, errors.New("api unavailable"))

		w := h.Get("/admin/dashboard")

		assert.Equal(t, http.StatusOK, w.Code)
		doc := webtest.Doc(t, w)
		assert.Equal(t, "0", doc.Find("#total-students").Text())
		doc.Find(".participant-count").Each(func(_ int, s *goquery.Selection) {
			assert.Equal(t, "0 participants", s.Text())
		})
	})
}
