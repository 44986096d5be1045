// Package service provides business logic layer for the public student view.
package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/festy23/sportsday/internal/apiclient"
	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
	"github.com/festy23/sportsday/internal/viewer/model"
)

// API is the read-only subset of the remote API the student view needs.
type API interface {
	ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error)
	GetBracket(ctx context.Context, sport string) ([]bracketModel.Match, error)
}

// Service defines the interface for the student view.
type Service interface {
	// SportPage loads the teams and the bracket of a sport concurrently.
	// A failed read leaves its part empty; the other part is still returned.
	SportPage(ctx context.Context, sportName string) model.SportPage
}

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new viewer service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{api: api, logger: logger}
}

func (s *service) SportPage(ctx context.Context, sportName string) model.SportPage {
	var page model.SportPage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.api.ListTeams(gctx, sportName)
		if err != nil {
			s.logger.Warnw("student view without teams", "sport", sportName, "error", err)
			return nil
		}
		page.Teams = teams
		return nil
	})
	g.Go(func() error {
		matches, err := s.api.GetBracket(gctx, sportName)
		if err != nil {
			if !apiclient.IsNotFound(err) {
				s.logger.Warnw("student view without bracket", "sport", sportName, "error", err)
			}
			return nil
		}
		page.Matches = matches
		return nil
	})

	// Both reads swallow their errors, so Wait only synchronizes.
	_ = g.Wait()
	return page
}
