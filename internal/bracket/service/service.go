// Package service provides business logic layer for bracket management.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/apiclient"
	bracketModel "github.com/festy23/sportsday/internal/bracket/model"
	"github.com/festy23/sportsday/internal/sport"
	teamModel "github.com/festy23/sportsday/internal/team/model"
)

// API is the subset of the remote API used for brackets.
type API interface {
	GetBracket(ctx context.Context, sport string) ([]bracketModel.Match, error)
	GenerateBracket(ctx context.Context, sport string) error
	SetMatchWinner(ctx context.Context, matchID, winnerID int64) error
	ResetBracket(ctx context.Context, sport string) error
	ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error)
}

// Service defines the interface for bracket operations.
type Service interface {
	// Get returns the matches of a sport in API order. A sport without a
	// bracket yields an empty list.
	Get(ctx context.Context, sportName string) ([]bracketModel.Match, error)

	// TeamCount returns how many teams a sport has.
	TeamCount(ctx context.Context, sportName string) (int, error)

	// Generate asks the API to build the bracket. It refuses with
	// ErrNotEnoughTeams while the sport has fewer than two teams.
	Generate(ctx context.Context, sportName string) error

	// SetWinner records the winner of a match.
	SetWinner(ctx context.Context, matchID, winnerID int64) error

	// Reset deletes the bracket of a sport.
	Reset(ctx context.Context, sportName string) error
}

// MinTeams is the smallest number of teams a bracket can be generated from.
const MinTeams = 2

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new bracket service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{api: api, logger: logger}
}

func (s *service) Get(ctx context.Context, sportName string) ([]bracketModel.Match, error) {
	if _, ok := sport.Lookup(sportName); !ok {
		return nil, bracketModel.ErrUnknownSport
	}

	matches, err := s.api.GetBracket(ctx, sportName)
	if apiclient.IsNotFound(err) {
		return []bracketModel.Match{}, nil
	}
	if err != nil {
		s.logger.Errorw("Get bracket failed", "sport", sportName, "error", err)
		return nil, err
	}

	for _, m := range matches {
		if !m.Consistent() {
			s.logger.Warnw("inconsistent match from api", "sport", sportName, "match_id", m.ID)
		}
	}
	return matches, nil
}

func (s *service) TeamCount(ctx context.Context, sportName string) (int, error) {
	if _, ok := sport.Lookup(sportName); !ok {
		return 0, bracketModel.ErrUnknownSport
	}

	teams, err := s.api.ListTeams(ctx, sportName)
	if err != nil {
		return 0, err
	}
	return len(teams), nil
}

func (s *service) Generate(ctx context.Context, sportName string) error {
	count, err := s.TeamCount(ctx, sportName)
	if err != nil {
		return fmt.Errorf("count teams: %w", err)
	}
	if count < MinTeams {
		return bracketModel.ErrNotEnoughTeams
	}

	if err := s.api.GenerateBracket(ctx, sportName); err != nil {
		s.logger.Errorw("Generate bracket failed", "sport", sportName, "error", err)
		return err
	}

	s.logger.Infow("bracket generated", "sport", sportName, "teams", count)
	return nil
}

func (s *service) SetWinner(ctx context.Context, matchID, winnerID int64) error {
	if matchID <= 0 {
		return bracketModel.ErrInvalidMatchID
	}
	if winnerID <= 0 {
		return bracketModel.ErrInvalidWinner
	}

	if err := s.api.SetMatchWinner(ctx, matchID, winnerID); err != nil {
		s.logger.Errorw("Set winner failed", "match_id", matchID, "winner_id", winnerID, "error", err)
		return err
	}

	s.logger.Infow("match winner recorded", "match_id", matchID, "winner_id", winnerID)
	return nil
}

func (s *service) Reset(ctx context.Context, sportName string) error {
	if _, ok := sport.Lookup(sportName); !ok {
		return bracketModel.ErrUnknownSport
	}

	if err := s.api.ResetBracket(ctx, sportName); err != nil {
		s.logger.Errorw("Reset bracket failed", "sport", sportName, "error", err)
		return err
	}

	s.logger.Infow("bracket reset", "sport", sportName)
	return nil
}
