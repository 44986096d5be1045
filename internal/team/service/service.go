// Package service provides business logic layer for the team builder.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/sport"
	studentModel "github.com/festy23/sportsday/internal/student/model"
	teamModel "github.com/festy23/sportsday/internal/team/model"
)

// API is the subset of the remote API used by the team builder.
type API interface {
	ListTeams(ctx context.Context, sport string) ([]teamModel.Team, error)
	ListStudentsBySport(ctx context.Context, sport string) ([]studentModel.Student, error)
	CreateTeam(ctx context.Context, req teamModel.CreateTeamRequest) error
	DeleteTeam(ctx context.Context, id int64) error
}

// Service defines the interface for team builder operations.
type Service interface {
	// ListTeams returns the teams of a sport.
	ListTeams(ctx context.Context, sportName string) ([]teamModel.Team, error)

	// ListAvailable returns the students that can still join a team of a sport.
	ListAvailable(ctx context.Context, sportName string) ([]teamModel.RosterStudent, error)

	// Create validates the form and creates the team.
	Create(ctx context.Context, sportName string, form teamModel.CreateTeamForm) error

	// Delete removes a team.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{api: api, logger: logger}
}

func (s *service) ListTeams(ctx context.Context, sportName string) ([]teamModel.Team, error) {
	if _, ok := sport.Lookup(sportName); !ok {
		return nil, teamModel.ErrUnknownSport
	}

	teams, err := s.api.ListTeams(ctx, sportName)
	if err != nil {
		s.logger.Errorw("ListTeams failed", "sport", sportName, "error", err)
		return nil, err
	}
	return teams, nil
}

func (s *service) ListAvailable(ctx context.Context, sportName string) ([]teamModel.RosterStudent, error) {
	if _, ok := sport.Lookup(sportName); !ok {
		return nil, teamModel.ErrUnknownSport
	}

	students, err := s.api.ListStudentsBySport(ctx, sportName)
	if err != nil {
		return nil, err
	}

	roster := make([]teamModel.RosterStudent, 0, len(students))
	for _, st := range students {
		roster = append(roster, teamModel.RosterStudent{
			ID:         st.ID,
			Name:       st.Name,
			RollNumber: st.RollNumber,
		})
	}
	return roster, nil
}

func (s *service) Create(ctx context.Context, sportName string, form teamModel.CreateTeamForm) error {
	if _, ok := sport.Lookup(sportName); !ok {
		return teamModel.ErrUnknownSport
	}

	req := teamModel.NewCreateTeamRequest(sportName, form)
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.CreateTeam(ctx, req); err != nil {
		s.logger.Errorw("Create team failed", "sport", sportName, "team_name", req.TeamName, "error", err)
		return err
	}

	s.logger.Infow("team created", "sport", sportName, "team_name", req.TeamName, "members", len(req.Members))
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return teamModel.ErrInvalidTeamID
	}

	if err := s.api.DeleteTeam(ctx, id); err != nil {
		s.logger.Errorw("Delete team failed", "team_id", id, "error", err)
		return err
	}

	s.logger.Infow("team deleted", "team_id", id)
	return nil
}
