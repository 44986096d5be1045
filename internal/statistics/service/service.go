// Package service provides business logic layer for the admin dashboard.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/statistics/model"
	studentModel "github.com/festy23/sportsday/internal/student/model"
)

// API lists registered students.
type API interface {
	ListStudents(ctx context.Context) ([]studentModel.Student, error)
}

// Service defines the interface for dashboard statistics.
type Service interface {
	// GetDashboard counts students overall and per sport.
	GetDashboard(ctx context.Context) (*model.Dashboard, error)
}

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{
		api:    api,
		logger: logger,
	}
}

// GetDashboard counts students overall and per sport.
func (s *service) GetDashboard(ctx context.Context) (*model.Dashboard, error) {
	s.logger.Debugw("GetDashboard called")

	students, err := s.api.ListStudents(ctx)
	if err != nil {
		s.logger.Errorw("GetDashboard failed", "error", err)
		return nil, err
	}

	d := model.EmptyDashboard()
	d.TotalStudents = len(students)
	for i := range d.Sports {
		for _, st := range students {
			if st.Interested(d.Sports[i].Sport.Name) {
				d.Sports[i].Participants++
			}
		}
	}

	s.logger.Infow("GetDashboard completed", "total_students", d.TotalStudents)
	return d, nil
}
