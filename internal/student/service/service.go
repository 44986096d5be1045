// Package service provides business logic layer for student registration.
package service

import (
	"context"

	"go.uber.org/zap"

	studentModel "github.com/festy23/sportsday/internal/student/model"
)

// API is the subset of the remote API used for registration.
type API interface {
	ListStudents(ctx context.Context) ([]studentModel.Student, error)
	CreateStudent(ctx context.Context, req studentModel.CreateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

// Service defines the interface for student registration.
type Service interface {
	// List returns all registered students.
	List(ctx context.Context) ([]studentModel.Student, error)

	// Register validates req and creates the student.
	Register(ctx context.Context, req studentModel.CreateStudentRequest) error

	// Delete removes a student.
	Delete(ctx context.Context, id int64) error
}

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new student service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{api: api, logger: logger}
}

func (s *service) List(ctx context.Context) ([]studentModel.Student, error) {
	students, err := s.api.ListStudents(ctx)
	if err != nil {
		s.logger.Errorw("List students failed", "error", err)
		return nil, err
	}
	return students, nil
}

func (s *service) Register(ctx context.Context, req studentModel.CreateStudentRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.CreateStudent(ctx, req); err != nil {
		s.logger.Errorw("Register student failed", "roll_number", req.RollNumber, "error", err)
		return err
	}

	s.logger.Infow("student registered", "roll_number", req.RollNumber)
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return studentModel.ErrInvalidStudentID
	}

	if err := s.api.DeleteStudent(ctx, id); err != nil {
		s.logger.Errorw("Delete student failed", "student_id", id, "error", err)
		return err
	}

	s.logger.Infow("student deleted", "student_id", id)
	return nil
}
