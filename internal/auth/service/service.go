// Package service provides business logic layer for admin authentication.
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	authModel "github.com/festy23/sportsday/internal/auth/model"
	"github.com/festy23/sportsday/internal/session"
)

// API is the remote login endpoint.
type API interface {
	Login(ctx context.Context, password string) (*authModel.LoginResponse, error)
}

// Service defines the interface for admin sign in and sign out.
type Service interface {
	// Login checks password with the API and stores the returned token in s.
	Login(ctx context.Context, s *session.Session, password string) error

	// Logout removes the admin token from s.
	Logout(ctx context.Context, s *session.Session) error
}

type service struct {
	api    API
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(api API, logger *zap.SugaredLogger) Service {
	return &service{api: api, logger: logger}
}

func (s *service) Login(ctx context.Context, sess *session.Session, password string) error {
	if password == "" {
		return authModel.ErrEmptyPassword
	}

	resp, err := s.api.Login(ctx, password)
	if err != nil {
		return err
	}
	if !resp.Success || resp.Token == "" {
		return authModel.ErrLoginRejected
	}

	if err := sess.Login(ctx, resp.Token); err != nil {
		return fmt.Errorf("store admin token: %w", err)
	}
	s.logger.Infow("admin signed in", "session", sess.ID())
	return nil
}

func (s *service) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.Logout(ctx); err != nil {
		return fmt.Errorf("clear admin token: %w", err)
	}
	s.logger.Infow("admin signed out", "session", sess.ID())
	return nil
}
