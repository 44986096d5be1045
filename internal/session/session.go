// Package session tracks per-browser portal state: the admin token and
// short-lived values such as flash messages.
package session

import (
	"context"
	"errors"
	"fmt"
)

const tokenKey = "token"

// ErrEmptyToken is returned by Login when the API handed back no token.
var ErrEmptyToken = errors.New("empty session token")

// Session is the state of one browser, addressed by its id.
type Session struct {
	id    string
	store Storage
}

// New binds a session id to a storage.
func New(id string, store Storage) *Session {
	return &Session{id: id, store: store}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) key(name string) string {
	return s.id + ":" + name
}

// IsAdmin reports whether an admin token is stored. Storage errors count as
// logged out.
func (s *Session) IsAdmin(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Token returns the stored admin token, or "" when there is none.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.Value(ctx, tokenKey)
	return token, err
}

// Login stores the admin token.
func (s *Session) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	return s.SetValue(ctx, tokenKey, token)
}

// Logout removes the admin token.
func (s *Session) Logout(ctx context.Context) error {
	return s.ClearValue(ctx, tokenKey)
}

// Value reads a named value of this session.
func (s *Session) Value(ctx context.Context, name string) (string, bool, error) {
	v, ok, err := s.store.Get(ctx, s.key(name))
	if err != nil {
		return "", false, fmt.Errorf("read session value %q: %w", name, err)
	}
	return v, ok, nil
}

// SetValue writes a named value of this session.
func (s *Session) SetValue(ctx context.Context, name, value string) error {
	if err := s.store.Set(ctx, s.key(name), value); err != nil {
		return fmt.Errorf("write session value %q: %w", name, err)
	}
	return nil
}

// ClearValue removes a named value of this session.
func (s *Session) ClearValue(ctx context.Context, name string) error {
	if err := s.store.Clear(ctx, s.key(name)); err != nil {
		return fmt.Errorf("clear session value %q: %w", name, err)
	}
	return nil
}
