package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/sportsday/internal/config"
)

const issuer = "sportsday"

// Manager maps the session cookie to a Session.
type Manager struct {
	cfg    config.SessionConfig
	store  Storage
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewManager creates a session manager.
func NewManager(cfg config.SessionConfig, store Storage, logger *zap.SugaredLogger) *Manager {
	return &Manager{cfg: cfg, store: store, logger: logger, now: time.Now}
}

// Load returns the session of the request. A missing, expired or tampered
// cookie starts a new session and sets a fresh cookie.
func (m *Manager) Load(c *gin.Context) *Session {
	if raw, err := c.Cookie(m.cfg.CookieName); err == nil && raw != "" {
		id, err := m.parse(raw)
		if err == nil {
			return New(id, m.store)
		}
		m.logger.Debugw("discarding session cookie", "error", err)
	}

	id := uuid.NewString()
	token, err := m.sign(id)
	if err != nil {
		// The session still works for this request; it just won't survive it.
		m.logger.Errorw("failed to sign session cookie", "error", err)
		return New(id, m.store)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.MaxAge.Seconds()), "/", "", m.cfg.Secure, true)
	return New(id, m.store)
}

func (m *Manager) sign(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.MaxAge)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
}

func (m *Manager) parse(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("parse session cookie: %w", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("invalid session id: %w", err)
	}
	return claims.Subject, nil
}
