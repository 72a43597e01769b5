// Package session implements the authentication boundary. There is no
// credential store: any non-empty username and password pair is accepted
// after a fixed simulated delay, and every session maps to the demo user.
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/utgstodio-dev/UTG-Stodio/internal/content"
)

var ErrMissingCredentials = errors.New("session: username and password required")

type Session struct {
	User        content.User `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}

type Manager struct {
	tokens TokenService
	delay  time.Duration
	user   content.User
	log    *zap.Logger
}

func NewManager(secret []byte, tokenTTL, loginDelay time.Duration, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		tokens: TokenService{Secret: secret, TokenTTL: tokenTTL},
		delay:  loginDelay,
		user:   content.DemoUser(),
		log:    log,
	}
}

// Login validates that both credentials are non-empty, waits the simulated
// round-trip delay, then issues an access token for the demo identity.
// Nothing is checked against a user database.
func (m *Manager) Login(ctx context.Context, username, password string) (Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrMissingCredentials
	}

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return Session{}, ctx.Err()
		}
	}

	token, exp, err := m.tokens.NewAccessToken(m.user.ID, time.Now().UTC())
	if err != nil {
		return Session{}, err
	}
	m.log.Info("session started", zap.String("user_id", m.user.ID))
	return Session{User: m.user, AccessToken: token, ExpiresAt: exp}, nil
}

// CurrentUser is the fixed identity behind every authenticated session.
func (m *Manager) CurrentUser() content.User { return m.user }
