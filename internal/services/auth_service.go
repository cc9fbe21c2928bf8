package services

import (
	"context"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/session"
	apperrors "github.com/dishflow/dishflow-web/pkg/errors"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"go.uber.org/zap"
)

// AuthService drives the session lifecycle: login against the upstream,
// logout, and lazily attaching the profile to a restored token.
type AuthService struct {
	gateway  AuthGateway
	sessions *session.Store
}

// NewAuthService creates an AuthService over the gateway and session store.
func NewAuthService(gateway AuthGateway, sessions *session.Store) *AuthService {
	return &AuthService{
		gateway:  gateway,
		sessions: sessions,
	}
}

// Login exchanges credentials upstream and installs the session.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, apperrors.InvalidInputError("credentials", "username and password are required")
	}

	result, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	user := result.User
	if err := s.sessions.SetCredentials(result.Token, &user); err != nil {
		// The session is live in memory; only persistence failed
		logger.Warn("Session will not survive a restart", zap.Error(err))
	}

	logger.Info("User logged in", zap.String("username", user.Username))
	return &user, nil
}

// Logout destroys the session and its persisted token.
func (s *AuthService) Logout() {
	s.sessions.Logout()
	logger.Info("User logged out")
}

// EnsureUser returns the session profile, fetching it from the upstream
// when a persisted token survived a restart without one. An upstream
// rejection surfaces as a generic error; the user is deliberately not
// logged out on it.
func (s *AuthService) EnsureUser(ctx context.Context) (*models.User, error) {
	if user := s.sessions.User(); user != nil {
		return user, nil
	}

	token := s.sessions.Token()
	if token == "" {
		return nil, apperrors.UnauthorizedError("no active session")
	}

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	s.sessions.SetUser(user)
	return user, nil
}

// IsAuthenticated reports token presence, the whole guard predicate.
func (s *AuthService) IsAuthenticated() bool {
	return s.sessions.IsAuthenticated()
}
