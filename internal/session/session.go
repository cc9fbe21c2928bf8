package session

import (
	"sync"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"go.uber.org/zap"
)

// Persistence is the durable storage port for the bearer token. Injectable
// so tests can substitute an in-memory double.
type Persistence interface {
	// Load returns the persisted token, or "" when none is stored
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Store holds the authenticated session: an opaque bearer token plus the
// user profile. The token is never validated locally; a stale token is only
// discovered when the upstream rejects a later request. The profile is only
// meaningful while a token is present.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User

	persistence Persistence
}

// NewStore creates a session store, restoring any token persisted by a
// previous run. The profile is not persisted; it is refetched on demand.
func NewStore(p Persistence) *Store {
	s := &Store{persistence: p}

	token, err := p.Load()
	if err != nil {
		// Start unauthenticated rather than failing startup
		logger.Warn("Failed to load persisted session token", zap.Error(err))
		return s
	}
	if token != "" {
		s.token = token
		logger.Info("Restored persisted session token")
	}
	return s
}

// SetCredentials installs a fresh session after a successful login and
// persists the token.
func (s *Store) SetCredentials(token string, user *models.User) error {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()

	if err := s.persistence.Save(token); err != nil {
		logger.Error("Failed to persist session token", zap.Error(err))
		return err
	}
	return nil
}

// SetUser attaches a profile to an existing token-only session. Used when a
// token survived a restart but the profile was never fetched.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Logout clears the session and the persisted token.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.persistence.Clear(); err != nil {
		logger.Error("Failed to clear persisted session token", zap.Error(err))
	}
}

// Token returns the current bearer token, "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the profile, nil when not yet fetched.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a token is present. That presence check
// is the entire guard predicate; there is no expiry or validity check.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}
