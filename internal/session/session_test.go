package session_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/dishflow/dishflow-web/internal/models"
	"github.com/dishflow/dishflow-web/internal/session"
	"github.com/dishflow/dishflow-web/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Level:       "error",
		Environment: "test",
	})
}

// memoryPersistence is an in-memory test double for the persistence port.
type memoryPersistence struct {
	token   string
	loadErr error
}

func (m *memoryPersistence) Load() (string, error) { return m.token, m.loadErr }
func (m *memoryPersistence) Save(token string) error {
	m.token = token
	return nil
}
func (m *memoryPersistence) Clear() error {
	m.token = ""
	return nil
}

func TestStore_LoginLogout(t *testing.T) {
	p := &memoryPersistence{}
	store := session.NewStore(p)

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())

	user := &models.User{ID: 1, Username: "emilys"}
	require.NoError(t, store.SetCredentials("opaque-token", user))

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "opaque-token", store.Token())
	assert.Equal(t, "emilys", store.User().Username)
	assert.Equal(t, "opaque-token", p.token, "token persisted on login")

	store.Logout()
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, p.token, "persisted token cleared on logout")
}

func TestStore_RestoresPersistedToken(t *testing.T) {
	p := &memoryPersistence{token: "token-from-last-visit"}
	store := session.NewStore(p)

	// Token restored, but the profile is unknown until fetched
	assert.True(t, store.IsAuthenticated())
	assert.Nil(t, store.User())

	store.SetUser(&models.User{Username: "emilys"})
	assert.Equal(t, "emilys", store.User().Username)
}

func TestStore_LoadFailureStartsUnauthenticated(t *testing.T) {
	p := &memoryPersistence{loadErr: errors.New("disk gone")}
	store := session.NewStore(p)

	assert.False(t, store.IsAuthenticated())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	fs := session.NewFileStore(path)

	// Absent file means no session, not an error
	token, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, fs.Save("opaque-token"))
	token, err = fs.Load()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	require.NoError(t, fs.Clear())
	token, err = fs.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing twice is fine
	require.NoError(t, fs.Clear())
}

func TestStore_SurvivesRestartViaFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	first := session.NewStore(session.NewFileStore(path))
	require.NoError(t, first.SetCredentials("opaque-token", &models.User{Username: "emilys"}))

	// A new store over the same file sees the token but no profile
	second := session.NewStore(session.NewFileStore(path))
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, "opaque-token", second.Token())
	assert.Nil(t, second.User())
}
