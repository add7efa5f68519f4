package auth

import (
	"testing"

	"github.com/hassandev/storefront-api/config"
	"github.com/hassandev/storefront-api/repository"
	"github.com/hassandev/storefront-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *repository.UserRepo) {
	t.Helper()
	s := store.NewMemoryStore()
	users := repository.NewUserRepo(s)
	m := NewManager(repository.NewSessionRepo(s), users, config.Config{
		AdminEmail:    "hassan@admin.panel",
		AdminPassword: "1234567890",
	})
	return m, users
}

func TestAuthenticateAdmin(t *testing.T) {
	m, _ := newTestManager(t)

	session, err := m.Authenticate("hassan@admin.panel", "1234567890")
	require.NoError(t, err)
	assert.Equal(t, "admin", session.ID)
	assert.Equal(t, "Admin", session.Username)
	assert.True(t, m.IsAdmin())
}

func TestAuthenticateAdminWrongPassword(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Authenticate("hassan@admin.panel", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, m.Current())
}

func TestAuthenticateMissingFields(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Authenticate("   ", "1234567890")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = m.Authenticate("hassan@admin.panel", "  ")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAuthenticateUser(t *testing.T) {
	m, users := newTestManager(t)

	created, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	session, err := m.Authenticate("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.ID)
	assert.Equal(t, "alice", session.Username)
	assert.False(t, session.LoginTime.IsZero())
	assert.False(t, m.IsAdmin())
}

func TestAuthenticateUserBadPassword(t *testing.T) {
	m, users := newTestManager(t)

	_, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = m.Authenticate("alice@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEvictsPriorSession(t *testing.T) {
	m, users := newTestManager(t)

	_, err := users.Create("alice", "alice@example.com", "secret")
	require.NoError(t, err)
	_, err = users.Create("bob", "bob@example.com", "hunter2")
	require.NoError(t, err)

	_, err = m.Authenticate("alice@example.com", "secret")
	require.NoError(t, err)
	_, err = m.Authenticate("bob@example.com", "hunter2")
	require.NoError(t, err)

	current := m.Current()
	require.NotNil(t, current)
	assert.Equal(t, "bob@example.com", current.Email)
}

func TestLogout(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Authenticate("hassan@admin.panel", "1234567890")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Nil(t, m.Current())
	assert.False(t, m.IsAdmin())
}
