// Package auth implements the session manager: a single persisted identity
// compared in plaintext against the configured admin pair and the local user
// list. Sessions never expire; they last until logout or a storage wipe.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/hassandev/storefront-api/config"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Manager struct {
	sessions *repository.SessionRepo
	users    *repository.UserRepo

	adminEmail    string
	adminPassword string
}

func NewManager(sessions *repository.SessionRepo, users *repository.UserRepo, cfg config.Config) *Manager {
	return &Manager{
		sessions:      sessions,
		users:         users,
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
	}
}

// Authenticate checks the admin pair first, then linear-scans the user list
// for an exact email+password match. On success the resulting session is
// persisted, evicting whatever session was there before.
func (m *Manager) Authenticate(email, password string) (models.Session, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return models.Session{}, ErrMissingFields
	}

	if email == m.adminEmail && password == m.adminPassword {
		session := models.Session{
			ID:        "admin",
			Username:  "Admin",
			Email:     m.adminEmail,
			LoginTime: time.Now(),
		}
		if err := m.sessions.Put(session); err != nil {
			return models.Session{}, err
		}
		return session, nil
	}

	user, ok := m.users.FindByEmail(email)
	if !ok || user.Password != password {
		return models.Session{}, ErrInvalidCredentials
	}

	session := models.Session{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		LoginTime: time.Now(),
	}
	if err := m.sessions.Put(session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// LoginAs persists a session for an already-verified user. Signup uses this
// for its auto-login.
func (m *Manager) LoginAs(user models.User) (models.Session, error) {
	session := models.Session{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		LoginTime: time.Now(),
	}
	if err := m.sessions.Put(session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// Current returns the stored session, or nil when logged out.
func (m *Manager) Current() *models.Session {
	return m.sessions.Get()
}

func (m *Manager) Logout() error {
	return m.sessions.Clear()
}

// IsAdmin reports whether the current session's email exactly equals the
// configured admin email.
func (m *Manager) IsAdmin() bool {
	session := m.Current()
	return session != nil && session.Email == m.adminEmail
}
