package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/login
func LoginHandler(m *Manager, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session, err := m.Authenticate(input.Email, input.Password)
		switch {
		case errors.Is(err, ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case errors.Is(err, ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		log.Infow("user logged in", "email", session.Email)
		c.JSON(http.StatusOK, session)
	}
}

// POST /auth/signup
func SignupHandler(m *Manager, users *repository.UserRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if strings.TrimSpace(input.Username) == "" ||
			strings.TrimSpace(input.Email) == "" ||
			strings.TrimSpace(input.Password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}

		user, err := users.Create(input.Username, input.Email, input.Password)
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		// New accounts are logged in right away.
		session, err := m.LoginAs(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		log.Infow("user signed up", "email", user.Email)
		c.JSON(http.StatusCreated, session)
	}
}

// POST /auth/logout
func LogoutHandler(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.Logout(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// GET /auth/me
func MeHandler(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := m.Current()
		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"session": session,
			"isAdmin": m.IsAdmin(),
		})
	}
}
