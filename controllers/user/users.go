package userControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

type UpdateProfileInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// publicUser strips the password from a record before it leaves the API.
type publicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toPublic(u models.User) publicUser {
	return publicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// GET /profile
func GetProfile(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		user, ok := users.FindByEmail(email)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, toPublic(user))
	}
}

// PUT /profile
//
// Direct field overwrite. Changing the email leaves the old cart_<email> and
// wishlist_<email> keys behind; per-user lists are scoped to the email at the
// time they were written.
func UpdateProfile(users *repository.UserRepo, m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		user, ok := users.FindByEmail(email)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Username != nil && strings.TrimSpace(*input.Username) != "" {
			user.Username = strings.TrimSpace(*input.Username)
		}
		if input.Email != nil && strings.TrimSpace(*input.Email) != "" {
			user.Email = strings.TrimSpace(*input.Email)
		}

		if err := users.Update(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		// Keep the session projection in step with the record.
		if _, err := m.LoginAs(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
			return
		}

		c.JSON(http.StatusOK, toPublic(user))
	}
}

// PUT /profile/password
func ChangePassword(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		user, ok := users.FindByEmail(email)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input ChangePasswordInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if strings.TrimSpace(input.NewPassword) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "new password is required"})
			return
		}
		if user.Password != input.CurrentPassword {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
			return
		}

		user.Password = input.NewPassword
		if err := users.Update(user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
	}
}

// GET /admin/users
func GetAllUsers(users *repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := users.List()
		out := make([]publicUser, 0, len(list))
		for _, u := range list {
			out = append(out, toPublic(u))
		}
		c.JSON(http.StatusOK, out)
	}
}

// DELETE /admin/users/:id
func DeleteUser(users *repository.UserRepo, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if _, ok := users.FindByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err := users.Delete(id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}

		log.Infow("user deleted", "id", id)
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
