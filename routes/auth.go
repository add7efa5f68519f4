package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.Auth, d.Log))
		authGroup.POST("/signup", auth.SignupHandler(d.Auth, d.Users, d.Log))
		authGroup.POST("/logout", auth.LogoutHandler(d.Auth))
		authGroup.GET("/me", auth.MeHandler(d.Auth))
	}
}
