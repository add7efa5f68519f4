package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/auth"
	"github.com/hassandev/storefront-api/config"
	orderControllers "github.com/hassandev/storefront-api/controllers/order"
	"github.com/hassandev/storefront-api/repository"
	"go.uber.org/zap"
)

// Deps bundles everything the route groups need.
type Deps struct {
	Config    config.Config
	Log       *zap.SugaredLogger
	Auth      *auth.Manager
	Users     *repository.UserRepo
	Products  *repository.ProductRepo
	Carts     *repository.CartRepo
	Wishlists *repository.WishlistRepo
	Orders    *repository.OrderRepo
	Messages  *repository.ContactRepo
	OrderHub  *orderControllers.Hub
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	// Public routes (no session required)
	SetupAuthRoutes(r, d)
	SetupCatalogRoutes(r, d)

	// Session-gated storefront routes
	SetupUserRoutes(r, d)
	SetupOrderRoutes(r, d)

	// Admin back-office
	SetupAdminRoutes(r, d)
}
