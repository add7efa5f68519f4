package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hassandev/storefront-api/controllers/cart"
	userControllers "github.com/hassandev/storefront-api/controllers/user"
	"github.com/hassandev/storefront-api/middleware"
)

// SetupUserRoutes registers the session-gated storefront endpoints: cart,
// wishlist and profile.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	gate := middleware.RequireSession(d.Auth)

	cartGroup := r.Group("/cart", gate)
	{
		cartGroup.GET("", cartControllers.GetCart(d.Carts))
		cartGroup.POST("", cartControllers.AddToCart(d.Carts, d.Products))
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartQuantity(d.Carts))
		cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(d.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(d.Carts))
	}

	wishlistGroup := r.Group("/wishlist", gate)
	{
		wishlistGroup.GET("", cartControllers.GetWishlist(d.Wishlists))
		wishlistGroup.POST("", cartControllers.AddToWishlist(d.Wishlists, d.Products))
		wishlistGroup.DELETE("/:product_id", cartControllers.RemoveFromWishlist(d.Wishlists))
		wishlistGroup.POST("/:product_id/move-to-cart", cartControllers.MoveToCart(d.Wishlists, d.Carts))
	}

	profileGroup := r.Group("/profile", gate)
	{
		profileGroup.GET("", userControllers.GetProfile(d.Users))
		profileGroup.PUT("", userControllers.UpdateProfile(d.Users, d.Auth))
		profileGroup.PUT("/password", userControllers.ChangePassword(d.Users))
	}
}
