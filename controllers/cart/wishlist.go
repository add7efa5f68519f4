package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hassandev/storefront-api/middleware"
	"github.com/hassandev/storefront-api/models"
	"github.com/hassandev/storefront-api/repository"
)

type WishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /wishlist
func GetWishlist(wishlists *repository.WishlistRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)
		items := wishlists.Get(email)
		if items == nil {
			items = []models.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
	}
}

// POST /wishlist
func AddToWishlist(wishlists *repository.WishlistRepo, products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := products.Find(input.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		err := wishlists.Add(email, product)
		if errors.Is(err, repository.ErrAlreadyInWishlist) {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is already in your wishlist"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
	}
}

// DELETE /wishlist/:product_id
func RemoveFromWishlist(wishlists *repository.WishlistRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)

		if err := wishlists.Remove(email, c.Param("product_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
	}
}

// POST /wishlist/:product_id/move-to-cart
//
// Moves the stored snapshot into the cart with quantity 1 and drops it from
// the wishlist.
func MoveToCart(wishlists *repository.WishlistRepo, carts *repository.CartRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := middleware.SessionEmail(c)
		productID := c.Param("product_id")

		snapshot, ok := wishlists.Find(email, productID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product is not in your wishlist"})
			return
		}

		if err := carts.Add(email, snapshot, 1); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		if err := wishlists.Remove(email, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Moved to cart"})
	}
}
