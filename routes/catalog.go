package routes

import (
	"github.com/gin-gonic/gin"
	contactControllers "github.com/hassandev/storefront-api/controllers/contact"
	productcontroller "github.com/hassandev/storefront-api/controllers/product"
)

// SetupCatalogRoutes registers the public browsing endpoints: products,
// categories and the contact form.
func SetupCatalogRoutes(r *gin.Engine, d Deps) {
	r.GET("/products", productcontroller.GetProducts(d.Products))
	r.GET("/products/:id", productcontroller.GetProductByID(d.Products))
	r.GET("/categories", productcontroller.GetCategories(d.Products))
	r.GET("/category-details", productcontroller.GetCategoryDetails(d.Products))

	r.POST("/contact", contactControllers.SubmitMessage(d.Messages))
}
