package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/hassandev/storefront-api/controllers/admin"
	orderControllers "github.com/hassandev/storefront-api/controllers/order"
	productcontroller "github.com/hassandev/storefront-api/controllers/product"
	userControllers "github.com/hassandev/storefront-api/controllers/user"
	"github.com/hassandev/storefront-api/middleware"
)

// SetupAdminRoutes registers the "/admin/*" back-office endpoints. Every
// route is gated on the configured admin identity.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(d.Auth))
	{
		adminGroup.GET("/dashboard", adminController.GetDashboard(d.Products, d.Users, d.Orders, d.Messages))
		adminGroup.GET("/messages", adminController.GetContactMessages(d.Messages))
		adminGroup.GET("/users", userControllers.GetAllUsers(d.Users))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(d.Users, d.Log))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Products, d.Log))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Products, d.Log))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Products, d.Log))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(d.Products))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Products))
		}

		adminGroup.DELETE("/categories/:name", productcontroller.DeleteCategory(d.Products, d.Log))

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(d.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(d.Orders, d.OrderHub, d.Log))
		}
	}
}
