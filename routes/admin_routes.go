package routes

import (
	"github.com/AbhiDwived/VMR-Solution-Backend/controllers"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/gin-gonic/gin"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// Dashboard and user management
		admin.GET("/dashboard", controllers.GetDashboardStats)
		admin.GET("/users", controllers.GetAllUsers)
		admin.PATCH("/users/:id/role", controllers.UpdateUserRole)

		// Product management
		admin.POST("/products", controllers.AddProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)

		// Inventory
		admin.GET("/inventory", controllers.GetAllInventory)
		admin.PATCH("/inventory/:id/stock", controllers.UpdateStock)
		admin.GET("/inventory/low-stock", controllers.GetLowStock)
		admin.GET("/inventory/stats", controllers.GetInventoryStats)

		// Category management
		admin.POST("/categories", controllers.CreateCategory)
		admin.PUT("/categories/:id", controllers.UpdateCategory)
		admin.DELETE("/categories/:id", controllers.DeleteCategory)

		// Brand management
		admin.POST("/brands", controllers.CreateBrand)
		admin.PUT("/brands/:id", controllers.UpdateBrand)
		admin.DELETE("/brands/:id", controllers.DeleteBrand)

		// Coupon management
		admin.POST("/coupons", controllers.CreateCoupon)
		admin.GET("/coupons", controllers.GetAllCoupons)
		admin.GET("/coupons/stats", controllers.GetCouponStats)
		admin.GET("/coupons/report", controllers.ExportCouponReport)
		admin.GET("/coupons/:id", controllers.GetCouponByID)
		admin.PUT("/coupons/:id", controllers.UpdateCoupon)
		admin.DELETE("/coupons/:id", controllers.DeleteCoupon)

		// Order management
		admin.GET("/orders", controllers.GetAllOrders)
		admin.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
		admin.GET("/bulk-orders", controllers.GetBulkOrders)
		admin.PATCH("/bulk-orders/:id/status", controllers.UpdateBulkOrderStatus)

		// Blog management
		admin.GET("/blogs", controllers.GetAllBlogs)
		admin.POST("/blogs", controllers.CreateBlog)
		admin.PUT("/blogs/:id", controllers.UpdateBlog)
		admin.DELETE("/blogs/:id", controllers.DeleteBlog)

		// Contact messages and subscriptions
		admin.GET("/contact-messages", controllers.GetContactMessages)
		admin.PATCH("/contact-messages/:id/resolve", controllers.ResolveContactMessage)
		admin.DELETE("/contact-messages/:id", controllers.DeleteContactMessage)
		admin.GET("/subscriptions", controllers.GetSubscriptions)
		admin.DELETE("/subscriptions/:id", controllers.DeleteSubscription)
	}
}
