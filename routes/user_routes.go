package routes

import (
	"github.com/AbhiDwived/VMR-Solution-Backend/controllers"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/gin-gonic/gin"
)

// initUserRoutes initializes all public and user-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Auth
	router.POST("/auth/register", controllers.RegisterUser)
	router.POST("/auth/login", controllers.LoginUser)
	router.POST("/auth/verify-otp", controllers.VerifyOTP)
	router.POST("/auth/resend-otp", controllers.ResendOTP)
	router.POST("/auth/send-login-otp", controllers.SendLoginOTP)
	router.POST("/auth/verify-login-otp", controllers.VerifyLoginOTP)
	router.POST("/auth/forgot-password", controllers.ForgotPassword)
	router.POST("/auth/reset-password", controllers.ResetPassword)
	router.GET("/auth/google/login", controllers.GoogleLogin)
	router.GET("/auth/google/callback", controllers.GoogleCallback)

	// Catalog
	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductByID)
	router.GET("/products/slug/:slug", controllers.GetProductBySlug)
	router.GET("/categories", controllers.GetCategories)
	router.GET("/brands", controllers.GetBrands)

	// Coupons
	router.POST("/coupons/validate", controllers.ValidateCoupon)
	router.POST("/coupons/apply", controllers.ApplyCoupon)

	// Blog
	router.GET("/blogs", controllers.GetBlogs)
	router.GET("/blogs/:slug", controllers.GetBlogBySlug)

	// Contact, bulk enquiries and newsletter
	router.POST("/contact", controllers.SubmitContactForm)
	router.POST("/bulk-orders", controllers.SubmitBulkOrder)
	router.POST("/subscribe", controllers.Subscribe)
	router.POST("/unsubscribe", controllers.Unsubscribe)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", controllers.GetProfile)

		// Cart operations
		protected.POST("/cart", controllers.AddToCart)
		protected.GET("/cart", controllers.GetCart)
		protected.PUT("/cart/:id", controllers.UpdateCartItem)
		protected.DELETE("/cart/:id", controllers.RemoveFromCart)
		protected.DELETE("/cart", controllers.ClearCart)

		// Wishlist operations
		protected.POST("/wishlist", controllers.AddToWishlist)
		protected.GET("/wishlist", controllers.GetWishlist)
		protected.DELETE("/wishlist/:id", controllers.RemoveFromWishlist)

		// Addresses
		protected.POST("/addresses", controllers.AddAddress)
		protected.GET("/addresses", controllers.GetAddresses)
		protected.PUT("/addresses/:id", controllers.UpdateAddress)
		protected.DELETE("/addresses/:id", controllers.DeleteAddress)

		// Orders
		protected.POST("/orders", controllers.CreateOrder)
		protected.GET("/orders", controllers.GetUserOrders)
		protected.GET("/orders/:id", controllers.GetOrderByID)
		protected.POST("/orders/:id/cancel", controllers.CancelOrder)
		protected.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}
