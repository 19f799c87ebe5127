package controllers

import (
	"errors"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AddToWishlist saves a product for the authenticated user. Saving the
// same (product, variant) twice is a no-op.
func AddToWishlist(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		ProductID uint   `json:"product_id" binding:"required"`
		VariantID string `json:"variant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Product ID is required", err.Error())
		return
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Wishlist product lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to add to wishlist", nil)
		return
	}

	var existing models.Wishlist
	err := config.DB.Where("user_id = ? AND product_id = ? AND variant_id = ?",
		userID, req.ProductID, req.VariantID).First(&existing).Error
	if err == nil {
		utils.Success(c, "Item already in wishlist", existing)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.LogError("Wishlist lookup failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to add to wishlist", nil)
		return
	}

	item := models.Wishlist{
		UserID:    userID,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		utils.LogError("Wishlist insert failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to add to wishlist", nil)
		return
	}

	utils.Created(c, "Item added to wishlist", item)
}

// GetWishlist lists the user's saved products.
func GetWishlist(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var items []models.Wishlist
	if err := config.DB.Preload("Product").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		utils.LogError("Wishlist fetch failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch wishlist", nil)
		return
	}

	utils.Success(c, "Wishlist retrieved successfully", gin.H{
		"items": items,
		"count": len(items),
	})
}

// RemoveFromWishlist deletes a saved product.
func RemoveFromWishlist(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	result := config.DB.Where("user_id = ?", userID).Delete(&models.Wishlist{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Wishlist delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to remove item", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Wishlist item not found")
		return
	}

	utils.Success(c, "Item removed from wishlist", nil)
}
