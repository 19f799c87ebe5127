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

type CartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// variantUnitPrice resolves the price of the chosen variant, falling back
// to the product price when the variant is unknown.
func variantUnitPrice(product *models.Product, variantID string) float64 {
	if variantID != "" {
		for i := range product.Variants {
			if product.Variants[i].VariantID == variantID {
				return product.Variants[i].Price
			}
		}
	}
	return product.Price
}

// AddToCart inserts or bumps a cart line for the authenticated user.
func AddToCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Product ID is required", err.Error())
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Cart product lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to add to cart", nil)
		return
	}

	var item models.Cart
	err := config.DB.Where("user_id = ? AND product_id = ? AND variant_id = ?",
		userID, req.ProductID, req.VariantID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += req.Quantity
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Cart update failed for user %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to add to cart", nil)
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.Cart{
			UserID:    userID,
			ProductID: req.ProductID,
			VariantID: req.VariantID,
			Quantity:  req.Quantity,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			utils.LogError("Cart insert failed for user %d: %v", userID, err)
			utils.InternalServerError(c, "Failed to add to cart", nil)
			return
		}
	default:
		utils.LogError("Cart lookup failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to add to cart", nil)
		return
	}

	utils.Success(c, "Item added to cart", item)
}

// GetCart returns the user's cart lines with product details and totals.
func GetCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var items []models.Cart
	if err := config.DB.Preload("Product").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&items).Error; err != nil {
		utils.LogError("Cart fetch failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	var subtotal float64
	lines := make([]gin.H, 0, len(items))
	for i := range items {
		unit := variantUnitPrice(&items[i].Product, items[i].VariantID)
		lineTotal := unit * float64(items[i].Quantity)
		subtotal += lineTotal
		lines = append(lines, gin.H{
			"item":       items[i],
			"unit_price": unit,
			"line_total": lineTotal,
		})
	}

	utils.Success(c, "Cart retrieved successfully", gin.H{
		"items":    lines,
		"subtotal": subtotal,
		"count":    len(items),
	})
}

// UpdateCartItem sets the quantity of a cart line. Quantity zero removes it.
func UpdateCartItem(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Quantity < 0 {
		utils.BadRequest(c, "Quantity cannot be negative", nil)
		return
	}

	var item models.Cart
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Cart item not found")
			return
		}
		utils.LogError("Cart item lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	if req.Quantity == 0 {
		if err := config.DB.Delete(&item).Error; err != nil {
			utils.LogError("Cart item delete failed: %v", err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
		utils.Success(c, "Item removed from cart", nil)
		return
	}

	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Cart item update failed: %v", err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.Success(c, "Cart updated successfully", item)
}

// RemoveFromCart deletes a single cart line.
func RemoveFromCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	result := config.DB.Where("user_id = ?", userID).Delete(&models.Cart{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Cart item delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to remove item", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Cart item not found")
		return
	}

	utils.Success(c, "Item removed from cart", nil)
}

// ClearCart empties the user's cart.
func ClearCart(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	if err := config.DB.Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
		utils.LogError("Cart clear failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to clear cart", nil)
		return
	}

	utils.Success(c, "Cart cleared", nil)
}
