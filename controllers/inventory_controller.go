package controllers

import (
	"errors"
	"strconv"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// lowStockThreshold is the default stock level treated as running low.
const lowStockThreshold = 10

// StockUpdateRequest represents the stock adjustment request body.
type StockUpdateRequest struct {
	StockQuantity int    `json:"stock_quantity" binding:"required"`
	Action        string `json:"action" binding:"required"`
}

// inventoryItem is the trimmed stock view for the admin panel.
type inventoryItem struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	StockQuantity int               `json:"stock_quantity"`
	Price         float64           `json:"price"`
	DiscountPrice float64           `json:"discount_price"`
	Category      string            `json:"category"`
	Brand         string            `json:"brand"`
	Status        string            `json:"status"`
	ProductImages models.StringList `json:"product_images"`
}

// GetAllInventory lists the stock view of the catalog. Admin only.
func GetAllInventory(c *gin.Context) {
	var items []inventoryItem
	if err := config.DB.Model(&models.Product{}).
		Order("updated_at DESC").
		Find(&items).Error; err != nil {
		utils.LogError("Inventory list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch inventory", nil)
		return
	}

	utils.Success(c, "Inventory retrieved successfully", items)
}

// UpdateStock adjusts a product's stock with a set/add/subtract action.
// Subtraction floors at zero. Admin only.
func UpdateStock(c *gin.Context) {
	var req StockUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Stock quantity and action are required", err.Error())
		return
	}

	var expr interface{}
	switch req.Action {
	case "set":
		expr = req.StockQuantity
	case "add":
		expr = gorm.Expr("stock_quantity + ?", req.StockQuantity)
	case "subtract":
		expr = gorm.Expr("GREATEST(0, stock_quantity - ?)", req.StockQuantity)
	default:
		utils.BadRequest(c, "Action must be set, add or subtract", nil)
		return
	}

	result := config.DB.Model(&models.Product{}).
		Where("id = ?", c.Param("id")).
		Update("stock_quantity", expr)
	if result.Error != nil {
		utils.LogError("Stock update failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to update stock", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not found")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Stock readback failed: %v", err)
		}
		utils.Success(c, "Stock updated successfully", nil)
		return
	}

	utils.LogInfo("Stock for product %d now %d", product.ID, product.StockQuantity)
	utils.Success(c, "Stock updated successfully", gin.H{
		"id":             product.ID,
		"stock_quantity": product.StockQuantity,
	})
}

// GetLowStock lists products at or below a stock threshold. Admin only.
func GetLowStock(c *gin.Context) {
	threshold, err := strconv.Atoi(c.DefaultQuery("threshold", strconv.Itoa(lowStockThreshold)))
	if err != nil || threshold < 0 {
		threshold = lowStockThreshold
	}

	var items []inventoryItem
	if err := config.DB.Model(&models.Product{}).
		Where("stock_quantity <= ? AND status = ?", threshold, models.ProductStatusActive).
		Order("stock_quantity ASC").
		Find(&items).Error; err != nil {
		utils.LogError("Low stock query failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch low stock products", nil)
		return
	}

	utils.Success(c, "Low stock products retrieved successfully", gin.H{
		"threshold": threshold,
		"products":  items,
	})
}

// GetInventoryStats summarizes the active catalog: counts by stock
// condition and the total value of stock on hand. Admin only.
func GetInventoryStats(c *gin.Context) {
	active := func() *gorm.DB {
		return config.DB.Model(&models.Product{}).Where("status = ?", models.ProductStatusActive)
	}

	var totalProducts, lowStock, outOfStock int64
	active().Count(&totalProducts)
	active().Where("stock_quantity <= ?", lowStockThreshold).Count(&lowStock)
	active().Where("stock_quantity = 0").Count(&outOfStock)

	var totals struct{ Value float64 }
	if err := active().
		Select("COALESCE(SUM(stock_quantity * price), 0) AS value").
		Take(&totals).Error; err != nil {
		utils.LogError("Inventory stats query failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch inventory stats", nil)
		return
	}

	utils.Success(c, "Inventory stats retrieved successfully", gin.H{
		"total_products":        totalProducts,
		"low_stock_products":    lowStock,
		"out_of_stock_products": outOfStock,
		"total_inventory_value": totals.Value,
	})
}
