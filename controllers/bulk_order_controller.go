package controllers

import (
	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
)

// BulkOrderRequest represents a wholesale enquiry body.
type BulkOrderRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Message     string `json:"message"`
	ProductName string `json:"product_name" binding:"required"`
}

// isValidBulkOrderStatus reports whether s is an accepted enquiry status.
func isValidBulkOrderStatus(s string) bool {
	switch s {
	case models.BulkOrderStatusPending,
		models.BulkOrderStatusProcessing,
		models.BulkOrderStatusCompleted,
		models.BulkOrderStatusRejected:
		return true
	}
	return false
}

// SubmitBulkOrder stores a wholesale enquiry. Public.
func SubmitBulkOrder(c *gin.Context) {
	var req BulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Name, email, phone and product name are required", err.Error())
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}
	if valid, msg := utils.ValidateMobile(req.Phone); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	entry := models.BulkOrder{
		Name:        utils.SanitizeString(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     utils.SanitizeString(req.Message),
		ProductName: utils.SanitizeString(req.ProductName),
		Status:      models.BulkOrderStatusPending,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Bulk order save failed: %v", err)
		utils.InternalServerError(c, "Failed to submit bulk order request", nil)
		return
	}

	utils.LogInfo("Bulk order enquiry received from %s for %s", entry.Email, entry.ProductName)
	utils.Created(c, "Bulk order request submitted successfully", entry)
}

// GetBulkOrders lists enquiries, newest first. Admin only.
func GetBulkOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.BulkOrder{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.BulkOrder
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Bulk order list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch bulk orders", nil)
		return
	}

	utils.SuccessWithPagination(c, "Bulk orders retrieved successfully", orders, total, pagination.Page, pagination.Limit)
}

// UpdateBulkOrderStatus moves an enquiry through its lifecycle. Admin only.
func UpdateBulkOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Status is required", err.Error())
		return
	}
	if !isValidBulkOrderStatus(req.Status) {
		utils.BadRequest(c, "Status must be pending, processing, completed or rejected", nil)
		return
	}

	result := config.DB.Model(&models.BulkOrder{}).
		Where("id = ?", c.Param("id")).
		Update("status", req.Status)
	if result.Error != nil {
		utils.LogError("Bulk order status update failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to update status", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Bulk order not found")
		return
	}

	utils.Success(c, "Status updated successfully", nil)
}
