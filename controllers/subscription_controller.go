package controllers

import (
	"errors"
	"strings"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Subscribe signs an email up for the newsletter. Re-subscribing a
// previously unsubscribed address reactivates it.
func Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email is required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if valid, msg := utils.ValidateEmail(email); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	var existing models.Subscription
	err := config.DB.Where("email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Status == "active" {
			utils.Conflict(c, "Email is already subscribed", nil)
			return
		}
		if err := config.DB.Model(&existing).Update("status", "active").Error; err != nil {
			utils.LogError("Subscription reactivation failed for %s: %v", email, err)
			utils.InternalServerError(c, "Failed to subscribe", nil)
			return
		}
		utils.Success(c, "Subscribed successfully", nil)
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := models.Subscription{Email: email, Status: "active"}
		if err := config.DB.Create(&sub).Error; err != nil {
			utils.LogError("Subscription create failed for %s: %v", email, err)
			utils.InternalServerError(c, "Failed to subscribe", nil)
			return
		}
		utils.Created(c, "Subscribed successfully", nil)
	default:
		utils.LogError("Subscription lookup failed for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to subscribe", nil)
	}
}

// Unsubscribe deactivates a newsletter signup.
func Unsubscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email is required", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	result := config.DB.Model(&models.Subscription{}).
		Where("email = ?", email).
		Update("status", "inactive")
	if result.Error != nil {
		utils.LogError("Unsubscribe failed for %s: %v", email, result.Error)
		utils.InternalServerError(c, "Failed to unsubscribe", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Subscription not found")
		return
	}

	utils.Success(c, "Unsubscribed successfully", nil)
}

// GetSubscriptions lists newsletter signups. Admin only.
func GetSubscriptions(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Subscription{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var subs []models.Subscription
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&subs).Error; err != nil {
		utils.LogError("Subscription list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch subscriptions", nil)
		return
	}

	utils.SuccessWithPagination(c, "Subscriptions retrieved successfully", subs, total, pagination.Page, pagination.Limit)
}

// DeleteSubscription removes a signup outright, unlike Unsubscribe
// which only deactivates it. Admin only.
func DeleteSubscription(c *gin.Context) {
	result := config.DB.Delete(&models.Subscription{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Subscription delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete subscription", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Subscription not found")
		return
	}

	utils.Success(c, "Subscription deleted successfully", nil)
}
