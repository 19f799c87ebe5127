package controllers

import (
	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContactForm stores a contact form entry. Public.
func SubmitContactForm(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Name, email, subject and message are required", err.Error())
		return
	}
	if valid, msg := utils.ValidateEmail(req.Email); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	entry := models.ContactMessage{
		Name:    utils.SanitizeString(req.Name),
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: utils.SanitizeString(req.Subject),
		Message: utils.SanitizeString(req.Message),
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		utils.LogError("Contact message save failed: %v", err)
		utils.InternalServerError(c, "Failed to submit message", nil)
		return
	}

	utils.LogInfo("Contact message received from %s", entry.Email)
	utils.Created(c, "Message submitted successfully", gin.H{"id": entry.ID})
}

// GetContactMessages lists submitted messages, unresolved first. Admin only.
func GetContactMessages(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.ContactMessage{})
	if resolved := c.Query("resolved"); resolved != "" {
		query = query.Where("resolved = ?", resolved == "true")
	}

	var total int64
	query.Count(&total)

	var messages []models.ContactMessage
	if err := query.Order("resolved ASC, created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&messages).Error; err != nil {
		utils.LogError("Contact message list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch messages", nil)
		return
	}

	utils.SuccessWithPagination(c, "Messages retrieved successfully", messages, total, pagination.Page, pagination.Limit)
}

// ResolveContactMessage marks a message as handled. Admin only.
func ResolveContactMessage(c *gin.Context) {
	result := config.DB.Model(&models.ContactMessage{}).
		Where("id = ?", c.Param("id")).
		Update("resolved", true)
	if result.Error != nil {
		utils.LogError("Contact message resolve failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to update message", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Message not found")
		return
	}

	utils.Success(c, "Message marked as resolved", nil)
}

// DeleteContactMessage removes a message. Admin only.
func DeleteContactMessage(c *gin.Context) {
	result := config.DB.Delete(&models.ContactMessage{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Contact message delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete message", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Message not found")
		return
	}

	utils.Success(c, "Message deleted successfully", nil)
}
