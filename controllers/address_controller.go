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

type AddressRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	Pincode      string `json:"pincode" binding:"required"`
	IsDefault    bool   `json:"is_default"`
}

// AddAddress saves a delivery address. The first address, or one flagged
// default, becomes the user's default; only one default may exist.
func AddAddress(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All address fields are required", err.Error())
		return
	}
	if valid, msg := utils.ValidateMobile(req.Phone); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	var count int64
	config.DB.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count)

	address := models.Address{
		UserID:       userID,
		Name:         req.Name,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		IsDefault:    req.IsDefault || count == 0,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&address).Error
	})
	if err != nil {
		utils.LogError("Address create failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to save address", nil)
		return
	}

	utils.Created(c, "Address saved successfully", address)
}

// GetAddresses lists the user's saved addresses, default first.
func GetAddresses(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var addresses []models.Address
	if err := config.DB.Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").Find(&addresses).Error; err != nil {
		utils.LogError("Address list failed for user %d: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch addresses", nil)
		return
	}

	utils.Success(c, "Addresses retrieved successfully", addresses)
}

// UpdateAddress edits a saved address.
func UpdateAddress(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var address models.Address
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Address not found")
			return
		}
		utils.LogError("Address lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All address fields are required", err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault && !address.IsDefault {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Model(&address).Updates(map[string]interface{}{
			"name":          req.Name,
			"phone":         req.Phone,
			"address_line1": req.AddressLine1,
			"address_line2": req.AddressLine2,
			"city":          req.City,
			"state":         req.State,
			"pincode":       req.Pincode,
			"is_default":    req.IsDefault || address.IsDefault,
		}).Error
	})
	if err != nil {
		utils.LogError("Address update failed for %d: %v", address.ID, err)
		utils.InternalServerError(c, "Failed to update address", nil)
		return
	}

	utils.Success(c, "Address updated successfully", address)
}

// DeleteAddress removes a saved address. If the default is removed the
// newest remaining address becomes the default.
func DeleteAddress(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", c.Param("id"), userID).
			First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&address).Error; err != nil {
			return err
		}

		if address.IsDefault {
			var next models.Address
			err := tx.Where("user_id = ?", userID).Order("created_at DESC").First(&next).Error
			if err == nil {
				return tx.Model(&next).Update("is_default", true).Error
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.NotFound(c, "Address not found")
			return
		}
		utils.LogError("Address delete failed: %v", err)
		utils.InternalServerError(c, "Failed to delete address", nil)
		return
	}

	utils.Success(c, "Address deleted successfully", nil)
}
