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

// BrandRequest represents the create/update request body for a brand.
type BrandRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
}

// GetBrands lists brands with their product counts.
func GetBrands(c *gin.Context) {
	var brands []models.Brand
	if err := config.DB.Where("is_active = ?", true).Order("name ASC").Find(&brands).Error; err != nil {
		utils.LogError("Brand list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch brands", nil)
		return
	}

	list := make([]gin.H, 0, len(brands))
	for i := range brands {
		var count int64
		config.DB.Model(&models.Product{}).Where("brand = ?", brands[i].Name).Count(&count)
		list = append(list, gin.H{
			"brand":         brands[i],
			"product_count": count,
		})
	}

	utils.Success(c, "Brands retrieved successfully", list)
}

// CreateBrand adds a brand. Admin only.
func CreateBrand(c *gin.Context) {
	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Brand name is required", err.Error())
		return
	}

	brand := models.Brand{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Logo:        req.Logo,
		IsActive:    true,
	}
	if err := config.DB.Create(&brand).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "Brand already exists", nil)
			return
		}
		utils.LogError("Brand create failed: %v", err)
		utils.InternalServerError(c, "Failed to create brand", nil)
		return
	}

	utils.Created(c, "Brand created successfully", brand)
}

// UpdateBrand edits a brand. Admin only.
func UpdateBrand(c *gin.Context) {
	var brand models.Brand
	if err := config.DB.First(&brand, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Brand not found")
			return
		}
		utils.LogError("Brand fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to update brand", nil)
		return
	}

	var req BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := config.DB.Model(&brand).Updates(map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"logo":        req.Logo,
	}).Error; err != nil {
		utils.LogError("Brand update failed for %d: %v", brand.ID, err)
		utils.InternalServerError(c, "Failed to update brand", nil)
		return
	}

	utils.Success(c, "Brand updated successfully", brand)
}

// DeleteBrand removes a brand. Admin only.
func DeleteBrand(c *gin.Context) {
	result := config.DB.Delete(&models.Brand{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Brand delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete brand", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Brand not found")
		return
	}

	utils.Success(c, "Brand deleted successfully", nil)
}
