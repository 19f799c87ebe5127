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

// CategoryRequest represents the create/update request body for a category.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// GetCategories lists categories with their product counts.
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Where("is_active = ?", true).Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Category list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", nil)
		return
	}

	list := make([]gin.H, 0, len(categories))
	for i := range categories {
		var count int64
		config.DB.Model(&models.Product{}).Where("category = ?", categories[i].Name).Count(&count)
		list = append(list, gin.H{
			"category":      categories[i],
			"product_count": count,
		})
	}

	utils.Success(c, "Categories retrieved successfully", list)
}

// CreateCategory adds a category. Admin only.
func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Category name is required", err.Error())
		return
	}

	category := models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "Category already exists", nil)
			return
		}
		utils.LogError("Category create failed: %v", err)
		utils.InternalServerError(c, "Failed to create category", nil)
		return
	}

	utils.Created(c, "Category created successfully", category)
}

// UpdateCategory edits a category. Admin only.
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Category fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if err := config.DB.Model(&category).Updates(map[string]interface{}{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"image":       req.Image,
	}).Error; err != nil {
		utils.LogError("Category update failed for %d: %v", category.ID, err)
		utils.InternalServerError(c, "Failed to update category", nil)
		return
	}

	utils.Success(c, "Category updated successfully", category)
}

// DeleteCategory removes a category. Admin only.
func DeleteCategory(c *gin.Context) {
	result := config.DB.Delete(&models.Category{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Category delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete category", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Category not found")
		return
	}

	utils.Success(c, "Category deleted successfully", nil)
}
