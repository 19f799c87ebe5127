package controllers

import (
	"errors"
	"strings"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/middleware"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogRequest struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Status   string `json:"status"`
}

// GetBlogs lists published posts with optional category filter.
func GetBlogs(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Blog{}).Where("status = ?", models.BlogStatusPublished)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	query.Count(&total)

	var blogs []models.Blog
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&blogs).Error; err != nil {
		utils.LogError("Blog list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch blogs", nil)
		return
	}

	utils.SuccessWithPagination(c, "Blogs retrieved successfully", blogs, total, pagination.Page, pagination.Limit)
}

// GetBlogBySlug returns a published post and bumps its view counter.
func GetBlogBySlug(c *gin.Context) {
	var blog models.Blog
	if err := config.DB.Where("slug = ? AND status = ?", c.Param("slug"), models.BlogStatusPublished).
		First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.LogError("Blog fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch blog", nil)
		return
	}

	config.DB.Model(&blog).Update("views", gorm.Expr("views + 1"))
	blog.Views++

	utils.Success(c, "Blog retrieved successfully", blog)
}

// GetAllBlogs lists posts in every status. Admin only.
func GetAllBlogs(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Blog{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var blogs []models.Blog
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&blogs).Error; err != nil {
		utils.LogError("Admin blog list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch blogs", nil)
		return
	}

	utils.SuccessWithPagination(c, "Blogs retrieved successfully", blogs, total, pagination.Page, pagination.Limit)
}

// CreateBlog adds a post. Admin only.
func CreateBlog(c *gin.Context) {
	authorID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.Unauthorized(c, "Authentication required")
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title and content are required", err.Error())
		return
	}

	status := req.Status
	if status != models.BlogStatusPublished {
		status = models.BlogStatusDraft
	}
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	blog := models.Blog{
		Title:    strings.TrimSpace(req.Title),
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Image:    req.Image,
		Status:   status,
		AuthorID: authorID,
	}
	if err := config.DB.Create(&blog).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "A blog with this slug already exists", nil)
			return
		}
		utils.LogError("Blog create failed: %v", err)
		utils.InternalServerError(c, "Failed to create blog", nil)
		return
	}

	utils.Created(c, "Blog created successfully", blog)
}

// UpdateBlog edits a post. Admin only.
func UpdateBlog(c *gin.Context) {
	var blog models.Blog
	if err := config.DB.First(&blog, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Blog not found")
			return
		}
		utils.LogError("Blog lookup failed: %v", err)
		utils.InternalServerError(c, "Failed to update blog", nil)
		return
	}

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Title and content are required", err.Error())
		return
	}

	updates := map[string]interface{}{
		"title":    strings.TrimSpace(req.Title),
		"excerpt":  req.Excerpt,
		"content":  req.Content,
		"category": req.Category,
		"image":    req.Image,
	}
	if req.Slug != "" {
		updates["slug"] = req.Slug
	}
	if req.Status == models.BlogStatusDraft || req.Status == models.BlogStatusPublished {
		updates["status"] = req.Status
	}

	if err := config.DB.Model(&blog).Updates(updates).Error; err != nil {
		utils.LogError("Blog update failed for %d: %v", blog.ID, err)
		utils.InternalServerError(c, "Failed to update blog", nil)
		return
	}

	utils.Success(c, "Blog updated successfully", blog)
}

// DeleteBlog removes a post. Admin only.
func DeleteBlog(c *gin.Context) {
	result := config.DB.Delete(&models.Blog{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Blog delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete blog", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Blog not found")
		return
	}

	utils.Success(c, "Blog deleted successfully", nil)
}
