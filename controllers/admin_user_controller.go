package controllers

import (
	"os"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
)

// UpdateRoleRequest represents the role update request body
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// GetAllUsers lists all users, newest first. Admin only.
func GetAllUsers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.LogError("User count failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	var users []models.User
	if err := config.DB.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&users).Error; err != nil {
		utils.LogError("User list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	profiles := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].PublicProfile())
	}

	utils.SuccessWithPagination(c, "Users retrieved successfully", profiles, total, pagination.Page, pagination.Limit)
}

// UpdateUserRole changes a user's role. Admin only; the target's existing
// tokens keep their old role until they expire.
func UpdateUserRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Role is required", err.Error())
		return
	}

	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		utils.BadRequest(c, `Invalid role. Must be "user" or "admin"`, nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Model(&user).Update("role", req.Role).Error; err != nil {
		utils.LogError("Role update failed for user %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update role", nil)
		return
	}

	utils.LogInfo("User %d role changed to %s", user.ID, req.Role)
	utils.Success(c, "User role updated successfully", gin.H{
		"user": gin.H{"id": user.ID, "role": req.Role},
	})
}

// EnsureAdminUser seeds a verified admin account on first boot so the
// admin panel is reachable. Credentials come from ADMIN_EMAIL and
// ADMIN_PASSWORD; nothing is seeded when they are unset.
func EnsureAdminUser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		FullName:   "Administrator",
		Email:      email,
		Mobile:     os.Getenv("ADMIN_MOBILE"),
		Password:   hashed,
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded admin account %s", email)
	return nil
}

// GetDashboardStats returns headline counts for the admin dashboard.
func GetDashboardStats(c *gin.Context) {
	var userCount, productCount, orderCount, couponCount int64

	if err := config.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		utils.LogError("Dashboard user count failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch dashboard stats", nil)
		return
	}
	config.DB.Model(&models.Product{}).Count(&productCount)
	config.DB.Model(&models.Order{}).Count(&orderCount)
	config.DB.Model(&models.Coupon{}).Count(&couponCount)

	var revenue float64
	config.DB.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").Scan(&revenue)

	utils.Success(c, "Dashboard stats retrieved successfully", gin.H{
		"total_users":    userCount,
		"total_products": productCount,
		"total_orders":   orderCount,
		"total_coupons":  couponCount,
		"total_revenue":  revenue,
	})
}
