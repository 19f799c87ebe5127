package controllers

import (
	"errors"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CouponRequest represents the create/update request body for a coupon.
type CouponRequest struct {
	Code            string    `json:"code" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	Type            string    `json:"type" binding:"required"`
	Value           float64   `json:"value" binding:"required"`
	MinimumAmount   float64   `json:"minimum_amount"`
	MaximumDiscount *float64  `json:"maximum_discount"`
	UsageLimit      *int      `json:"usage_limit"`
	UserLimit       *int      `json:"user_limit"`
	ApplicableTo    string    `json:"applicable_to"`
	ApplicableIDs   []int64   `json:"applicable_ids"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	Status          string    `json:"status"`
}

var couponTypes = map[string]bool{
	models.CouponTypePercentage:   true,
	models.CouponTypeFixed:        true,
	models.CouponTypeFreeShipping: true,
	models.CouponTypeBuyXGetY:     true,
}

var couponScopes = map[string]bool{
	models.CouponScopeAll:        true,
	models.CouponScopeCategories: true,
	models.CouponScopeProducts:   true,
	models.CouponScopeBrands:     true,
}

func (r *CouponRequest) validate() (bool, string) {
	r.Code = utils.NormalizeCouponCode(r.Code)
	if valid, msg := utils.ValidateCouponCode(r.Code); !valid {
		return false, msg
	}
	if !couponTypes[r.Type] {
		return false, "Invalid coupon type"
	}
	if r.Value <= 0 {
		return false, "Coupon value must be positive"
	}
	if r.ApplicableTo != "" && !couponScopes[r.ApplicableTo] {
		return false, "Invalid applicable_to scope"
	}
	if r.EndDate.Before(r.StartDate) {
		return false, "End date must not be before start date"
	}
	return true, ""
}

// CreateCoupon creates a new discount rule. Admin only.
func CreateCoupon(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Code, name, type, value, start_date, and end_date are required", err.Error())
		return
	}

	if valid, msg := req.validate(); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	coupon := models.Coupon{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		Type:            req.Type,
		Value:           req.Value,
		MinimumAmount:   req.MinimumAmount,
		MaximumDiscount: req.MaximumDiscount,
		UsageLimit:      req.UsageLimit,
		UserLimit:       1,
		ApplicableTo:    models.CouponScopeAll,
		ApplicableIDs:   req.ApplicableIDs,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          models.CouponStatusActive,
	}
	if req.UserLimit != nil {
		coupon.UserLimit = *req.UserLimit
	}
	if req.ApplicableTo != "" {
		coupon.ApplicableTo = req.ApplicableTo
	}
	if req.Status != "" {
		coupon.Status = req.Status
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "Coupon code already exists", nil)
			return
		}
		utils.LogError("Coupon create failed for %s: %v", req.Code, err)
		utils.InternalServerError(c, "Failed to create coupon", nil)
		return
	}

	utils.LogInfo("Coupon %s created", coupon.Code)
	utils.Created(c, "Coupon created successfully", coupon)
}

// GetAllCoupons lists coupons with optional status/type filters. The
// reported status is derived: past end_date reads as expired.
func GetAllCoupons(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Coupon{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if couponType := c.Query("type"); couponType != "" {
		query = query.Where("type = ?", couponType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Coupon count failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	var coupons []models.Coupon
	if err := query.Order("created_at DESC").
		Limit(pagination.Limit).Offset(pagination.Offset).
		Find(&coupons).Error; err != nil {
		utils.LogError("Coupon list failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupons", nil)
		return
	}

	now := time.Now()
	list := make([]gin.H, 0, len(coupons))
	for i := range coupons {
		list = append(list, gin.H{
			"coupon":         coupons[i],
			"current_status": coupons[i].CurrentStatus(now),
		})
	}

	utils.SuccessWithPagination(c, "Coupons retrieved successfully", list, total, pagination.Page, pagination.Limit)
}

// GetCouponByID returns a single coupon. Admin only.
func GetCouponByID(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Coupon not found")
			return
		}
		utils.LogError("Coupon fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupon", nil)
		return
	}

	utils.Success(c, "Coupon retrieved successfully", coupon)
}

// UpdateCoupon replaces a coupon's rule fields. Admin only.
func UpdateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Coupon not found")
			return
		}
		utils.LogError("Coupon fetch failed: %v", err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if valid, msg := req.validate(); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}

	updates := map[string]interface{}{
		"code":             req.Code,
		"name":             req.Name,
		"description":      req.Description,
		"type":             req.Type,
		"value":            req.Value,
		"minimum_amount":   req.MinimumAmount,
		"maximum_discount": req.MaximumDiscount,
		"usage_limit":      req.UsageLimit,
		"applicable_ids":   models.IDList(req.ApplicableIDs),
		"start_date":       req.StartDate,
		"end_date":         req.EndDate,
	}
	if req.UserLimit != nil {
		updates["user_limit"] = *req.UserLimit
	}
	if req.ApplicableTo != "" {
		updates["applicable_to"] = req.ApplicableTo
	}
	if req.Status == models.CouponStatusActive || req.Status == models.CouponStatusInactive {
		updates["status"] = req.Status
	}

	if err := config.DB.Model(&coupon).Updates(updates).Error; err != nil {
		if utils.IsDuplicateKey(err) {
			utils.Conflict(c, "Coupon code already exists", nil)
			return
		}
		utils.LogError("Coupon update failed for %d: %v", coupon.ID, err)
		utils.InternalServerError(c, "Failed to update coupon", nil)
		return
	}

	var updated models.Coupon
	config.DB.First(&updated, coupon.ID)
	utils.Success(c, "Coupon updated successfully", updated)
}

// DeleteCoupon removes a coupon; its usage rows go with it. Admin only.
func DeleteCoupon(c *gin.Context) {
	result := config.DB.Delete(&models.Coupon{}, c.Param("id"))
	if result.Error != nil {
		utils.LogError("Coupon delete failed: %v", result.Error)
		utils.InternalServerError(c, "Failed to delete coupon", nil)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Coupon not found")
		return
	}

	utils.Success(c, "Coupon deleted successfully", nil)
}

// GetCouponStats returns aggregate redemption figures. Admin only.
func GetCouponStats(c *gin.Context) {
	var totalCoupons, activeCoupons, expiredCoupons, totalUsage int64
	var totalDiscount float64

	if err := config.DB.Model(&models.Coupon{}).Count(&totalCoupons).Error; err != nil {
		utils.LogError("Coupon stats failed: %v", err)
		utils.InternalServerError(c, "Failed to fetch coupon stats", nil)
		return
	}
	config.DB.Model(&models.Coupon{}).Where("status = ?", models.CouponStatusActive).Count(&activeCoupons)
	config.DB.Model(&models.Coupon{}).Where("end_date < ?", time.Now()).Count(&expiredCoupons)
	config.DB.Model(&models.CouponUsage{}).Count(&totalUsage)
	config.DB.Model(&models.CouponUsage{}).Select("COALESCE(SUM(discount_amount), 0)").Scan(&totalDiscount)

	utils.Success(c, "Coupon stats retrieved successfully", gin.H{
		"total_coupons":        totalCoupons,
		"active_coupons":       activeCoupons,
		"expired_coupons":      expiredCoupons,
		"total_usage":          totalUsage,
		"total_discount_given": totalDiscount,
	})
}
