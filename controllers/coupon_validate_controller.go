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

// ValidateCouponRequest represents the validation request body.
type ValidateCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cart_total"`
	UserID    *uint   `json:"user_id"`
}

// ValidateCoupon checks a code against the cart context and computes the
// discount. Read-only and side-effect free; safe to call repeatedly.
// Nonexistent, inactive and out-of-window codes all read as not found.
func ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Coupon code is required", err.Error())
		return
	}

	code := utils.NormalizeCouponCode(req.Code)
	now := time.Now()

	var coupon models.Coupon
	err := config.DB.Where("code = ? AND status = ? AND start_date <= ? AND end_date >= ?",
		code, models.CouponStatusActive, now, now).First(&coupon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Invalid or expired coupon code")
			return
		}
		utils.LogError("Coupon lookup failed for %s: %v", code, err)
		utils.InternalServerError(c, "Failed to validate coupon", nil)
		return
	}

	var userUsage *int64
	if req.UserID != nil {
		var count int64
		if err := config.DB.Model(&models.CouponUsage{}).
			Where("coupon_id = ? AND user_id = ?", coupon.ID, *req.UserID).
			Count(&count).Error; err != nil {
			utils.LogError("Coupon usage count failed for %s: %v", code, err)
			utils.InternalServerError(c, "Failed to validate coupon", nil)
			return
		}
		userUsage = &count
	}

	discount, err := utils.EvaluateCoupon(&coupon, req.CartTotal, userUsage)
	if err != nil {
		var belowMin *utils.BelowMinimumError
		switch {
		case errors.Is(err, utils.ErrLimitExceeded):
			utils.BadRequest(c, "Coupon usage limit exceeded", nil)
		case errors.Is(err, utils.ErrAlreadyUsed):
			utils.BadRequest(c, "You have already used this coupon", nil)
		case errors.As(err, &belowMin):
			utils.BadRequest(c, belowMin.Error(), nil)
		case errors.Is(err, utils.ErrUnsupported):
			utils.BadRequest(c, "Coupon type is not supported", nil)
		default:
			utils.LogError("Coupon evaluation failed for %s: %v", code, err)
			utils.InternalServerError(c, "Failed to validate coupon", nil)
		}
		return
	}

	utils.LogInfo("Coupon %s validated, discount %.2f", coupon.Code, discount)
	utils.Success(c, "Coupon is valid", gin.H{
		"coupon_id":       coupon.ID,
		"code":            coupon.Code,
		"type":            coupon.Type,
		"discount_amount": discount,
		"coupon_details":  coupon,
	})
}
