package controllers

import (
	"errors"

	"github.com/AbhiDwived/VMR-Solution-Backend/config"
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/AbhiDwived/VMR-Solution-Backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyCouponRequest represents the request body for recording a redemption.
type ApplyCouponRequest struct {
	CouponID       uint    `json:"coupon_id" binding:"required"`
	UserID         *uint   `json:"user_id"`
	OrderID        *string `json:"order_id"`
	DiscountAmount float64 `json:"discount_amount"`
}

// redeemCoupon records one redemption inside the caller's transaction:
// insert a usage row and bump the coupon's used_count. Callers validate
// first; redeem only re-checks the caps that could race. The coupon row
// is locked so concurrent redemptions cannot both slip past a cap, and
// the increment is conditional on the global limit so the affected-row
// count is the success signal.
func redeemCoupon(tx *gorm.DB, couponID uint, userID *uint, orderID *string, discount float64) error {
	var coupon models.Coupon
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&coupon, couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrNotFound
		}
		return err
	}

	if userID != nil && coupon.UserLimit > 0 {
		var count int64
		if err := tx.Model(&models.CouponUsage{}).
			Where("coupon_id = ? AND user_id = ?", coupon.ID, *userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(coupon.UserLimit) {
			return utils.ErrAlreadyUsed
		}
	}

	usage := models.CouponUsage{
		CouponID:       coupon.ID,
		UserID:         userID,
		OrderID:        orderID,
		DiscountAmount: discount,
	}
	if err := tx.Create(&usage).Error; err != nil {
		return err
	}

	result := tx.Model(&models.Coupon{}).
		Where("id = ? AND (usage_limit IS NULL OR used_count < usage_limit)", coupon.ID).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return utils.ErrLimitExceeded
	}

	return nil
}

// ApplyCoupon records one redemption on its own transaction.
func ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Coupon ID is required", err.Error())
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return redeemCoupon(tx, req.CouponID, req.UserID, req.OrderID, req.DiscountAmount)
	})

	if err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			utils.NotFound(c, "Coupon not found")
		case errors.Is(err, utils.ErrAlreadyUsed):
			utils.BadRequest(c, "You have already used this coupon", nil)
		case errors.Is(err, utils.ErrLimitExceeded):
			utils.BadRequest(c, "Coupon usage limit exceeded", nil)
		default:
			utils.LogError("Coupon apply failed for %d: %v", req.CouponID, err)
			utils.InternalServerError(c, "Failed to apply coupon", nil)
		}
		return
	}

	utils.LogInfo("Coupon %d applied", req.CouponID)
	utils.Success(c, "Coupon applied successfully", nil)
}
