package utils

import (
	"github.com/AbhiDwived/VMR-Solution-Backend/models"
)

// EvaluateCoupon runs the cap and amount checks for an already looked-up
// coupon and computes the discount. The caller resolves the code against
// active coupons inside the validity window; anything that misses that
// predicate never reaches this function. userUsage is the number of prior
// redemptions by the requesting user, or nil for anonymous validation.
// Evaluation is read-only; nothing is persisted here.
func EvaluateCoupon(coupon *models.Coupon, cartTotal float64, userUsage *int64) (float64, error) {
	if coupon.UsageLimit != nil && coupon.UsedCount >= *coupon.UsageLimit {
		return 0, ErrLimitExceeded
	}

	if userUsage != nil && coupon.UserLimit > 0 && *userUsage >= int64(coupon.UserLimit) {
		return 0, ErrAlreadyUsed
	}

	if cartTotal < coupon.MinimumAmount {
		return 0, &BelowMinimumError{MinimumAmount: coupon.MinimumAmount}
	}

	return ComputeDiscount(coupon, cartTotal)
}

// ComputeDiscount computes the discount amount for a coupon type.
func ComputeDiscount(coupon *models.Coupon, cartTotal float64) (float64, error) {
	switch coupon.Type {
	case models.CouponTypePercentage:
		discount := cartTotal * coupon.Value / 100
		if coupon.MaximumDiscount != nil && discount > *coupon.MaximumDiscount {
			discount = *coupon.MaximumDiscount
		}
		return discount, nil
	case models.CouponTypeFixed:
		// Intentionally not clamped to the cart total; checkout clamps.
		return coupon.Value, nil
	case models.CouponTypeFreeShipping:
		// Value is the shipping amount waived.
		return coupon.Value, nil
	case models.CouponTypeBuyXGetY:
		// No business rules defined for this type yet.
		return 0, ErrUnsupported
	default:
		return 0, ErrUnsupported
	}
}
