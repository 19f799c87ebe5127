package utils

import (
	"errors"
	"testing"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }

func percentageCoupon(value float64) *models.Coupon {
	return &models.Coupon{
		Code:  "SAVE10",
		Type:  models.CouponTypePercentage,
		Value: value,
	}
}

func TestComputeDiscountPercentage(t *testing.T) {
	discount, err := ComputeDiscount(percentageCoupon(10), 1000)
	require.NoError(t, err)
	assert.Equal(t, 100.0, discount)
}

func TestComputeDiscountPercentageClampedToMaximum(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.MaximumDiscount = floatPtr(50)

	discount, err := ComputeDiscount(coupon, 1000)
	require.NoError(t, err)
	assert.Equal(t, 50.0, discount)
}

func TestComputeDiscountPercentageBelowMaximumNotClamped(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.MaximumDiscount = floatPtr(500)

	discount, err := ComputeDiscount(coupon, 1000)
	require.NoError(t, err)
	assert.Equal(t, 100.0, discount)
}

func TestComputeDiscountFixedPassesValueThrough(t *testing.T) {
	coupon := &models.Coupon{Type: models.CouponTypeFixed, Value: 200}

	discount, err := ComputeDiscount(coupon, 150)
	require.NoError(t, err)
	assert.Equal(t, 200.0, discount, "fixed discounts are not clamped to the cart total here")
}

func TestComputeDiscountFreeShipping(t *testing.T) {
	coupon := &models.Coupon{Type: models.CouponTypeFreeShipping, Value: 49}

	discount, err := ComputeDiscount(coupon, 1000)
	require.NoError(t, err)
	assert.Equal(t, 49.0, discount)
}

func TestComputeDiscountBuyXGetYUnsupported(t *testing.T) {
	coupon := &models.Coupon{Type: models.CouponTypeBuyXGetY, Value: 1}

	_, err := ComputeDiscount(coupon, 1000)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestComputeDiscountUnknownTypeUnsupported(t *testing.T) {
	coupon := &models.Coupon{Type: "mystery", Value: 1}

	_, err := ComputeDiscount(coupon, 1000)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestEvaluateCouponBelowMinimum(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.MinimumAmount = 500

	_, err := EvaluateCoupon(coupon, 499.99, nil)

	var belowMin *BelowMinimumError
	require.ErrorAs(t, err, &belowMin)
	assert.Equal(t, 500.0, belowMin.MinimumAmount)
	assert.Contains(t, belowMin.Error(), "500.00")
}

func TestEvaluateCouponAtMinimumSucceeds(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.MinimumAmount = 500

	discount, err := EvaluateCoupon(coupon, 500, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, discount)
}

func TestEvaluateCouponGlobalLimitExhausted(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UsageLimit = intPtr(100)
	coupon.UsedCount = 100

	_, err := EvaluateCoupon(coupon, 1000, nil)
	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestEvaluateCouponGlobalLimitOneRemaining(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UsageLimit = intPtr(100)
	coupon.UsedCount = 99

	discount, err := EvaluateCoupon(coupon, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, 100.0, discount)
}

func TestEvaluateCouponNilLimitIsUnlimited(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UsedCount = 1 << 20

	_, err := EvaluateCoupon(coupon, 1000, nil)
	assert.NoError(t, err)
}

func TestEvaluateCouponUserLimitReached(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UserLimit = 1

	_, err := EvaluateCoupon(coupon, 1000, int64Ptr(1))
	assert.ErrorIs(t, err, ErrAlreadyUsed)
}

func TestEvaluateCouponUserLimitNotReached(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UserLimit = 2

	discount, err := EvaluateCoupon(coupon, 1000, int64Ptr(1))
	require.NoError(t, err)
	assert.Equal(t, 100.0, discount)
}

func TestEvaluateCouponAnonymousSkipsUserLimit(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UserLimit = 1

	_, err := EvaluateCoupon(coupon, 1000, nil)
	assert.NoError(t, err)
}

func TestEvaluateCouponLimitCheckedBeforeMinimum(t *testing.T) {
	coupon := percentageCoupon(10)
	coupon.UsageLimit = intPtr(1)
	coupon.UsedCount = 1
	coupon.MinimumAmount = 500

	_, err := EvaluateCoupon(coupon, 100, nil)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.False(t, errors.As(err, new(*BelowMinimumError)))
}
