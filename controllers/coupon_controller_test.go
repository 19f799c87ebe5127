package controllers

import (
	"testing"
	"time"

	"github.com/AbhiDwived/VMR-Solution-Backend/models"
	"github.com/stretchr/testify/assert"
)

func validCouponRequest() CouponRequest {
	now := time.Now()
	return CouponRequest{
		Code:      "save10",
		Name:      "Ten percent off",
		Type:      models.CouponTypePercentage,
		Value:     10,
		StartDate: now,
		EndDate:   now.Add(24 * time.Hour),
	}
}

func TestCouponRequestValidateNormalizesCode(t *testing.T) {
	req := validCouponRequest()

	ok, _ := req.validate()
	assert.True(t, ok)
	assert.Equal(t, "SAVE10", req.Code)
}

func TestCouponRequestValidateRejectsBadType(t *testing.T) {
	req := validCouponRequest()
	req.Type = "loyalty_points"

	ok, msg := req.validate()
	assert.False(t, ok)
	assert.Equal(t, "Invalid coupon type", msg)
}

func TestCouponRequestValidateRejectsNonPositiveValue(t *testing.T) {
	req := validCouponRequest()
	req.Value = 0

	ok, _ := req.validate()
	assert.False(t, ok)
}

func TestCouponRequestValidateRejectsInvertedWindow(t *testing.T) {
	req := validCouponRequest()
	req.EndDate = req.StartDate.Add(-time.Hour)

	ok, msg := req.validate()
	assert.False(t, ok)
	assert.Equal(t, "End date must not be before start date", msg)
}

func TestCouponRequestValidateRejectsUnknownScope(t *testing.T) {
	req := validCouponRequest()
	req.ApplicableTo = "warehouses"

	ok, _ := req.validate()
	assert.False(t, ok)
}

func TestCouponRequestValidateAcceptsKnownScopes(t *testing.T) {
	for _, scope := range []string{
		models.CouponScopeAll,
		models.CouponScopeCategories,
		models.CouponScopeProducts,
		models.CouponScopeBrands,
	} {
		req := validCouponRequest()
		req.ApplicableTo = scope

		ok, _ := req.validate()
		assert.True(t, ok, scope)
	}
}
