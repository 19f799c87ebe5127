package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponCurrentStatus(t *testing.T) {
	now := time.Now()
	coupon := Coupon{
		Status:    CouponStatusActive,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
	}

	assert.Equal(t, CouponStatusActive, coupon.CurrentStatus(now))

	coupon.Status = CouponStatusInactive
	assert.Equal(t, CouponStatusInactive, coupon.CurrentStatus(now))
}

func TestCouponCurrentStatusPastEndDateReadsExpired(t *testing.T) {
	now := time.Now()
	coupon := Coupon{
		Status:    CouponStatusActive,
		StartDate: now.Add(-48 * time.Hour),
		EndDate:   now.Add(-time.Hour),
	}

	assert.Equal(t, CouponStatusExpired, coupon.CurrentStatus(now))

	// The persisted status is untouched; expiry is derived at read time.
	assert.Equal(t, CouponStatusActive, coupon.Status)
}

func TestIDListScanRoundTrip(t *testing.T) {
	var list IDList
	assert.NoError(t, list.Scan([]byte(`[3,7,11]`)))
	assert.Equal(t, IDList{3, 7, 11}, list)

	assert.NoError(t, list.Scan(nil))
	assert.Nil(t, list)
}
