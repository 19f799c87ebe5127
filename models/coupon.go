package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Coupon discount types.
const (
	CouponTypePercentage   = "percentage"
	CouponTypeFixed        = "fixed"
	CouponTypeFreeShipping = "free_shipping"
	CouponTypeBuyXGetY     = "buy_x_get_y"
)

// Coupon persisted statuses. "expired" is derived at read time from
// EndDate and never written back.
const (
	CouponStatusActive   = "active"
	CouponStatusInactive = "inactive"
	CouponStatusExpired  = "expired"
)

// Coupon applicability scopes.
const (
	CouponScopeAll        = "all"
	CouponScopeCategories = "categories"
	CouponScopeProducts   = "products"
	CouponScopeBrands     = "brands"
)

// IDList stores a set of target ids as a JSON column.
type IDList []int64

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into IDList", value)
	}
}

// Coupon is a discount rule bounded by a validity window and usage caps.
type Coupon struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Code            string         `gorm:"uniqueIndex;not null" json:"code"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `json:"description"`
	Type            string         `gorm:"type:varchar(20);not null" json:"type"`
	Value           float64        `gorm:"not null" json:"value"`
	MinimumAmount   float64        `gorm:"default:0" json:"minimum_amount"`
	MaximumDiscount *float64       `json:"maximum_discount"`
	UsageLimit      *int           `json:"usage_limit"`
	UsedCount       int            `gorm:"default:0" json:"used_count"`
	UserLimit       int            `gorm:"default:1" json:"user_limit"`
	ApplicableTo    string         `gorm:"type:varchar(20);default:'all'" json:"applicable_to"`
	ApplicableIDs   IDList         `gorm:"type:jsonb" json:"applicable_ids"`
	StartDate       time.Time      `gorm:"not null" json:"start_date"`
	EndDate         time.Time      `gorm:"not null" json:"end_date"`
	Status          string         `gorm:"type:varchar(10);default:'active'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Usages []CouponUsage `gorm:"foreignKey:CouponID;constraint:OnDelete:CASCADE" json:"-"`
}

// CurrentStatus reports the status as seen by clients: a coupon past its
// end date reads as expired regardless of the persisted status.
func (c *Coupon) CurrentStatus(now time.Time) string {
	if now.After(c.EndDate) {
		return CouponStatusExpired
	}
	return c.Status
}

// CouponUsage records a single redemption. Rows are written exactly once
// and never mutated; the user reference is nulled if the user is removed.
type CouponUsage struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CouponID       uint      `gorm:"not null;index" json:"coupon_id"`
	UserID         *uint     `gorm:"index" json:"user_id"`
	OrderID        *string   `gorm:"type:varchar(100)" json:"order_id"`
	DiscountAmount float64   `gorm:"not null" json:"discount_amount"`
	UsedAt         time.Time `gorm:"autoCreateTime" json:"used_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
