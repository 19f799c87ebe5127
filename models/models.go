package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Role checks everywhere compare against this fixed set.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator.
// OTP and OTPExpiry are both set while a challenge is pending and both
// cleared when it is consumed.
type User struct {
	gorm.Model
	FullName   string     `gorm:"not null" json:"full_name"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Mobile     string     `gorm:"uniqueIndex;not null" json:"mobile"`
	Password   string     `gorm:"not null" json:"-"`
	Role       string     `gorm:"type:varchar(10);default:'user'" json:"role"`
	IsVerified bool       `gorm:"default:false" json:"is_verified"`
	OTP        *string    `gorm:"type:varchar(6)" json:"-"`
	OTPExpiry  *time.Time `json:"-"`
}

// PublicProfile returns the fields safe to send to clients.
func (u *User) PublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":          u.ID,
		"full_name":   u.FullName,
		"email":       u.Email,
		"mobile":      u.Mobile,
		"role":        u.Role,
		"is_verified": u.IsVerified,
		"created_at":  u.CreatedAt,
	}
}
