package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// Order statuses.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ShippingAddress is the address snapshot frozen into an order.
type ShippingAddress struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// Value implements driver.Valuer.
func (a ShippingAddress) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *ShippingAddress) Scan(value interface{}) error {
	if value == nil {
		*a = ShippingAddress{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("cannot scan %T into ShippingAddress", value)
	}
}

// Order represents a placed order with its frozen totals.
type Order struct {
	gorm.Model
	OrderNumber     string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            User            `gorm:"foreignKey:UserID" json:"-"`
	Address         ShippingAddress `gorm:"type:jsonb" json:"address"`
	PaymentMethod   string          `gorm:"not null" json:"payment_method"`
	Subtotal        float64         `gorm:"not null" json:"subtotal"`
	GST             float64         `gorm:"default:0" json:"gst"`
	DeliveryCharges float64         `gorm:"default:0" json:"delivery_charges"`
	Discount        float64         `gorm:"default:0" json:"discount"`
	CouponCode      string          `json:"coupon_code"`
	Total           float64         `gorm:"not null" json:"total"`
	Status          string          `gorm:"type:varchar(20);default:'pending'" json:"status"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is one product line within an order, priced at purchase time.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	VariantID string  `json:"variant_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// Address is a saved delivery address on a user's profile.
type Address struct {
	gorm.Model
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Name         string `gorm:"not null" json:"name"`
	Phone        string `gorm:"not null" json:"phone"`
	AddressLine1 string `gorm:"not null" json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `gorm:"not null" json:"city"`
	State        string `gorm:"not null" json:"state"`
	Pincode      string `gorm:"not null" json:"pincode"`
	IsDefault    bool   `gorm:"default:false" json:"is_default"`
}
