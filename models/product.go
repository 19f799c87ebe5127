package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Product statuses.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
	ProductStatusDraft    = "draft"
)

// Product listing types.
const (
	ProductTypeOwn       = "own"
	ProductTypeAffiliate = "affiliate"
)

// StringList stores a list of strings as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
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
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// VariantColor describes the color a variant was generated for.
type VariantColor struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Variant is one sellable color/size combination of a product.
type Variant struct {
	VariantID string       `json:"variant_id"`
	SKU       string       `json:"sku"`
	Color     VariantColor `json:"color"`
	Size      string       `json:"size"`
	Price     float64      `json:"price"`
	Stock     int          `json:"stock"`
	Images    []string     `json:"images"`
}

// VariantList stores product variants as a JSON column.
type VariantList []Variant

// Value implements driver.Valuer.
func (l VariantList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *VariantList) Scan(value interface{}) error {
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
		return fmt.Errorf("cannot scan %T into VariantList", value)
	}
}

// DeliveryCharge maps a region to its delivery fee.
type DeliveryCharge struct {
	Region string  `json:"region"`
	Charge float64 `json:"charge"`
}

// DeliveryChargeList stores per-region delivery charges as a JSON column.
type DeliveryChargeList []DeliveryCharge

// Value implements driver.Valuer.
func (l DeliveryChargeList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *DeliveryChargeList) Scan(value interface{}) error {
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
		return fmt.Errorf("cannot scan %T into DeliveryChargeList", value)
	}
}

// Product represents a catalog item.
type Product struct {
	ID                    uint               `gorm:"primaryKey" json:"id"`
	Name                  string             `gorm:"not null" json:"name"`
	Slug                  string             `gorm:"uniqueIndex;not null" json:"slug"`
	Description           string             `gorm:"not null" json:"description"`
	LongDescription       string             `json:"long_description"`
	Materials             string             `json:"materials"`
	CareInstructions      string             `json:"care_instructions"`
	Specifications        StringList         `gorm:"type:jsonb" json:"specifications"`
	AdditionalInfo        string             `json:"additional_info"`
	Weight                float64            `gorm:"default:0" json:"weight"`
	Warranty              string             `json:"warranty"`
	Price                 float64            `gorm:"not null" json:"price"`
	DiscountPrice         float64            `gorm:"not null" json:"discount_price"`
	StockQuantity         int                `gorm:"not null" json:"stock_quantity"`
	Category              string             `gorm:"not null;index" json:"category"`
	Brand                 string             `gorm:"index" json:"brand"`
	VideoURL              string             `json:"video_url"`
	Type                  string             `gorm:"type:varchar(10);default:'own'" json:"type"`
	AffiliateLink         string             `json:"affiliate_link"`
	ProductImages         StringList         `gorm:"type:jsonb" json:"product_images"`
	Tags                  StringList         `gorm:"type:jsonb" json:"tags"`
	Colors                StringList         `gorm:"type:jsonb" json:"colors"`
	Sizes                 StringList         `gorm:"type:jsonb" json:"sizes"`
	Features              StringList         `gorm:"type:jsonb" json:"features"`
	Variants              VariantList        `gorm:"type:jsonb" json:"variants"`
	DeliveryCharges       DeliveryChargeList `gorm:"type:jsonb" json:"delivery_charges"`
	DefaultDeliveryCharge float64            `gorm:"default:0" json:"default_delivery_charge"`
	IsFeatured            bool               `gorm:"default:false" json:"is_featured"`
	IsNewArrival          bool               `gorm:"default:false" json:"is_new_arrival"`
	Status                string             `gorm:"type:varchar(10);default:'active'" json:"status"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
	DeletedAt             gorm.DeletedAt     `gorm:"index" json:"-"`
}

// Brand represents a product brand.
type Brand struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

// Category represents a product category.
type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
