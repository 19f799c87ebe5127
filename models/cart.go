package models

import "gorm.io/gorm"

// Cart is one product line in a user's cart. A user holds at most one row
// per (product, variant) pair; adding again bumps the quantity.
type Cart struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index;uniqueIndex:idx_cart_user_product_variant" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product_variant" json:"product_id"`
	VariantID string  `gorm:"uniqueIndex:idx_cart_user_product_variant" json:"variant_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// Wishlist is a saved product for later. Duplicate saves are ignored.
type Wishlist struct {
	gorm.Model
	UserID    uint    `gorm:"not null;index;uniqueIndex:idx_wishlist_user_product_variant" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_wishlist_user_product_variant" json:"product_id"`
	VariantID string  `gorm:"uniqueIndex:idx_wishlist_user_product_variant" json:"variant_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
