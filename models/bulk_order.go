package models

import "gorm.io/gorm"

// Bulk order enquiry statuses.
const (
	BulkOrderStatusPending    = "pending"
	BulkOrderStatusProcessing = "processing"
	BulkOrderStatusCompleted  = "completed"
	BulkOrderStatusRejected   = "rejected"
)

// BulkOrder is a wholesale enquiry submitted from the public site. It
// is a lead, not an order: no cart, items or payment are attached.
type BulkOrder struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	Message     string `json:"message"`
	ProductName string `gorm:"not null" json:"product_name"`
	Status      string `gorm:"type:varchar(15);default:'pending'" json:"status"`
}
