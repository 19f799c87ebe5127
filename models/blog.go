package models

import "gorm.io/gorm"

// Blog post statuses.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// Blog represents a blog post authored by a user.
type Blog struct {
	gorm.Model
	Title    string `gorm:"not null" json:"title"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `gorm:"not null" json:"content"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Status   string `gorm:"type:varchar(10);default:'draft'" json:"status"`
	Views    int    `gorm:"default:0" json:"views"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"-"`
}

// ContactMessage is a submitted contact form entry.
type ContactMessage struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone"`
	Subject  string `gorm:"not null" json:"subject"`
	Message  string `gorm:"not null" json:"message"`
	Resolved bool   `gorm:"default:false" json:"resolved"`
}

// Subscription is a newsletter signup.
type Subscription struct {
	gorm.Model
	Email  string `gorm:"uniqueIndex;not null" json:"email"`
	Status string `gorm:"type:varchar(10);default:'active'" json:"status"`
}
