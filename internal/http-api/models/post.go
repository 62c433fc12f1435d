package models

import "time"

// Moderation states a post can be in. A post is created pending and moves to
// approved or rejected by admin action only; there is no way back to pending.
const (
	PostStatusPending  = "pending"
	PostStatusApproved = "approved"
	PostStatusRejected = "rejected"
)

type Post struct {
	ID              int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title           string    `json:"title" gorm:"size:200;not null"`
	ContentMarkdown string    `json:"content_markdown" gorm:"column:content_markdown;type:text;not null"`
	ContentExcerpt  string    `json:"content_excerpt" gorm:"column:content_excerpt;size:310"`
	AuthorID        int64     `json:"author_id" gorm:"not null;index"`
	CategoryID      int64     `json:"category_id" gorm:"not null;index"`
	Status          string    `json:"status" gorm:"size:20;default:'pending';not null"`
	Views           int64     `json:"views" gorm:"default:0;not null"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Author   User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Category Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Post) TableName() string {
	return "posts"
}
