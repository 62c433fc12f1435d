package models

import "time"

// PostLike and CommentLike are one-row-per-like join tables. The composite
// unique index is the backstop for concurrent duplicate toggles: two requests
// may both pass the existence check, but only one insert can commit.
type PostLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_post_likes_user_post"`
	PostID    int64     `json:"post_id" gorm:"not null;uniqueIndex:idx_post_likes_user_post"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (PostLike) TableName() string {
	return "post_likes"
}

type CommentLike struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"not null;uniqueIndex:idx_comment_likes_user_comment"`
	CommentID int64     `json:"comment_id" gorm:"not null;uniqueIndex:idx_comment_likes_user_comment"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
