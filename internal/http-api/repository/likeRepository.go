package repository

import (
	"fmt"

	"campusforum/internal/http-api/models"

	"gorm.io/gorm"
)

// PostLikeRepository and CommentLikeRepository back the two independent like
// tables. Deletes report whether a row was actually removed so the service can
// distinguish "unliked" from "was never liked".
type PostLikeRepository interface {
	Create(like *models.PostLike) error
	Delete(userID, postID int64) (bool, error)
	Exists(userID, postID int64) (bool, error)
	CountByPost(postID int64) (int64, error)
}

type postLikeRepository struct {
	db *gorm.DB
}

func NewPostLikeRepository(db *gorm.DB) PostLikeRepository {
	return &postLikeRepository{db: db}
}

func (r *postLikeRepository) Create(like *models.PostLike) error {
	if err := r.db.Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create post like: %w", ErrDuplicateKey)
		}
		return err
	}
	return nil
}

func (r *postLikeRepository) Delete(userID, postID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.PostLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *postLikeRepository) Exists(userID, postID int64) (bool, error) {
	var total int64
	err := r.db.Model(&models.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&total).Error
	return total > 0, err
}

func (r *postLikeRepository) CountByPost(postID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&total).Error
	return total, err
}

type CommentLikeRepository interface {
	Create(like *models.CommentLike) error
	Delete(userID, commentID int64) (bool, error)
	Exists(userID, commentID int64) (bool, error)
	CountByComment(commentID int64) (int64, error)
}

type commentLikeRepository struct {
	db *gorm.DB
}

func NewCommentLikeRepository(db *gorm.DB) CommentLikeRepository {
	return &commentLikeRepository{db: db}
}

func (r *commentLikeRepository) Create(like *models.CommentLike) error {
	if err := r.db.Create(like).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create comment like: %w", ErrDuplicateKey)
		}
		return err
	}
	return nil
}

func (r *commentLikeRepository) Delete(userID, commentID int64) (bool, error) {
	result := r.db.Where("user_id = ? AND comment_id = ?", userID, commentID).Delete(&models.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *commentLikeRepository) Exists(userID, commentID int64) (bool, error) {
	var total int64
	err := r.db.Model(&models.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&total).Error
	return total > 0, err
}

func (r *commentLikeRepository) CountByComment(commentID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.CommentLike{}).Where("comment_id = ?", commentID).Count(&total).Error
	return total, err
}
