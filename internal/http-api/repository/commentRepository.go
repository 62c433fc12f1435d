package repository

import (
	"campusforum/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	Delete(commentID int64) error
	GetByID(commentID int64) (*models.Comment, error)
	ListByPost(postID int64) ([]models.Comment, error)
	CountByPost(postID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) Delete(commentID int64) error {
	return r.db.Delete(&models.Comment{}, commentID).Error
}

// GetByID retrieves a comment with its author preloaded.
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).
		Preload("Author").
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByPost retrieves all comments for a post, newest first.
func (r *commentRepository) ListByPost(postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) CountByPost(postID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&total).Error
	return total, err
}
