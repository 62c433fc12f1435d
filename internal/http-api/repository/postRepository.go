package repository

import (
	"campusforum/internal/http-api/models"

	"gorm.io/gorm"
)

// Sort orders accepted by ListPosts.
const (
	SortLatest = "latest"
	SortHot    = "hot"
)

// ListPostsQuery carries the paging and filter parameters for post listings.
// Page is 1-indexed; CategoryID and Status of zero value mean "no filter".
type ListPostsQuery struct {
	Page       int
	PageSize   int
	CategoryID int64
	Status     string
	Sort       string
}

type PostRepository interface {
	Create(post *models.Post) error
	Update(post *models.Post) error
	Delete(postID int64) error
	GetByID(postID int64) (*models.Post, error)
	List(q ListPostsQuery) ([]models.Post, int64, error)
	ListByStatus(status string) ([]models.Post, error)
	IncrementViews(postID int64) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *postRepository) Delete(postID int64) error {
	return r.db.Delete(&models.Post{}, postID).Error
}

// GetByID retrieves a post with its author and category preloaded.
func (r *postRepository) GetByID(postID int64) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("id = ?", postID).
		Preload("Author").
		Preload("Category").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns one page of posts plus the total count for the filters.
// "hot" orders by descending comment count with post id as the tie breaker so
// the ordering stays deterministic; everything else is newest-first.
func (r *postRepository) List(q ListPostsQuery) ([]models.Post, int64, error) {
	tx := r.db.Model(&models.Post{})
	if q.CategoryID != 0 {
		tx = tx.Where("posts.category_id = ?", q.CategoryID)
	}
	if q.Status != "" {
		tx = tx.Where("posts.status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch q.Sort {
	case SortHot:
		tx = tx.Joins("LEFT JOIN comments ON comments.post_id = posts.id").
			Group("posts.id").
			Order("COUNT(comments.id) DESC, posts.id DESC")
	default: // latest
		tx = tx.Order("posts.created_at DESC")
	}

	var posts []models.Post
	offset := (q.Page - 1) * q.PageSize
	err := tx.Preload("Author").
		Preload("Category").
		Limit(q.PageSize).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListByStatus returns all posts in the given moderation state, newest first.
// Used by the admin review queue.
func (r *postRepository) ListByStatus(status string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("status = ?", status).
		Preload("Author").
		Preload("Category").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) IncrementViews(postID int64) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", postID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
