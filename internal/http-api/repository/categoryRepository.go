package repository

import (
	"fmt"

	"campusforum/internal/http-api/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(categoryID int64) error
	GetByID(categoryID int64) (*models.Category, error)
	List() ([]models.Category, error)
	CountPosts(categoryID int64) (int64, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create category: %w", ErrDuplicateKey)
		}
		return err
	}
	return nil
}

func (r *categoryRepository) Update(category *models.Category) error {
	if err := r.db.Save(category).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update category: %w", ErrDuplicateKey)
		}
		return err
	}
	return nil
}

func (r *categoryRepository) Delete(categoryID int64) error {
	return r.db.Delete(&models.Category{}, categoryID).Error
}

func (r *categoryRepository) GetByID(categoryID int64) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", categoryID).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories in display order.
func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("sort_order").Find(&categories).Error
	return categories, err
}

// CountPosts counts the posts referencing a category. A category with posts
// must not be deleted.
func (r *categoryRepository) CountPosts(categoryID int64) (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Where("category_id = ?", categoryID).Count(&total).Error
	return total, err
}
