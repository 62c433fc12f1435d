package service

import (
	"errors"

	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCategoryExists = errors.New("category name or slug already in use")
	ErrCategoryInUse  = errors.New("category still has posts")
)

type CategoryService interface {
	List() ([]models.Category, error)
	Create(name, slug string, order int) (*models.Category, error)
	Update(categoryID int64, name, slug string, order int) (*models.Category, error)
	Delete(categoryID int64) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

func (s *categoryService) Create(name, slug string, order int) (*models.Category, error) {
	category := &models.Category{Name: name, Slug: slug, SortOrder: order}
	if err := s.repo.Create(category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(categoryID int64, name, slug string, order int) (*models.Category, error) {
	category, err := s.repo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	category.Name = name
	category.Slug = slug
	category.SortOrder = order

	if err := s.repo.Update(category); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still has posts.
func (s *categoryService) Delete(categoryID int64) error {
	if _, err := s.repo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	total, err := s.repo.CountPosts(categoryID)
	if err != nil {
		return err
	}
	if total > 0 {
		return ErrCategoryInUse
	}

	return s.repo.Delete(categoryID)
}
