package service

import (
	"testing"

	"campusforum/internal/http-api/models"
	"campusforum/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Category")).Return(repository.ErrDuplicateKey)

	_, err := svc.Create("General", "general", 1)

	assert.ErrorIs(t, err, ErrCategoryExists)
}

func TestDeleteCategory_StillHasPosts(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("GetByID", int64(1)).Return(&models.Category{ID: 1}, nil)
	mockRepo.On("CountPosts", int64(1)).Return(int64(4), nil)

	err := svc.Delete(1)

	assert.ErrorIs(t, err, ErrCategoryInUse)
	mockRepo.AssertNotCalled(t, "Delete", int64(1))
}

func TestDeleteCategory_Empty(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	svc := NewCategoryService(mockRepo)

	mockRepo.On("GetByID", int64(1)).Return(&models.Category{ID: 1}, nil)
	mockRepo.On("CountPosts", int64(1)).Return(int64(0), nil)
	mockRepo.On("Delete", int64(1)).Return(nil)

	err := svc.Delete(1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
