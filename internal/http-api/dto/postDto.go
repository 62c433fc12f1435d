package dto

import (
	"time"

	"campusforum/internal/http-api/models"
)

// CreatePostRequest for submitting a new post
type CreatePostRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	ContentMarkdown string `json:"content_markdown" binding:"required"`
	CategoryID      int64  `json:"category_id" binding:"required"`
}

// UpdatePostRequest for the admin post edit
type UpdatePostRequest struct {
	Title           string `json:"title" binding:"required,max=200"`
	ContentMarkdown string `json:"content_markdown" binding:"required"`
	CategoryID      int64  `json:"category_id" binding:"required"`
}

// RejectPostRequest carries the optional free-text rejection reason
type RejectPostRequest struct {
	Reason string `json:"reason"`
}

// PostListItem for list views - excerpt instead of full content
type PostListItem struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	ContentExcerpt string    `json:"content_excerpt"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	CategoryID     int64     `json:"category_id"`
	CategoryName   string    `json:"category_name"`
	Status         string    `json:"status"`
	Views          int64     `json:"views"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromModelToPostListItem(post *models.Post) *PostListItem {
	return &PostListItem{
		ID:             post.ID,
		Title:          post.Title,
		ContentExcerpt: post.ContentExcerpt,
		AuthorID:       post.AuthorID,
		AuthorUsername: post.Author.Username,
		CategoryID:     post.CategoryID,
		CategoryName:   post.Category.Name,
		Status:         post.Status,
		Views:          post.Views,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
}

// PostResponse for the detail view - full markdown content
type PostResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ContentMarkdown string    `json:"content_markdown"`
	ContentExcerpt  string    `json:"content_excerpt"`
	AuthorID        int64     `json:"author_id"`
	AuthorUsername  string    `json:"author_username"`
	CategoryID      int64     `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	Status          string    `json:"status"`
	Views           int64     `json:"views"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromModelToPostResponse(post *models.Post) *PostResponse {
	return &PostResponse{
		ID:              post.ID,
		Title:           post.Title,
		ContentMarkdown: post.ContentMarkdown,
		ContentExcerpt:  post.ContentExcerpt,
		AuthorID:        post.AuthorID,
		AuthorUsername:  post.Author.Username,
		CategoryID:      post.CategoryID,
		CategoryName:    post.Category.Name,
		Status:          post.Status,
		Views:           post.Views,
		CreatedAt:       post.CreatedAt,
		UpdatedAt:       post.UpdatedAt,
	}
}

// PaginatedPostResponse for returning one page of posts
type PaginatedPostResponse struct {
	Items    []PostListItem `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}
