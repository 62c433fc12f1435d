package dto

// CreateCategoryRequest for creating a category (admin)
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Slug  string `json:"slug" binding:"required,max=80"`
	Order int    `json:"order"`
}

// UpdateCategoryRequest for renaming or reordering a category (admin)
type UpdateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=80"`
	Slug  string `json:"slug" binding:"required,max=80"`
	Order int    `json:"order"`
}
