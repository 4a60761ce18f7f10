package dto

import (
	"finance-view/internal/models"
)

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Subcategories []string `json:"subcategories" validate:"omitempty,dive,required,max=100"`
}

// CategoryListResponse lists the categories with their subcategories
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}
