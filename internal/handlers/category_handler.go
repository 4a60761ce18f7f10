package handlers

import (
	"net/http"

	"finance-view/internal/dto"
	"finance-view/internal/errors"
	"finance-view/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns every category with its subcategories
// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{
		Categories: categories,
		Total:      len(categories),
	})
}

// CreateCategory creates a category
// @Summary Create a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request"
// @Failure 409 {object} errors.ErrorResponse "CATEGORY_002 - Category already exists"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}
