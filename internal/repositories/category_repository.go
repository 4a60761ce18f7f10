package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finance-view/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// categoryRepository implements CategoryRepository interface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a category together with its subcategories
func (r *categoryRepository) Create(category *models.Category) error {
	var count int64
	if err := r.db.Model(&models.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(category.Name))).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if count > 0 {
		return ErrCategoryExists
	}

	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByName retrieves a category and its subcategories by name
func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// List returns every category with its subcategories, ordered by name
func (r *categoryRepository) List() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Preload("Subcategories", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
