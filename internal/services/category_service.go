package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"finance-view/internal/dto"
	"finance-view/internal/models"
	"finance-view/internal/repositories"
)

var (
	ErrInvalidCategory        = errors.New("invalid category")
	ErrDuplicateSubcategories = errors.New("subcategory names must be unique within a category")
)

type categoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	invalidator     ViewInvalidator
}

// NewCategoryService creates a new CategoryServiceInterface instance. invalidator
// may be nil.
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	invalidator ViewInvalidator,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		invalidator:     invalidator,
	}
}

// ListCategories returns the categories with their subcategories
func (s *categoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category with optional subcategories
func (s *categoryService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrInvalidCategory
	}

	category := &models.Category{Name: name}
	seen := make(map[string]struct{}, len(req.Subcategories))
	for _, sub := range req.Subcategories {
		sub = strings.TrimSpace(sub)
		if sub == "" {
			return nil, ErrInvalidCategory
		}
		key := strings.ToLower(sub)
		if _, ok := seen[key]; ok {
			return nil, ErrDuplicateSubcategories
		}
		seen[key] = struct{}{}
		category.Subcategories = append(category.Subcategories, models.Subcategory{Name: sub})
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}
	return category, nil
}

// FilterOptions returns the sorted union of managed categories and the
// categories used by transactions, plus every managed subcategory
func (s *categoryService) FilterOptions() ([]string, []string, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list categories: %w", err)
	}

	used, err := s.transactionRepo.GetCategoryNames()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transaction categories: %w", err)
	}

	categoryNames := make(map[string]struct{}, len(categories)+len(used))
	subcategoryNames := make(map[string]struct{})
	for _, category := range categories {
		categoryNames[category.Name] = struct{}{}
		for _, sub := range category.Subcategories {
			subcategoryNames[sub.Name] = struct{}{}
		}
	}
	for _, name := range used {
		categoryNames[name] = struct{}{}
	}

	return sortedKeys(categoryNames), sortedKeys(subcategoryNames), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
