package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default spending categories seeded on first start
const (
	CategoryGroceries      = "Groceries"
	CategoryDining         = "Dining"
	CategoryTransportation = "Transportation"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryBillsUtilities = "Bills & Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryTravel         = "Travel"
	CategoryIncome         = "Income"
	CategoryFees           = "Fees"
	CategoryUncategorized  = "Uncategorized"
)

var ErrInvalidCategoryName = errors.New("category name is required")

// Category is a user-managed spending category with optional subcategories
type Category struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key" json:"id"`
	Name          string        `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}

// Subcategory belongs to exactly one category
type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrInvalidCategoryName
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return nil
}

// BeforeCreate hook for Subcategory
func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return ErrInvalidCategoryName
	}

	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// TableName returns the table name for Subcategory
func (s *Subcategory) TableName() string {
	return "subcategories"
}

// SubcategoryNames returns the names of the category's subcategories
func (c *Category) SubcategoryNames() []string {
	names := make([]string, 0, len(c.Subcategories))
	for _, sub := range c.Subcategories {
		names = append(names, sub.Name)
	}
	return names
}

// DefaultCategories returns the categories seeded into an empty database
func DefaultCategories() []string {
	return []string{
		CategoryGroceries,
		CategoryDining,
		CategoryTransportation,
		CategoryEntertainment,
		CategoryShopping,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryTravel,
		CategoryIncome,
		CategoryFees,
		CategoryUncategorized,
	}
}
