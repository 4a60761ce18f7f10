package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeExpense = "expense"
	TransactionTypeIncome  = "income"

	// UncategorizedMarker is rendered in place of an empty subcategory
	UncategorizedMarker = "—"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDate            = errors.New("transaction date is required")
)

// Transaction represents a personal-finance transaction, either imported from a
// linked bank account or entered manually.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID   *uuid.UUID      `gorm:"type:uuid;index" json:"account_id,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsDebit     bool            `gorm:"not null;default:true" json:"is_debit"`
	Category    string          `gorm:"type:varchar(100);index" json:"category"`
	Subcategory string          `gorm:"type:varchar(100)" json:"subcategory,omitempty"`
	Merchant    string          `gorm:"type:varchar(255)" json:"merchant"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Manual      bool            `gorm:"not null;default:false" json:"manual"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Associations
	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Category == "" {
		t.Category = CategoryUncategorized
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Category) > 100 {
		return errors.New("category name too long")
	}

	if len(t.Subcategory) > 100 {
		return errors.New("subcategory name too long")
	}

	return nil
}

// Type returns the direction of the transaction as shown in the UI
func (t *Transaction) Type() string {
	if t.IsDebit {
		return TransactionTypeExpense
	}
	return TransactionTypeIncome
}

// SetType sets the debit flag from a UI transaction type
func (t *Transaction) SetType(transactionType string) error {
	switch strings.ToLower(transactionType) {
	case TransactionTypeExpense:
		t.IsDebit = true
	case TransactionTypeIncome:
		t.IsDebit = false
	default:
		return ErrInvalidTransactionType
	}
	return nil
}

// SignedAmount returns the amount as a signed value: expenses negative, income positive
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.IsDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// HasSubcategory reports whether the transaction carries a real subcategory
func (t *Transaction) HasSubcategory() bool {
	return t.Subcategory != "" && t.Subcategory != UncategorizedMarker
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeExpense, TransactionTypeIncome:
		return true
	default:
		return false
	}
}
