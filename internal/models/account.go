package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const noAccountLabel = "No Account"

var ErrInvalidAccountName = errors.New("account name is required")

// Account is a linked or manually created bank account that transactions refer to
type Account struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	Institution string         `gorm:"type:varchar(255)" json:"institution,omitempty"`
	Mask        string         `gorm:"type:varchar(8)" json:"mask,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Name == "" {
		return ErrInvalidAccountName
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// DisplayName returns the label shown for the account, including the mask when known
func (a *Account) DisplayName() string {
	if a.Mask == "" {
		return a.Name
	}
	return a.Name + " ••" + a.Mask
}

// AccountLabel resolves the display label for an account reference. Unknown ids
// fall back to a shortened id, a nil reference to "No Account".
func AccountLabel(accountID *uuid.UUID, names map[uuid.UUID]string) string {
	if accountID == nil || *accountID == uuid.Nil {
		return noAccountLabel
	}
	if name, ok := names[*accountID]; ok && name != "" {
		return name
	}
	return "Account " + accountID.String()[:8] + "..."
}
