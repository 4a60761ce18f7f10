package dto

import (
	"finance-view/internal/models"
	"finance-view/internal/table"
)

// TransactionListParams contains the server-side filters of the transaction list.
// Dates accept MM/DD/YYYY or YYYY-MM-DD.
type TransactionListParams struct {
	StartDate string `query:"start_date" json:"start_date" validate:"omitempty,us_date"`
	EndDate   string `query:"end_date" json:"end_date" validate:"omitempty,us_date"`
	Category  string `query:"category" json:"category" validate:"omitempty,max=100"`
	AccountID string `query:"account_id" json:"account_id" validate:"omitempty,uuid"`
	Page      int    `query:"page" json:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" json:"page_size" validate:"omitempty,min=1,max=500"`
}

// CreateTransactionRequest represents the request payload for a manual transaction
type CreateTransactionRequest struct {
	Date        string `json:"date" validate:"required,us_date"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Type        string `json:"type" validate:"required,txn_type"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=100"`
	Merchant    string `json:"merchant" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	AccountID   string `json:"account_id" validate:"omitempty,uuid"`
}

// UpdateTransactionRequest represents an inline edit. Only the fields present are changed.
type UpdateTransactionRequest struct {
	Date        *string `json:"date" validate:"omitempty,us_date"`
	Amount      *string `json:"amount" validate:"omitempty,positive_amount"`
	Type        *string `json:"type" validate:"omitempty,txn_type"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	Subcategory *string `json:"subcategory" validate:"omitempty,max=100"`
	Merchant    *string `json:"merchant" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// TransactionPagination is the pagination block of the transaction list
type TransactionPagination struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents a page of rendered transactions
type TransactionListResponse struct {
	Transactions []*table.Row         `json:"transactions"`
	Pagination   TransactionPagination `json:"pagination"`
}

// TransactionResponse wraps a single transaction together with its rendered row
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Row         *table.Row          `json:"row"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
