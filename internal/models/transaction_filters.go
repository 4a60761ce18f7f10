package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionFilters contains server-side filtering options for transaction queries
type TransactionFilters struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Offset    int
	Limit     int
}
