package table

import (
	"strings"

	"finance-view/internal/formatting"
	"finance-view/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row is one rendered transaction row. Included is owned by the filter engine,
// Visible by the paginator.
type Row struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	RawDate       string          `json:"raw_date"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	IsDebit       bool            `json:"is_debit"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory,omitempty"`
	Merchant      string          `json:"merchant"`
	Description   string          `json:"description,omitempty"`
	AccountID     string          `json:"account_id,omitempty"`
	AccountName   string          `json:"account_name"`
	Manual        bool            `json:"manual"`

	Included bool `json:"-"`
	Visible  bool `json:"-"`

	text string
}

// NewRow renders a transaction into a row. accountNames resolves account display names.
func NewRow(tx *models.Transaction, accountNames map[uuid.UUID]string) *Row {
	row := &Row{
		ID:            tx.ID.String(),
		Date:          formatting.FormatDate(tx.Date),
		RawDate:       formatting.FormatISODate(tx.Date),
		Amount:        tx.Amount,
		AmountDisplay: formatting.FormatAmount(tx.Amount, tx.IsDebit),
		IsDebit:       tx.IsDebit,
		Category:      tx.Category,
		Subcategory:   tx.Subcategory,
		Merchant:      tx.Merchant,
		Description:   tx.Description,
		AccountName:   models.AccountLabel(tx.AccountID, accountNames),
		Manual:        tx.Manual,
		Included:      true,
		Visible:       true,
	}

	if tx.AccountID != nil {
		row.AccountID = tx.AccountID.String()
	}

	return row
}

// Type returns "expense" for debits and "income" for credits
func (r *Row) Type() string {
	if r.IsDebit {
		return models.TransactionTypeExpense
	}
	return models.TransactionTypeIncome
}

// TypeLabel returns the capitalised type shown in the table
func (r *Row) TypeLabel() string {
	if r.IsDebit {
		return "Expense"
	}
	return "Income"
}

// SubcategoryLabel returns the subcategory cell text
func (r *Row) SubcategoryLabel() string {
	if r.Subcategory == "" {
		return models.UncategorizedMarker
	}
	return r.Subcategory
}

// Text returns the lower-cased concatenation of the row's visible cells
func (r *Row) Text() string {
	if r.text == "" {
		r.text = strings.ToLower(strings.Join([]string{
			r.Date,
			r.AmountDisplay,
			r.TypeLabel(),
			r.Category,
			r.SubcategoryLabel(),
			r.Merchant,
			r.Description,
			r.AccountName,
		}, " "))
	}
	return r.text
}

// Invalidate drops cached derived values after a field was edited in place
func (r *Row) Invalidate() {
	r.text = ""
	r.AmountDisplay = formatting.FormatAmount(r.Amount, r.IsDebit)
}
