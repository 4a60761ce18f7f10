package dto

import (
	"finance-view/internal/filter"
	"finance-view/internal/paginator"
	"finance-view/internal/table"
)

// ViewFilterRequest carries the values of the filter inputs
type ViewFilterRequest struct {
	Search      string `json:"search" validate:"max=100"`
	Date        string `json:"date" validate:"omitempty,date_filter"`
	Category    string `json:"category" validate:"omitempty,max=100"`
	Subcategory string `json:"subcategory" validate:"omitempty,max=100"`
	Type        string `json:"type" validate:"omitempty,type_filter"`
}

// State converts the request into a filter state
func (r ViewFilterRequest) State() filter.State {
	return filter.State{
		Search:      r.Search,
		Date:        r.Date,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Type:        r.Type,
	}
}

// CustomRangeRequest carries the custom date range, MM/DD/YYYY or YYYY-MM-DD
type CustomRangeRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// PageSizeRequest carries the page size selector value: a positive integer or "all"
type PageSizeRequest struct {
	PageSize string `json:"page_size" validate:"required,page_size"`
}

// ViewRow is a visible transaction row
type ViewRow struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	RawDate       string `json:"raw_date"`
	Amount        string `json:"amount"`
	AmountDisplay string `json:"amount_display"`
	Type          string `json:"type"`
	TypeLabel     string `json:"type_label"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	Merchant      string `json:"merchant"`
	Description   string `json:"description,omitempty"`
	AccountID     string `json:"account_id,omitempty"`
	AccountName   string `json:"account_name"`
	Manual        bool   `json:"manual"`
}

// NewViewRow copies the display fields of a row
func NewViewRow(row *table.Row) ViewRow {
	return ViewRow{
		ID:            row.ID,
		Date:          row.Date,
		RawDate:       row.RawDate,
		Amount:        row.Amount.StringFixed(2),
		AmountDisplay: row.AmountDisplay,
		Type:          row.Type(),
		TypeLabel:     row.TypeLabel(),
		Category:      row.Category,
		Subcategory:   row.SubcategoryLabel(),
		Merchant:      row.Merchant,
		Description:   row.Description,
		AccountID:     row.AccountID,
		AccountName:   row.AccountName,
		Manual:        row.Manual,
	}
}

// ViewFilters is the filter block of a view snapshot
type ViewFilters struct {
	State         filter.State    `json:"state"`
	DateOptions   []filter.Option `json:"date_options"`
	Categories    []string        `json:"categories"`
	Subcategories []string        `json:"subcategories"`
}

// ViewResponse is the snapshot of a session's transaction view
type ViewResponse struct {
	Rows         []ViewRow              `json:"rows"`
	TotalRows    int                    `json:"total_rows"`
	IncludedRows int                    `json:"included_rows"`
	Pagination   paginator.PageInfo     `json:"pagination"`
	Controls     paginator.ControlStrip `json:"controls"`
	Filters      ViewFilters            `json:"filters"`
	ScrollToTop  bool                   `json:"scroll_to_top"`
}
