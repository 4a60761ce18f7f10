package dto

import (
	"finance-view/internal/formatting"
	"finance-view/internal/models"

	"github.com/shopspring/decimal"
)

// zeroCell is shown for periods without any activity
const zeroCell = "–"

// MonthlyReportParams selects the months of the monthly report, MM/YYYY
type MonthlyReportParams struct {
	Start string `query:"start" validate:"omitempty,month_year"`
	End   string `query:"end" validate:"omitempty,month_year"`
}

// AnnualReportParams selects the years of the annual report
type AnnualReportParams struct {
	StartYear int `query:"start_year" validate:"omitempty,min=1900,max=9999"`
	EndYear   int `query:"end_year" validate:"omitempty,min=1900,max=9999"`
}

// ReportCell is one category total within a period
type ReportCell struct {
	Period  string          `json:"period"`
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

// ReportRow holds the totals of one category across every period
type ReportRow struct {
	Category string       `json:"category"`
	Cells    []ReportCell `json:"cells"`
}

// ReportResponse is a category by period table of signed totals
type ReportResponse struct {
	Periods []models.Period `json:"periods"`
	Rows    []ReportRow     `json:"rows"`
}

// NewReportResponse lays a totals report out as table rows. Amounts keep their
// sign, display values are absolute and zero totals show a dash.
func NewReportResponse(report *models.TotalsReport) ReportResponse {
	resp := ReportResponse{
		Periods: report.Periods,
		Rows:    make([]ReportRow, 0, len(report.Categories)),
	}

	for _, category := range report.Categories {
		row := ReportRow{
			Category: category,
			Cells:    make([]ReportCell, 0, len(report.Periods)),
		}
		for _, period := range report.Periods {
			amount := report.Total(period.Key, category)
			display := zeroCell
			if !amount.IsZero() {
				display = formatting.FormatCurrency(amount.Abs())
			}
			row.Cells = append(row.Cells, ReportCell{
				Period:  period.Key,
				Amount:  amount,
				Display: display,
			})
		}
		resp.Rows = append(resp.Rows, row)
	}

	return resp
}
