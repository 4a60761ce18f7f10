package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one aggregated cell of the monthly/annual reports: the signed
// total of a category within a period key (YYYY-MM or YYYY). Expenses count
// negative, income positive.
type CategoryTotal struct {
	Period      string          `json:"period"`
	Category    string          `json:"category"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Period is one column of a totals report
type Period struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TotalsReport holds a total for every period and category pair. Pairs without
// transactions are present with a zero total.
type TotalsReport struct {
	Periods    []Period        `json:"periods"`
	Categories []string        `json:"categories"`
	Totals     []CategoryTotal `json:"totals"`

	index map[string]int
}

// NewTotalsReport creates a report with every cell initialised to zero
func NewTotalsReport(periods []Period, categories []string) *TotalsReport {
	r := &TotalsReport{
		Periods:    periods,
		Categories: categories,
		Totals:     make([]CategoryTotal, 0, len(periods)*len(categories)),
		index:      make(map[string]int, len(periods)*len(categories)),
	}

	for _, category := range categories {
		for _, period := range periods {
			r.index[cellKey(period.Key, category)] = len(r.Totals)
			r.Totals = append(r.Totals, CategoryTotal{
				Period:      period.Key,
				Category:    category,
				TotalAmount: decimal.Zero,
			})
		}
	}

	return r
}

// Add adds amount to the cell of period and category. It reports false when
// either is outside the report.
func (r *TotalsReport) Add(period, category string, amount decimal.Decimal) bool {
	i, ok := r.index[cellKey(period, category)]
	if !ok {
		return false
	}
	r.Totals[i].TotalAmount = r.Totals[i].TotalAmount.Add(amount)
	return true
}

// Total returns the total of a cell, zero when absent
func (r *TotalsReport) Total(period, category string) decimal.Decimal {
	i, ok := r.index[cellKey(period, category)]
	if !ok {
		return decimal.Zero
	}
	return r.Totals[i].TotalAmount
}

func cellKey(period, category string) string {
	return period + "\x00" + category
}
