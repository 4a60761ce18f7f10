package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthPeriods(keys ...string) []Period {
	periods := make([]Period, 0, len(keys))
	for _, key := range keys {
		start, _ := time.Parse("2006-01", key)
		periods = append(periods, Period{Key: key, Label: start.Format("Jan 2006"), Start: start})
	}
	return periods
}

func TestNewTotalsReport_ZeroFilled(t *testing.T) {
	report := NewTotalsReport(monthPeriods("2024-01", "2024-02"), []string{CategoryDining, CategoryGroceries})

	require.Len(t, report.Totals, 4)
	for _, total := range report.Totals {
		assert.True(t, total.TotalAmount.IsZero())
	}
	assert.Equal(t, CategoryDining, report.Totals[0].Category)
	assert.Equal(t, "2024-01", report.Totals[0].Period)
	assert.Equal(t, "2024-02", report.Totals[1].Period)
}

func TestTotalsReport_Add(t *testing.T) {
	report := NewTotalsReport(monthPeriods("2024-01", "2024-02"), []string{CategoryDining, CategoryIncome})

	assert.True(t, report.Add("2024-01", CategoryDining, decimal.NewFromInt(-20)))
	assert.True(t, report.Add("2024-01", CategoryDining, decimal.NewFromInt(-10)))
	assert.True(t, report.Add("2024-02", CategoryIncome, decimal.NewFromInt(3000)))

	assert.True(t, report.Total("2024-01", CategoryDining).Equal(decimal.NewFromInt(-30)))
	assert.True(t, report.Total("2024-02", CategoryIncome).Equal(decimal.NewFromInt(3000)))
	assert.True(t, report.Total("2024-02", CategoryDining).IsZero())
}

func TestTotalsReport_AddOutsideReport(t *testing.T) {
	report := NewTotalsReport(monthPeriods("2024-01"), []string{CategoryDining})

	assert.False(t, report.Add("2023-12", CategoryDining, decimal.NewFromInt(-5)))
	assert.False(t, report.Add("2024-01", CategoryTravel, decimal.NewFromInt(-5)))
	assert.True(t, report.Total("2023-12", CategoryDining).IsZero())
	assert.True(t, report.Total("2024-01", CategoryDining).IsZero())
}
